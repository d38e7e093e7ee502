package encoder

import vidio "github.com/AlexEidt/Vidio"

// VidioOptions builds the writer options for a vidio.VideoWriter.
// Zero values are left for vidio to default.
func (c Config) VidioOptions() *vidio.Options {
	return &vidio.Options{
		FPS:     c.FPS,
		Bitrate: c.Bitrate,
		Codec:   c.Codec,
	}
}

package framebuffer

import (
	"encoding/json"
	"fmt"

	"github.com/rook-computer/fbconfig/internal/encoder"
)

type configJSON struct {
	Scale     *string         `json:"scale"`
	Encoder   *encoder.Config `json:"encoder"`
	ImagePath string          `json:"image_path"`
}

func (c Config) MarshalJSON() ([]byte, error) {
	var scale *string
	if c.scale != ScaleNone {
		s := c.scale.String()
		scale = &s
	}
	enc := c.encoder
	return json.Marshal(configJSON{Scale: scale, Encoder: &enc, ImagePath: c.imagePath})
}

// UnmarshalJSON accepts the MarshalJSON form. A missing encoder or image path
// falls back to the defaults, the same way New does.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	scale := ScaleNone
	if raw.Scale != nil {
		parsed, err := ParseScale(*raw.Scale)
		if err != nil {
			return fmt.Errorf("framebuffer config: %w", err)
		}
		scale = parsed
	}
	*c = New(scale, raw.Encoder, raw.ImagePath)
	return nil
}

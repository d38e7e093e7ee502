package framebuffer

import (
	"errors"
	"testing"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		input string
		want  Scale
		err   bool
	}{
		{"", ScaleNone, false},
		{"none", ScaleNone, false},
		{"1x", Scale1x, false},
		{"2X", Scale2x, false},
		{" 3x ", Scale3x, false},
		{"4x", Scale4x, false},
		{"5x", ScaleNone, true},
		{"1.5", ScaleNone, true},
		{"unscaled", ScaleNone, true},
	}
	for _, tc := range tests {
		got, err := ParseScale(tc.input)
		if (err != nil) != tc.err {
			t.Errorf("ParseScale(%q) err = %v, want err %v", tc.input, err, tc.err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownScale) {
			t.Errorf("ParseScale(%q) err = %v, want ErrUnknownScale", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseScale(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestScaleStringParses(t *testing.T) {
	for _, s := range []Scale{Scale1x, Scale2x, Scale3x, Scale4x} {
		got, err := ParseScale(s.String())
		if err != nil || got != s {
			t.Errorf("ParseScale(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
}

func TestScaleValid(t *testing.T) {
	for _, s := range allScales {
		if !s.Valid() {
			t.Errorf("%v.Valid() = false", s)
		}
	}
	if Scale(5).Valid() {
		t.Error("Scale(5).Valid() = true")
	}
	if _, ok := Scale(5).Value(); ok {
		t.Error("Scale(5).Value() should be absent")
	}
}

package graphics

import (
	"image/color"
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00ff0080", color.NRGBA{0, 255, 0, 128}, false},
		{" #1a2B3c ", color.NRGBA{0x1a, 0x2b, 0x3c, 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHex(%q) error = %v", tt.in, err)
			}
			if err == nil && c.NRGBA() != tt.want {
				t.Errorf("FromHex(%q) = %+v, want %+v", tt.in, c.NRGBA(), tt.want)
			}
		})
	}
}

func TestFromRGBAClamps(t *testing.T) {
	c := FromRGBA(-20, 300, 128, 255)
	if c.R != 0 || c.G != 1 {
		t.Errorf("expected clamped channels, got %+v", c)
	}
	if got := c.NRGBA(); got.B != 128 {
		t.Errorf("B = %d, want 128", got.B)
	}
}

func TestColorImplementsColorColor(t *testing.T) {
	var c color.Color = Red.WithAlpha(0.5)
	r, g, b, a := c.RGBA()
	if g != 0 || b != 0 {
		t.Errorf("unexpected channels g=%d b=%d", g, b)
	}
	if a < 0x7f00 || a > 0x8100 {
		t.Errorf("alpha = %#x, want ~0x8080", a)
	}
	if r != a {
		t.Errorf("premultiplied red = %#x, want alpha %#x", r, a)
	}
}

func TestHex(t *testing.T) {
	if got := Sky.Hex(); got != "#87cefa" && got != "#87ceeb" {
		t.Errorf("Sky.Hex() = %s", got)
	}
	if got := White.Hex(); got != "#ffffff" {
		t.Errorf("White.Hex() = %s", got)
	}
}

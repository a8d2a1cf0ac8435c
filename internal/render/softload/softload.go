// Package softload loads textures and fonts without a GPU. Textures keep the
// decoded image and its average colour; fonts are parsed with opentype so
// text can be measured.
package softload

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/render"
)

// Texture is a decoded image.
type Texture struct {
	Path string
	img  image.Image
	avg  graphics.Color
}

// Size implements render.Texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Average returns the mean colour of the whole texture.
func (t *Texture) Average() graphics.Color {
	return t.avg
}

// AverageOf returns the mean colour of r within the texture. An empty r
// covers the whole texture.
func (t *Texture) AverageOf(r graphics.Rect) graphics.Color {
	if r.Empty() {
		return t.avg
	}
	return averageColor(t.img, r.Image().Intersect(t.img.Bounds()))
}

// Font is a parsed font face.
type Font struct {
	Details graphics.FontDetails
	face    font.Face
}

// Measure implements render.Font.
func (f *Font) Measure(text string) (float64, float64) {
	adv := font.MeasureString(f.face, text)
	m := f.face.Metrics()
	return float64(adv) / 64, float64(m.Height) / 64
}

// Loader implements render.ResourceLoader from the file system.
type Loader struct{}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadTexture implements render.ResourceLoader.
func (l *Loader) LoadTexture(path string) (render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Texture{Path: path, img: img, avg: averageColor(img, img.Bounds())}, nil
}

// LoadFont implements render.ResourceLoader. An empty path loads Go Regular.
func (l *Loader) LoadFont(details graphics.FontDetails) (render.Font, error) {
	data := goregular.TTF
	if details.Path != "" {
		var err error
		data, err = os.ReadFile(details.Path)
		if err != nil {
			return nil, err
		}
	}
	return ParseFont(data, details)
}

// ParseFont builds a font from TrueType or OpenType data.
func ParseFont(data []byte, details graphics.FontDetails) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	size := details.Size
	if size <= 0 {
		size = 16
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return &Font{Details: details, face: face}, nil
}

// averageColor returns the mean straight-alpha colour inside r, sampling at
// most about 64x64 points.
func averageColor(img image.Image, r image.Rectangle) graphics.Color {
	if r.Empty() {
		return graphics.Transparent
	}
	stepX := max(1, r.Dx()/64)
	stepY := max(1, r.Dy()/64)

	var sr, sg, sb, sa, n float64
	for y := r.Min.Y; y < r.Max.Y; y += stepY {
		for x := r.Min.X; x < r.Max.X; x += stepX {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			sr += float64(cr)
			sg += float64(cg)
			sb += float64(cb)
			sa += float64(ca)
			n++
		}
	}
	if sa == 0 {
		return graphics.Transparent
	}
	// Un-premultiply against the summed alpha.
	return graphics.Color{R: sr / sa, G: sg / sa, B: sb / sa, A: sa / n / 0xffff}
}

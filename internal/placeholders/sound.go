package placeholders

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// ToneSpec describes a generated melody of sine notes.
type ToneSpec struct {
	SampleRate int
	NoteLength float64   // seconds
	Notes      []float64 // frequencies in Hz
	Amplitude  float64   // 0..1
}

// DefaultTone is a short arpeggio that loops cleanly.
var DefaultTone = ToneSpec{
	SampleRate: 44100,
	NoteLength: 0.25,
	Notes:      []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63},
	Amplitude:  0.3,
}

// Tone renders spec to mono 16-bit samples. Each note fades in and out to
// avoid clicks at the joins.
func Tone(spec ToneSpec) []int16 {
	per := int(spec.NoteLength * float64(spec.SampleRate))
	fade := per / 20
	samples := make([]int16, 0, per*len(spec.Notes))
	for _, freq := range spec.Notes {
		for i := 0; i < per; i++ {
			env := 1.0
			if fade > 0 {
				env = math.Min(1, math.Min(float64(i)/float64(fade), float64(per-1-i)/float64(fade)))
			}
			v := math.Sin(2*math.Pi*freq*float64(i)/float64(spec.SampleRate)) * spec.Amplitude * env
			samples = append(samples, int16(v*math.MaxInt16))
		}
	}
	return samples
}

// EncodeWAV returns a RIFF/WAVE file holding mono 16-bit PCM samples.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataSize := uint32(len(samples) * 2)
	blockAlign := uint16(channels * bitsPerSample / 8)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate)*uint32(blockAlign))
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// SaveWAV writes samples at DefaultTone's sample rate to path.
func SaveWAV(path string, samples []int16) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, EncodeWAV(samples, DefaultTone.SampleRate), 0o644)
}

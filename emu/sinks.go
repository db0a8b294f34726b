package emu

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"golang.org/x/image/draw"

	"dunes/emu/log"
	"dunes/hw/hwdefs"
)

// Screenshot returns a copy of frame, scaled up with nearest neighbour
// sampling and surrounded by a border.
func Screenshot(frame *image.RGBA, vcfg VideoConfig) *image.RGBA {
	scale := max(vcfg.Scale, 1)
	w, h := frame.Bounds().Dx()*scale, frame.Bounds().Dy()*scale
	b := vcfg.Border

	img := image.NewRGBA(image.Rect(0, 0, w+2*b, h+2*b))
	if b > 0 {
		draw.Draw(img, img.Bounds(), &image.Uniform{vcfg.borderColor()}, image.Point{}, draw.Src)
	}
	draw.NearestNeighbor.Scale(img, image.Rect(b, b, b+w, b+h), frame, frame.Bounds(), draw.Src, nil)
	return img
}

// SavePNG writes img as a png file at path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// PNGSink is a video sink saving frames as png files into a directory. It
// saves one frame every N frames and, on Close, the last frame received.
type PNGSink struct {
	dir   string
	every uint64
	vcfg  VideoConfig

	nframes uint64
	last    *image.RGBA
	paths   []string
	err     error
}

// NewPNGSink creates a PNGSink writing into dir. With every set to 0, only
// the last frame is saved.
func NewPNGSink(dir string, every uint64, vcfg VideoConfig) *PNGSink {
	return &PNGSink{
		dir:   dir,
		every: every,
		vcfg:  vcfg,
		last:  image.NewRGBA(image.Rect(0, 0, hwdefs.ScreenWidth, hwdefs.ScreenHeight)),
	}
}

func (s *PNGSink) Frame(frame *image.RGBA) {
	s.nframes++
	copy(s.last.Pix, frame.Pix)

	if s.every != 0 && s.nframes%s.every == 0 {
		s.save(fmt.Sprintf("frame-%06d.png", s.nframes))
	}
}

func (s *PNGSink) save(name string) {
	if s.err != nil {
		return
	}
	path := filepath.Join(s.dir, name)
	if err := SavePNG(Screenshot(s.last, s.vcfg), path); err != nil {
		s.err = err
		log.ModEmu.WarnZ("Failed to save screenshot").String("path", path).Error("err", err).End()
		return
	}
	s.paths = append(s.paths, path)
}

// Close saves the last frame and reports the first error that occurred.
func (s *PNGSink) Close() error {
	if s.nframes > 0 {
		s.save("last.png")
	}
	return s.err
}

// Paths returns the paths of the saved png files.
func (s *PNGSink) Paths() []string { return s.paths }

// Last returns the last frame received.
func (s *PNGSink) Last() *image.RGBA { return s.last }

// WAVSink is an audio sink recording 16-bit mono samples into a wav file.
type WAVSink struct {
	enc *wav.Encoder
	buf *audio.IntBuffer

	nsamples int
	err      error
}

// NewWAVSink creates a WAVSink writing to w. The wav header is completed
// when the sink is closed.
func NewWAVSink(w io.WriteSeeker, sampleRate int) *WAVSink {
	const (
		bitDepth  = 16
		nchannels = 1
		pcmFormat = 1
	)
	return &WAVSink{
		enc: wav.NewEncoder(w, sampleRate, bitDepth, nchannels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: nchannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *WAVSink) WriteSamples(samples []int16) {
	if s.err != nil {
		return
	}

	s.buf.Data = s.buf.Data[:0]
	for _, v := range samples {
		s.buf.Data = append(s.buf.Data, int(v))
	}
	if err := s.enc.Write(s.buf); err != nil {
		s.err = err
		log.ModSound.WarnZ("Failed to write samples").Error("err", err).End()
		return
	}
	s.nsamples += len(samples)
}

// NumSamples returns the number of samples written so far.
func (s *WAVSink) NumSamples() int { return s.nsamples }

// Close completes the wav header. The underlying writer is not closed.
func (s *WAVSink) Close() error {
	if err := s.enc.Close(); err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

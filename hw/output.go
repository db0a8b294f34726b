package hw

import (
	"image"

	"dunes/hw/hwdefs"
)

// A VideoSink receives the frames completed by the PPU. The frame is only
// valid until the next call, sinks must copy what they keep.
type VideoSink interface {
	Frame(frame *image.RGBA)
}

// Output hands the frames rendered by the PPU to a VideoSink, rotating
// between several video buffers so that the frame being drawn is never the
// one that has been published.
type Output struct {
	framebufidx int
	framebuf    []*image.RGBA

	framecounter uint64
	sink         VideoSink
}

// NewOutput creates an Output with nbufs video buffers (at least 2). sink
// can be nil, frames are then discarded.
func NewOutput(nbufs int, sink VideoSink) *Output {
	nbufs = max(nbufs, 2)
	vb := make([]*image.RGBA, nbufs)
	for i := range vb {
		vb[i] = image.NewRGBA(image.Rect(0, 0, hwdefs.ScreenWidth, hwdefs.ScreenHeight))
	}
	return &Output{
		framebuf: vb,
		sink:     sink,
	}
}

// BeginFrame returns the buffer the next frame should be drawn into.
func (o *Output) BeginFrame() *image.RGBA {
	o.framebufidx++
	if o.framebufidx == len(o.framebuf) {
		o.framebufidx = 0
	}
	return o.framebuf[o.framebufidx]
}

// EndFrame publishes the current buffer.
func (o *Output) EndFrame() {
	o.framecounter++
	if o.sink != nil {
		o.sink.Frame(o.framebuf[o.framebufidx])
	}
}

// FrameCount returns the number of frames published so far.
func (o *Output) FrameCount() uint64 { return o.framecounter }

// SetSink replaces the video sink.
func (o *Output) SetSink(sink VideoSink) { o.sink = sink }

package apu

import (
	"github.com/arl/blip"

	"dunes/emu/log"
	"dunes/hw/hwdefs"
)

// maximum number of samples generated in one frame.
const maxSamplesPerFrame = 4096

// An AudioSink receives the mono 16-bit samples produced at the end of each
// audio frame. The slice is reused, sinks must copy what they keep.
type AudioSink interface {
	WriteSamples(samples []int16)
}

// Mixer combines the channel outputs with the non-linear NES mixing formula
// and resamples the result with a band-limited synthesis buffer.
type Mixer struct {
	buf    *blip.Buffer
	outbuf [maxSamplesPerFrame]int16

	sink       AudioSink
	sampleRate int

	levels  [hwdefs.NumAudioChannels]uint8
	prevOut int16
	volume  float64
}

// NewMixer creates a mixer generating samples at sampleRate Hz, sent to
// sink. sink can be nil, in which case samples are discarded.
func NewMixer(sampleRate int, sink AudioSink) *Mixer {
	m := &Mixer{
		buf:        blip.NewBuffer(maxSamplesPerFrame),
		sink:       sink,
		sampleRate: sampleRate,
		volume:     1.0,
	}
	m.Reset()
	return m
}

func (m *Mixer) Reset() {
	m.buf.Clear()
	m.buf.SetRates(hwdefs.NTSCCPUClock, float64(m.sampleRate))
	clear(m.levels[:])
	m.prevOut = 0
}

// SetVolume sets the master volume, between 0 and 1.
func (m *Mixer) SetVolume(vol float64) {
	m.volume = min(max(vol, 0), 1)
}

// SampleRate returns the output sample rate.
func (m *Mixer) SampleRate() int { return m.sampleRate }

// update records the channel levels at the given cycle of the current frame.
func (m *Mixer) update(time uint32, levels [hwdefs.NumAudioChannels]uint8) {
	if levels == m.levels {
		return
	}
	m.levels = levels

	out := m.output()
	m.buf.AddDelta(uint64(time), int32(out-m.prevOut))
	m.prevOut = out
}

func (m *Mixer) output() int16 {
	pulse := float64(m.levels[Square1]) + float64(m.levels[Square2])
	tnd := float64(m.levels[DMC]) +
		2.7516713261*float64(m.levels[Triangle]) +
		1.8493587125*float64(m.levels[Noise])

	// For a zero input, the divisions give +Inf and the volumes are 0.
	pulseVol := (95.88 * 5000.0) / (8128.0/pulse + 100.0)
	tndVol := (159.79 * 5000.0) / (22638.0/tnd + 100.0)

	return int16((pulseVol + tndVol) * 4 * m.volume)
}

// endFrame ends the audio frame after the given number of CPU cycles and
// sends the available samples to the sink.
func (m *Mixer) endFrame(time uint32) {
	m.buf.EndFrame(int(time))

	n := m.buf.ReadSamples(m.outbuf[:], maxSamplesPerFrame, blip.Mono)
	if m.sink != nil && n > 0 {
		m.sink.WriteSamples(m.outbuf[:n])
	}

	log.ModSound.DebugZ("audio frame").Uint32("cycles", time).Int("samples", n).End()
}

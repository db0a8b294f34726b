package apu

// Channel identifies one of the sound generators.
type Channel uint8

const (
	Square1 Channel = iota
	Square2
	Triangle
	Noise
	DMC
)

// FrameType is the kind of clock the frame counter sends to the channels.
type FrameType uint8

const (
	NoFrame FrameType = iota
	QuarterFrame
	HalfFrame
)

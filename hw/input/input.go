// Package input provides the state of the NES controllers. There's no
// keyboard or gamepad capture, button presses are scripted per frame.
package input

import (
	"fmt"
	"slices"
	"strings"
)

// A PaddleButton identifies a button of a standard NES controller/paddle.
type PaddleButton byte

const (
	PadA PaddleButton = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

var buttonNames = [PadButtonCount]string{
	"A", "B",
	"Select", "Start",
	"Up", "Down", "Left", "Right",
}

func (pd PaddleButton) String() string {
	if pd >= PadButtonCount {
		return fmt.Sprintf("PaddleButton(%d)", pd)
	}
	return buttonNames[pd]
}

// Buttons is the state of the 8 buttons of a paddle, in the order they're
// shifted out of the controller port (bit 0 is A).
type Buttons uint8

func (b Buttons) Pressed(btn PaddleButton) bool { return b&(1<<btn) != 0 }

func (b Buttons) String() string {
	var names []string
	for btn := range PadButtonCount {
		if b.Pressed(btn) {
			names = append(names, btn.String())
		}
	}
	return strings.Join(names, "+")
}

// ParseButtons parses a list of button names separated by '+', such as
// "A+Start". Names are case insensitive, an empty string means no buttons.
func ParseButtons(s string) (Buttons, error) {
	var b Buttons
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	for name := range strings.SplitSeq(s, "+") {
		name = strings.TrimSpace(name)
		idx := slices.IndexFunc(buttonNames[:], func(n string) bool {
			return strings.EqualFold(n, name)
		})
		if idx < 0 {
			return 0, fmt.Errorf("unknown button %q", name)
		}
		b |= 1 << idx
	}
	return b, nil
}

// An Event presses a set of buttons on a paddle during a number of frames.
type Event struct {
	Frame   uint64 `toml:"frame"`   // first frame
	Frames  uint64 `toml:"frames"`  // duration, defaults to 1
	Paddle  int    `toml:"paddle"`  // 0 or 1
	Buttons string `toml:"buttons"` // e.g "A+Start"
}

type PaddleConfig struct {
	Plugged bool `toml:"plugged"`
}

type Config struct {
	Paddles [2]PaddleConfig `toml:"paddles"`
	Script  []Event         `toml:"script"`
}

type scriptEvent struct {
	start, end uint64 // [start, end)
	paddle     int
	buttons    Buttons
}

// Provider replays a script of button presses. It reports the buttons of
// the events active at the current frame, given by the frame function.
type Provider struct {
	cfg    Config
	frame  func() uint64
	events []scriptEvent
}

// NewProvider creates a Provider from cfg. frame returns the current frame
// number.
func NewProvider(cfg Config, frame func() uint64) (*Provider, error) {
	p := &Provider{cfg: cfg, frame: frame}
	for i, ev := range cfg.Script {
		if ev.Paddle != 0 && ev.Paddle != 1 {
			return nil, fmt.Errorf("input script event %d: invalid paddle %d", i, ev.Paddle)
		}
		btns, err := ParseButtons(ev.Buttons)
		if err != nil {
			return nil, fmt.Errorf("input script event %d: %w", i, err)
		}
		p.events = append(p.events, scriptEvent{
			start:   ev.Frame,
			end:     ev.Frame + max(ev.Frames, 1),
			paddle:  ev.Paddle,
			buttons: btns,
		})
	}
	return p, nil
}

func (p *Provider) paddleState(idx int, frame uint64) uint8 {
	if !p.cfg.Paddles[idx].Plugged {
		return 0
	}

	var state Buttons
	for _, ev := range p.events {
		if ev.paddle == idx && frame >= ev.start && frame < ev.end {
			state |= ev.buttons
		}
	}
	return uint8(state)
}

// LoadState returns the state of both paddles.
func (p *Provider) LoadState() (uint8, uint8) {
	frame := p.frame()
	return p.paddleState(0, frame), p.paddleState(1, frame)
}

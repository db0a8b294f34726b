package input

import "testing"

func TestParseButtons(t *testing.T) {
	tests := []struct {
		s       string
		want    Buttons
		wantErr bool
	}{
		{s: "", want: 0},
		{s: "A", want: 0x01},
		{s: "a+start", want: 0x09},
		{s: " Up + Right ", want: 1<<PadUp | 1<<PadRight},
		{s: "A+Turbo", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseButtons(tt.s)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseButtons(%q) error = %v, wantErr %t", tt.s, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseButtons(%q) = %08b, want %08b", tt.s, got, tt.want)
		}
	}
}

func TestButtonsString(t *testing.T) {
	b := Buttons(1<<PadStart | 1<<PadA | 1<<PadLeft)
	if got := b.String(); got != "A+Start+Left" {
		t.Errorf("String() = %q", got)
	}
}

func TestProviderScript(t *testing.T) {
	var frame uint64
	cfg := Config{
		Paddles: [2]PaddleConfig{{Plugged: true}, {Plugged: false}},
		Script: []Event{
			{Frame: 10, Frames: 5, Paddle: 0, Buttons: "Start"},
			{Frame: 12, Paddle: 0, Buttons: "A"},
			{Frame: 12, Paddle: 1, Buttons: "B"},
		},
	}
	p, err := NewProvider(cfg, func() uint64 { return frame })
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		frame uint64
		want  uint8
	}{
		{9, 0},
		{10, 0x08},
		{12, 0x09},
		{13, 0x08},
		{15, 0},
	}
	for _, tt := range tests {
		frame = tt.frame
		p1, p2 := p.LoadState()
		if p1 != tt.want {
			t.Errorf("frame %d: paddle 1 = %08b, want %08b", tt.frame, p1, tt.want)
		}
		if p2 != 0 {
			t.Errorf("frame %d: unplugged paddle 2 = %08b, want 0", tt.frame, p2)
		}
	}
}

func TestProviderInvalidScript(t *testing.T) {
	for _, ev := range []Event{
		{Paddle: 2, Buttons: "A"},
		{Paddle: 0, Buttons: "X"},
	} {
		if _, err := NewProvider(Config{Script: []Event{ev}}, nil); err == nil {
			t.Errorf("NewProvider(%+v) succeeded, want an error", ev)
		}
	}
}

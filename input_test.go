package hui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInputStateInitial(t *testing.T) {
	var s InputState

	if _, ok := s.Position(); ok {
		t.Error("fresh InputState reports a known position")
	}
	if s.LeftButton() != ButtonUp {
		t.Errorf("left button = %v, want up", s.LeftButton())
	}
	if s.RightButton() != ButtonUp {
		t.Errorf("right button = %v, want up", s.RightButton())
	}
}

func TestInputStateMotion(t *testing.T) {
	var s InputState

	s.Handle(MotionNotify{X: 120, Y: 80})
	pos, ok := s.Position()
	if !ok {
		t.Fatal("position unknown after motion event")
	}
	if pos != (mgl32.Vec2{120, 80}) {
		t.Errorf("position = %v, want (120, 80)", pos)
	}

	s.Handle(MotionNotify{X: 5, Y: 7})
	pos, _ = s.Position()
	if pos != (mgl32.Vec2{5, 7}) {
		t.Errorf("position = %v, want (5, 7)", pos)
	}
}

func TestInputStateButtons(t *testing.T) {
	tests := []struct {
		name      string
		events    []Event
		wantLeft  ButtonState
		wantRight ButtonState
	}{
		{
			name:     "left press",
			events:   []Event{ButtonPress{Button: ButtonLeft, X: 1, Y: 1}},
			wantLeft: ButtonDown,
		},
		{
			name: "left press release",
			events: []Event{
				ButtonPress{Button: ButtonLeft, X: 1, Y: 1},
				ButtonRelease{Button: ButtonLeft, X: 2, Y: 2},
			},
		},
		{
			name:      "right press",
			events:    []Event{ButtonPress{Button: ButtonRight, X: 1, Y: 1}},
			wantRight: ButtonDown,
		},
		{
			name: "independent buttons",
			events: []Event{
				ButtonPress{Button: ButtonLeft, X: 1, Y: 1},
				ButtonPress{Button: ButtonRight, X: 1, Y: 1},
				ButtonRelease{Button: ButtonLeft, X: 1, Y: 1},
			},
			wantRight: ButtonDown,
		},
		{
			name:   "middle button ignored",
			events: []Event{ButtonPress{Button: ButtonMiddle, X: 1, Y: 1}},
		},
		{
			name:   "unknown button ignored",
			events: []Event{ButtonPress{Button: 9, X: 1, Y: 1}},
		},
		{
			name:   "release without press stays up",
			events: []Event{ButtonRelease{Button: ButtonLeft, X: 1, Y: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s InputState
			for _, e := range tt.events {
				s.Handle(e)
			}
			if s.LeftButton() != tt.wantLeft {
				t.Errorf("left = %v, want %v", s.LeftButton(), tt.wantLeft)
			}
			if s.RightButton() != tt.wantRight {
				t.Errorf("right = %v, want %v", s.RightButton(), tt.wantRight)
			}
		})
	}
}

func TestInputStateButtonEventsCarryPosition(t *testing.T) {
	var s InputState

	s.Handle(ButtonPress{Button: ButtonMiddle, X: 33, Y: 44})
	pos, ok := s.Position()
	if !ok {
		t.Fatal("position unknown after button event")
	}
	if pos != (mgl32.Vec2{33, 44}) {
		t.Errorf("position = %v, want (33, 44)", pos)
	}
}

func TestInputStateIgnoresUnknownEvents(t *testing.T) {
	var s InputState

	type customEvent struct{}
	s.Handle(customEvent{})
	s.Handle(nil)

	if _, ok := s.Position(); ok {
		t.Error("unknown events set a position")
	}
}

func TestButtonStateString(t *testing.T) {
	if got := ButtonUp.String(); got != "up" {
		t.Errorf("ButtonUp.String() = %q, want up", got)
	}
	if got := ButtonDown.String(); got != "down" {
		t.Errorf("ButtonDown.String() = %q, want down", got)
	}
}

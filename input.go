package hui

import "github.com/go-gl/mathgl/mgl32"

// Event is a pointer event fed to InputState. The concrete types mirror
// the X11 event vocabulary used by Go windowing layers, so adapting a
// platform event loop is a one-line conversion per event.
type Event interface{}

// ButtonPress reports a pointer button going down at (X, Y) in surface
// pixels. Button uses X11 numbering: 1 left, 2 middle, 3 right.
type ButtonPress struct {
	Button uint32
	X, Y   int
}

// ButtonRelease reports a pointer button going up at (X, Y).
type ButtonRelease struct {
	Button uint32
	X, Y   int
}

// MotionNotify reports pointer movement to (X, Y).
type MotionNotify struct {
	X, Y int
}

// X11 pointer button numbers.
const (
	ButtonLeft   uint32 = 1
	ButtonMiddle uint32 = 2
	ButtonRight  uint32 = 3
)

// ButtonState is the up/down state of a single pointer button.
type ButtonState uint8

const (
	ButtonUp ButtonState = iota
	ButtonDown
)

// String returns "up" or "down".
func (s ButtonState) String() string {
	if s == ButtonDown {
		return "down"
	}
	return "up"
}

// InputState accumulates pointer events into queryable state: the last
// known pointer position and the left/right button states. Other buttons
// are tracked for position only.
//
// InputState is not safe for concurrent use; feed it from the event loop
// goroutine.
type InputState struct {
	position    mgl32.Vec2
	hasPosition bool

	left  ButtonState
	right ButtonState
}

// Handle folds one event into the state. Unknown event types are ignored.
func (s *InputState) Handle(event Event) {
	switch e := event.(type) {
	case MotionNotify:
		s.setPosition(e.X, e.Y)
	case ButtonPress:
		s.setPosition(e.X, e.Y)
		s.setButton(e.Button, ButtonDown)
	case ButtonRelease:
		s.setPosition(e.X, e.Y)
		s.setButton(e.Button, ButtonUp)
	}
}

func (s *InputState) setPosition(x, y int) {
	s.position = mgl32.Vec2{float32(x), float32(y)}
	s.hasPosition = true
}

func (s *InputState) setButton(button uint32, state ButtonState) {
	switch button {
	case ButtonLeft:
		s.left = state
	case ButtonRight:
		s.right = state
	}
}

// Position returns the last known pointer position in surface pixels.
// ok is false until the first event carrying a position arrives.
func (s *InputState) Position() (pos mgl32.Vec2, ok bool) {
	return s.position, s.hasPosition
}

// LeftButton returns the state of the left pointer button.
func (s *InputState) LeftButton() ButtonState { return s.left }

// RightButton returns the state of the right pointer button.
func (s *InputState) RightButton() ButtonState { return s.right }

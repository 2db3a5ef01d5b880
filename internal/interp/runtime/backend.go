package runtime

import "io"

// Backend is the Turtle-Backend capability interface (spec §6): the
// evaluator and every turtle-delegating primitive reach the drawing
// device exclusively through this surface. The core never touches a
// windowing or SVG library directly; a back end may be a live GUI, a
// no-op, or (in tests) a pure-math recorder.
//
// Mirrors `bin/logopycli.py`'s `DeferredTKTurtleEnv` method set, with
// the lifecycle/streams/halt members pulled to the front since the
// evaluator's command loop polls them on every iteration regardless of
// whether the program ever touches graphics.
type Backend interface {
	// Lifecycle.
	Initialize(kwargs map[string]string)
	WaitComplete()
	ProcessEvents()

	// Streams.
	Stdout() io.Writer
	Stderr() io.Writer

	// Halt flag: set externally (e.g. a GUI's stop button), polled by
	// the evaluator between commands.
	Halted() bool
	SetHalt(bool)

	// Heading conversion: Logo's 0=up, clockwise heading vs. the
	// standard 0=right, counterclockwise Cartesian angle turtle motion
	// math is usually expressed in.
	CartesianHeading(theta float64) float64
	TurtleHeadingFromCartesian(theta float64) float64

	// Pen state.
	PenUp()
	PenDown()
	IsPenDown() bool
	SetPenColor(color string)
	PenColor() string
	SetPenSize(size float64)
	PenSize() float64
	SetFillColor(color string)
	FillColor() string
	BeginFill()
	EndFill()
	BeginUnfilled()
	EndUnfilled()

	// Motion.
	Forward(dist float64)
	Backward(dist float64)
	Left(degrees float64)
	Right(degrees float64)
	SetPos(x, y float64)
	Home()
	SetHeading(degrees float64)
	Heading() float64
	Pos() (x, y float64)
	Towards(x, y float64) float64

	// Shapes.
	Circle(radius, angle float64, steps int)
	Ellipse(major, minor, angle float64, clockwise bool)
	WriteText(text string, align, font string)

	// Visibility, speed, and canvas.
	ShowTurtle()
	HideTurtle()
	Shown() bool
	SetSpeed(speed float64)
	Speed() float64
	Clear()
	Undo()
	UndoBufferSize() int
	SetUndoBufferSize(n int)
}

// NopBackend implements Backend with no-op drawing; its streams are Out
// and Err, and output to an unset one is discarded. Used when a program runs headless and never touches turtle
// graphics, and as the zero value an Evaluator starts with.
type NopBackend struct {
	Out, Err io.Writer
}

func (NopBackend) Initialize(map[string]string) {}
func (NopBackend) WaitComplete()                {}
func (NopBackend) ProcessEvents()               {}

func (b NopBackend) Stdout() io.Writer {
	if b.Out != nil {
		return b.Out
	}
	return io.Discard
}

func (b NopBackend) Stderr() io.Writer {
	if b.Err != nil {
		return b.Err
	}
	return io.Discard
}

func (NopBackend) Halted() bool  { return false }
func (NopBackend) SetHalt(bool)  {}

func (NopBackend) CartesianHeading(theta float64) float64            { return 90 - theta }
func (NopBackend) TurtleHeadingFromCartesian(theta float64) float64  { return 90 - theta }

func (NopBackend) PenUp()                    {}
func (NopBackend) PenDown()                  {}
func (NopBackend) IsPenDown() bool           { return false }
func (NopBackend) SetPenColor(string)        {}
func (NopBackend) PenColor() string          { return "black" }
func (NopBackend) SetPenSize(float64)        {}
func (NopBackend) PenSize() float64          { return 1 }
func (NopBackend) SetFillColor(string)       {}
func (NopBackend) FillColor() string         { return "black" }
func (NopBackend) BeginFill()                {}
func (NopBackend) EndFill()                  {}
func (NopBackend) BeginUnfilled()            {}
func (NopBackend) EndUnfilled()              {}

func (NopBackend) Forward(float64)           {}
func (NopBackend) Backward(float64)          {}
func (NopBackend) Left(float64)              {}
func (NopBackend) Right(float64)             {}
func (NopBackend) SetPos(float64, float64)   {}
func (NopBackend) Home()                     {}
func (NopBackend) SetHeading(float64)        {}
func (NopBackend) Heading() float64          { return 0 }
func (NopBackend) Pos() (float64, float64)   { return 0, 0 }
func (NopBackend) Towards(float64, float64) float64 { return 0 }

func (NopBackend) Circle(float64, float64, int)        {}
func (NopBackend) Ellipse(float64, float64, float64, bool) {}
func (NopBackend) WriteText(string, string, string)    {}

func (NopBackend) ShowTurtle()       {}
func (NopBackend) HideTurtle()       {}
func (NopBackend) Shown() bool       { return true }
func (NopBackend) SetSpeed(float64)  {}
func (NopBackend) Speed() float64    { return 1 }
func (NopBackend) Clear()            {}
func (NopBackend) Undo()             {}
func (NopBackend) UndoBufferSize() int { return 0 }
func (NopBackend) SetUndoBufferSize(int) {}

var _ Backend = NopBackend{}

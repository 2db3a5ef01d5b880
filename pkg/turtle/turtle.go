// Package turtle implements the Turtle-Backend capability interface
// (internal/interp/runtime.Backend) without any windowing or SVG
// library: a pure-math turtle that tracks position, heading, and pen
// state the way `original_source/logopy/svgturtle.py`'s SVGTurtle does
// its coordinate bookkeeping, minus the SVG document it builds
// alongside that bookkeeping. Useful for golden-file fixture tests and
// as the backend `cmd/logo` installs when the configured backend is
// "turtle" (the default is the headless NopBackend).
package turtle

import (
	"io"
	"math"
	"os"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
)

var _ runtime.Backend = (*Turtle)(nil)

// Segment is one drawn (pen-down) line segment, recorded for tests and
// for any renderer built on top of this package.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          string
	Width          float64
}

// state is the turtle's mutable pose, snapshotted for UNDO the way
// SVGTurtle's fill/hole machinery snapshots its component lists.
type state struct {
	x, y      float64
	heading   float64
	penDown   bool
	penColor  string
	penSize   float64
	fillColor string
	visible   bool
}

// HomeHeading is the heading FORWARD points at after HOME/CLEAR,
// matching SVGTurtle's `home_heading = 90` (Cartesian up).
const HomeHeading = 90.0

// Turtle is a pure-math Backend: it performs no drawing I/O, only
// geometry and state bookkeeping, plus a segment log a caller can
// render however it likes.
type Turtle struct {
	state
	segments []Segment
	undoBuf  []undoOp
	undoCap  int
	speed    float64
	halted   bool
	out, err io.Writer

	fillMode string // "off", "fill", "unfill"
}

type undoOp struct {
	before      state
	segmentsLen int
}

// New returns a Turtle at the origin, pen down, facing HomeHeading,
// writing Stdout/Stderr to os.Stdout/os.Stderr.
func New() *Turtle {
	t := &Turtle{
		state: state{
			heading:   HomeHeading,
			penDown:   true,
			penColor:  "black",
			penSize:   1,
			fillColor: "black",
			visible:   true,
		},
		speed:   5,
		undoCap: 100,
		out:     os.Stdout,
		err:     os.Stderr,
	}
	return t
}

func (t *Turtle) Initialize(map[string]string) {}
func (t *Turtle) WaitComplete()                {}
func (t *Turtle) ProcessEvents()               {}

func (t *Turtle) Stdout() io.Writer { return t.out }
func (t *Turtle) Stderr() io.Writer { return t.err }

// SetStreams lets a caller (cmd/logo) redirect this turtle's Stdout/
// Stderr, e.g. to the process's own streams or a buffer in tests.
func (t *Turtle) SetStreams(out, err io.Writer) { t.out, t.err = out, err }

func (t *Turtle) Halted() bool   { return t.halted }
func (t *Turtle) SetHalt(h bool) { t.halted = h }

// CartesianHeading converts Logo's 0=up, clockwise heading to the
// 0=right, counterclockwise Cartesian angle `math.Sin`/`math.Cos`
// expect, mirroring SVGTurtle's internal convention (it stores
// Cartesian headings directly; Logo's PRIMITIVEs convert at the
// boundary rather than the turtle itself).
func (t *Turtle) CartesianHeading(theta float64) float64 { return 90 - theta }

// TurtleHeadingFromCartesian is CartesianHeading's self-inverse.
func (t *Turtle) TurtleHeadingFromCartesian(theta float64) float64 { return 90 - theta }

func (t *Turtle) pushUndo() {
	t.undoBuf = append(t.undoBuf, undoOp{before: t.state, segmentsLen: len(t.segments)})
	if len(t.undoBuf) > t.undoCap {
		t.undoBuf = t.undoBuf[1:]
	}
}

func (t *Turtle) PenUp()   { t.pushUndo(); t.penDown = false }
func (t *Turtle) PenDown() { t.pushUndo(); t.penDown = true }
func (t *Turtle) IsPenDown() bool { return t.penDown }

func (t *Turtle) SetPenColor(color string) { t.pushUndo(); t.penColor = color }
func (t *Turtle) PenColor() string         { return t.penColor }
func (t *Turtle) SetPenSize(size float64)  { t.pushUndo(); t.penSize = size }
func (t *Turtle) PenSize() float64         { return t.penSize }
func (t *Turtle) SetFillColor(color string) { t.pushUndo(); t.fillColor = color }
func (t *Turtle) FillColor() string        { return t.fillColor }

func (t *Turtle) BeginFill()     { t.fillMode = "fill" }
func (t *Turtle) EndFill()       { t.fillMode = "off" }
func (t *Turtle) BeginUnfilled() { t.fillMode = "unfill" }
func (t *Turtle) EndUnfilled()   { t.fillMode = "off" }

func (t *Turtle) lineTo(x1, y1 float64) {
	if t.penDown {
		t.segments = append(t.segments, Segment{X0: t.x, Y0: t.y, X1: x1, Y1: y1, Color: t.penColor, Width: t.penSize})
	}
	t.x, t.y = x1, y1
}

func (t *Turtle) Forward(dist float64) {
	t.pushUndo()
	rad := deg2rad(t.heading)
	t.lineTo(t.x+dist*math.Cos(rad), t.y+dist*math.Sin(rad))
}

func (t *Turtle) Backward(dist float64) { t.Forward(-dist) }

func (t *Turtle) Left(degrees float64) {
	t.pushUndo()
	t.heading = math.Mod(t.heading+degrees, 360)
}

func (t *Turtle) Right(degrees float64) {
	t.pushUndo()
	t.heading = math.Mod(t.heading-degrees, 360)
	if t.heading < 0 {
		t.heading += 360
	}
}

func (t *Turtle) SetPos(x, y float64) { t.pushUndo(); t.lineTo(x, y) }
func (t *Turtle) Home()               { t.pushUndo(); t.lineTo(0, 0); t.heading = HomeHeading }
func (t *Turtle) SetHeading(degrees float64) { t.pushUndo(); t.heading = math.Mod(degrees, 360) }
func (t *Turtle) Heading() float64           { return t.heading }
func (t *Turtle) Pos() (float64, float64)    { return t.x, t.y }

func (t *Turtle) Towards(x, y float64) float64 {
	return rad2deg(math.Atan2(y-t.y, x-t.x))
}

// Circle draws an approximation of an arc of the given radius and
// sweep angle, subdivided into steps straight segments (steps<=0
// defaults to one segment per ~6 degrees), mirroring SVGTurtle.circle.
func (t *Turtle) Circle(radius, angle float64, steps int) {
	if steps <= 0 {
		steps = int(math.Ceil(math.Abs(angle) / 6))
		if steps < 1 {
			steps = 1
		}
	}
	step := angle / float64(steps)
	for i := 0; i < steps; i++ {
		t.Forward(2 * radius * math.Sin(deg2rad(step)/2))
		t.Left(step)
	}
}

// Ellipse draws a major/minor-axis ellipse arc by stepping around it
// in small angular increments and chaining straight segments, the
// batch-turtle equivalent of SVGTurtle's parametric ellipse tracer.
func (t *Turtle) Ellipse(major, minor, angle float64, clockwise bool) {
	if angle == 0 {
		return
	}
	steps := int(math.Ceil(math.Abs(angle) / 3))
	if steps < 1 {
		steps = 1
	}
	sign := 1.0
	if clockwise {
		sign = -1.0
	}
	startHeading := t.heading
	startX, startY := t.x, t.y
	cx, cy := startX-major*math.Cos(deg2rad(startHeading)), startY-major*math.Sin(deg2rad(startHeading))
	for i := 1; i <= steps; i++ {
		theta := sign * angle * float64(i) / float64(steps)
		rad := deg2rad(startHeading) + deg2rad(theta)
		x := cx + major*math.Cos(rad)
		y := cy + minor*math.Sin(rad)
		t.pushUndo()
		t.lineTo(x, y)
	}
	t.heading = math.Mod(startHeading+sign*angle, 360)
}

// WriteText records a text annotation as a zero-length segment tagged
// with the text so a renderer can place a label; this package draws
// no glyphs itself.
func (t *Turtle) WriteText(text string, align, font string) {
	t.segments = append(t.segments, Segment{X0: t.x, Y0: t.y, X1: t.x, Y1: t.y, Color: t.penColor})
}

func (t *Turtle) ShowTurtle() { t.pushUndo(); t.visible = true }
func (t *Turtle) HideTurtle() { t.pushUndo(); t.visible = false }
func (t *Turtle) Shown() bool { return t.visible }
func (t *Turtle) SetSpeed(speed float64) { t.speed = speed }
func (t *Turtle) Speed() float64         { return t.speed }

func (t *Turtle) Clear() {
	t.segments = nil
	t.x, t.y = 0, 0
	t.heading = HomeHeading
}

func (t *Turtle) Undo() {
	if len(t.undoBuf) == 0 {
		return
	}
	op := t.undoBuf[len(t.undoBuf)-1]
	t.undoBuf = t.undoBuf[:len(t.undoBuf)-1]
	t.state = op.before
	if op.segmentsLen < len(t.segments) {
		t.segments = t.segments[:op.segmentsLen]
	}
}

func (t *Turtle) UndoBufferSize() int       { return t.undoCap }
func (t *Turtle) SetUndoBufferSize(n int)   { t.undoCap = n }

// Segments returns the recorded pen-down strokes, in draw order, for
// a caller that wants to render or inspect the drawing.
func (t *Turtle) Segments() []Segment { return append([]Segment(nil), t.segments...) }

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

package turtle

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestForwardAtHomeHeadingMovesAlongY(t *testing.T) {
	tt := New()
	tt.Forward(100)
	x, y := tt.Pos()
	if !approxEqual(x, 0) || !approxEqual(y, 100) {
		t.Errorf("Pos() = (%v, %v), want (0, 100) — HomeHeading=90 points up", x, y)
	}
}

func TestBackwardIsNegativeForward(t *testing.T) {
	tt := New()
	tt.Forward(100)
	tt.Backward(100)
	x, y := tt.Pos()
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("Pos() = (%v, %v), want (0, 0)", x, y)
	}
}

func TestRightThenForwardMovesAlongX(t *testing.T) {
	tt := New()
	tt.Right(90)
	tt.Forward(50)
	x, y := tt.Pos()
	if !approxEqual(x, 50) || !approxEqual(y, 0) {
		t.Errorf("Pos() = (%v, %v), want (50, 0)", x, y)
	}
}

func TestSquareReturnsToStart(t *testing.T) {
	tt := New()
	for i := 0; i < 4; i++ {
		tt.Forward(100)
		tt.Right(90)
	}
	x, y := tt.Pos()
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("Pos() after square = (%v, %v), want (0, 0)", x, y)
	}
	if !approxEqual(tt.Heading(), HomeHeading) {
		t.Errorf("Heading() after square = %v, want %v", tt.Heading(), HomeHeading)
	}
}

func TestPenUpSuppressesSegments(t *testing.T) {
	tt := New()
	tt.PenUp()
	tt.Forward(50)
	if len(tt.Segments()) != 0 {
		t.Errorf("Segments() = %v, want none while pen is up", tt.Segments())
	}
	tt.PenDown()
	tt.Forward(50)
	if len(tt.Segments()) != 1 {
		t.Errorf("Segments() len = %d, want 1 after one pen-down move", len(tt.Segments()))
	}
}

func TestUndoRestoresPriorPose(t *testing.T) {
	tt := New()
	tt.Forward(100)
	tt.Right(45)
	tt.Undo()
	if !approxEqual(tt.Heading(), HomeHeading) {
		t.Errorf("Heading() after undo = %v, want %v (RIGHT undone)", tt.Heading(), HomeHeading)
	}
	tt.Undo()
	x, y := tt.Pos()
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("Pos() after second undo = (%v, %v), want (0, 0) (FORWARD undone)", x, y)
	}
}

func TestUndoOnlyDropsASegmentTheUndoneOpDrew(t *testing.T) {
	tt := New()
	tt.Forward(100)
	tt.Right(45) // draws no segment
	if len(tt.Segments()) != 1 {
		t.Fatalf("Segments() len = %d, want 1 after one FORWARD", len(tt.Segments()))
	}
	tt.Undo() // undoes RIGHT; must not touch the FORWARD segment
	if len(tt.Segments()) != 1 {
		t.Errorf("Segments() len = %d after undoing a non-drawing op, want 1", len(tt.Segments()))
	}
	tt.Undo() // undoes FORWARD; must remove its segment
	if len(tt.Segments()) != 0 {
		t.Errorf("Segments() len = %d after undoing FORWARD, want 0", len(tt.Segments()))
	}
}

func TestUndoBufferSizeCapsHistory(t *testing.T) {
	tt := New()
	tt.SetUndoBufferSize(2)
	tt.Right(10)
	tt.Right(10)
	tt.Right(10)
	tt.Undo()
	tt.Undo()
	// Third undo has nothing left to pop (buffer capped at 2); it must
	// not panic and must leave the turtle where the second undo put it.
	before := tt.Heading()
	tt.Undo()
	if tt.Heading() != before {
		t.Errorf("Undo() past an empty buffer changed Heading() from %v to %v", before, tt.Heading())
	}
}

func TestClearResetsPoseAndSegments(t *testing.T) {
	tt := New()
	tt.Forward(100)
	tt.Right(30)
	tt.Clear()
	x, y := tt.Pos()
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("Pos() after CLEAR = (%v, %v), want (0, 0)", x, y)
	}
	if !approxEqual(tt.Heading(), HomeHeading) {
		t.Errorf("Heading() after CLEAR = %v, want %v", tt.Heading(), HomeHeading)
	}
	if len(tt.Segments()) != 0 {
		t.Errorf("Segments() after CLEAR = %v, want none", tt.Segments())
	}
}

func TestCartesianHeadingRoundTrips(t *testing.T) {
	tt := New()
	for _, logoHeading := range []float64{0, 45, 90, 180, 270} {
		cartesian := tt.CartesianHeading(logoHeading)
		back := tt.TurtleHeadingFromCartesian(cartesian)
		if !approxEqual(back, logoHeading) {
			t.Errorf("TurtleHeadingFromCartesian(CartesianHeading(%v)) = %v, want %v", logoHeading, back, logoHeading)
		}
	}
}

func TestTowardsPointsAtTarget(t *testing.T) {
	tt := New()
	// Cartesian angle (0 = right, ccw) to the point directly "east".
	got := tt.Towards(10, 0)
	if !approxEqual(got, 0) {
		t.Errorf("Towards(10, 0) = %v, want 0", got)
	}
}

package builtins

import (
	"fmt"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// colorMap names the 16 standard indexed colors, grounded on
// `logopy/procedure.py`'s COLOR_MAP, used by SETPENCOLOR/
// SETBACKGROUND/FILLED to accept either a named color, an index 0-15,
// or an `[r g b]` triple.
var colorMap = map[int]string{
	0: "black", 1: "blue", 2: "green", 3: "cyan",
	4: "red", 5: "magenta", 6: "yellow", 7: "white",
	8: "brown", 9: "tan", 10: "forest", 11: "aqua",
	12: "salmon", 13: "purple", 14: "orange", 15: "grey",
}

func resolveColor(ctx runtime.Context, name string, v value.Value) (string, error) {
	if l, ok := v.(value.List); ok {
		items := l.Items()
		if len(items) != 3 {
			return "", ctx.NewError("%s expects a list of 3 integers, but received `%s`", name, value.Repr(v, true, false))
		}
		rgb := make([]int, 3)
		for i, item := range items {
			f, ok := value.AsFloat(item)
			if !ok || float64(int(f)) != f {
				return "", ctx.NewError("%s expects a list of integers, but received `%s`", name, value.Repr(v, true, false))
			}
			rgb[i] = int(f)
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), nil
	}
	if f, ok := value.AsFloat(v); ok {
		if named, ok := colorMap[int(f)]; ok {
			return named, nil
		}
	}
	w, ok := v.(value.Word)
	if !ok {
		return "", ctx.NewError("%s expects a color name, index, or RGB list, but received `%s`", name, value.Repr(v, true, false))
	}
	return w.Text, nil
}

// RegisterTurtle installs the turtle-delegation primitives: motion,
// pen state, shapes, visibility/speed/clear/undo, forwarded to the
// installed Turtle-Backend capability (spec §6), grounded on
// `logopy/procedure.py`'s process_forward/process_back/... family.
func RegisterTurtle(procs *runtime.Table) {
	define(procs, "forward", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		d, err := numArg(ctx, "FORWARD", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().Forward(d)
		return nil, nil
	})
	define(procs, "back", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		d, err := numArg(ctx, "BACK", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().Backward(d)
		return nil, nil
	})
	define(procs, "left", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "LEFT", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().Left(a)
		return nil, nil
	})
	define(procs, "right", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "RIGHT", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().Right(a)
		return nil, nil
	})
	define(procs, "setpos", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "SETPOS", args, 0)
		if err != nil {
			return nil, err
		}
		if l.Len() != 2 {
			return nil, ctx.NewError("SETPOS expected a list with 2 members but received `%s`", value.Repr(args[0], true, false))
		}
		x, ok := value.AsFloat(l.Get(0))
		y, ok2 := value.AsFloat(l.Get(1))
		if !ok || !ok2 {
			return nil, ctx.NewError("SETPOS expected a list of 2 numbers but received `%s`", value.Repr(args[0], true, false))
		}
		ctx.Backend().SetPos(x, y)
		return nil, nil
	})
	define(procs, "home", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().Home()
		return nil, nil
	})
	define(procs, "setheading", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "SETHEADING", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetHeading(a)
		return nil, nil
	})
	define(procs, "heading", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewNumberWord(ctx.Backend().Heading()), nil
	})
	define(procs, "pos", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		x, y := ctx.Backend().Pos()
		return value.NewList([]value.Value{value.NewNumberWord(x), value.NewNumberWord(y)}), nil
	})
	define(procs, "xcor", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		x, _ := ctx.Backend().Pos()
		return value.NewNumberWord(x), nil
	})
	define(procs, "ycor", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		_, y := ctx.Backend().Pos()
		return value.NewNumberWord(y), nil
	})
	define(procs, "towards", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "TOWARDS", args, 0)
		if err != nil {
			return nil, err
		}
		if l.Len() != 2 {
			return nil, ctx.NewError("TOWARDS expected a list with 2 members but received `%s`", value.Repr(args[0], true, false))
		}
		x, ok := value.AsFloat(l.Get(0))
		y, ok2 := value.AsFloat(l.Get(1))
		if !ok || !ok2 {
			return nil, ctx.NewError("TOWARDS expected a list of 2 numbers but received `%s`", value.Repr(args[0], true, false))
		}
		return value.NewNumberWord(ctx.Backend().Towards(x, y)), nil
	})
	define(procs, "cartesian.heading", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		h, err := numArg(ctx, "CARTESIAN.HEADING", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(ctx.Backend().CartesianHeading(h)), nil
	})
	define(procs, "turtle.heading", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		h, err := numArg(ctx, "TURTLE.HEADING", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(ctx.Backend().TurtleHeadingFromCartesian(h)), nil
	})
	define(procs, "penup", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().PenUp()
		return nil, nil
	})
	define(procs, "pendown", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().PenDown()
		return nil, nil
	})
	define(procs, "pencolor", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewWord(ctx.Backend().PenColor()), nil
	})
	define(procs, "setpencolor", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		c, err := resolveColor(ctx, "SETPENCOLOR", args[0])
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetPenColor(c)
		return nil, nil
	})
	define(procs, "pensize", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewNumberWord(ctx.Backend().PenSize()), nil
	})
	define(procs, "setpensize", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		s, err := numArg(ctx, "SETPENSIZE", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetPenSize(s)
		return nil, nil
	})
	define(procs, "setbackground", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		c, err := resolveColor(ctx, "SETBACKGROUND", args[0])
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetFillColor(c)
		return nil, nil
	})
	define(procs, "showturtle", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().ShowTurtle()
		return nil, nil
	})
	define(procs, "hideturtle", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().HideTurtle()
		return nil, nil
	})
	define(procs, "setspeed", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		s, err := numArg(ctx, "SETSPEED", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetSpeed(s)
		return nil, nil
	})
	define(procs, "clean", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().Clear()
		return nil, nil
	})
	define(procs, "clearscreen", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().Clear()
		ctx.Backend().Home()
		return nil, nil
	})
	define(procs, "undo", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().Undo()
		return nil, nil
	})
	define(procs, "undobufferentries", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewNumberWord(float64(ctx.Backend().UndoBufferSize())), nil
	})
	define(procs, "setundobuffer", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := intArg(ctx, "SETUNDOBUFFER", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetUndoBufferSize(n)
		return nil, nil
	})
	define(procs, "circle", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		radius, err := numArg(ctx, "CIRCLE", args, 0)
		if err != nil {
			return nil, err
		}
		angle, err := numArg(ctx, "CIRCLE", args, 1)
		if err != nil {
			return nil, err
		}
		ctx.Backend().Circle(radius, angle, 0)
		return nil, nil
	})
	define(procs, "arc", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		angle, err := numArg(ctx, "ARC", args, 0)
		if err != nil {
			return nil, err
		}
		radius, err := numArg(ctx, "ARC", args, 1)
		if err != nil {
			return nil, err
		}
		b := ctx.Backend()
		isDown := b.IsPenDown()
		x, y := b.Pos()
		heading := b.Heading()
		b.PenUp()
		b.Right(90)
		b.Forward(radius)
		b.Left(90)
		if isDown {
			b.PenDown()
		}
		b.Circle(radius, angle, 0)
		b.PenUp()
		b.SetPos(x, y)
		b.SetHeading(heading)
		if isDown {
			b.PenDown()
		}
		return nil, nil
	})
	defineOptional(procs, "polygon", 2, 4, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := intArg(ctx, "POLYGON", args, 0)
		if err != nil {
			return nil, err
		}
		radius, err := numArg(ctx, "POLYGON", args, 1)
		if err != nil {
			return nil, err
		}
		clockwise := true
		if len(args) >= 3 {
			clockwise, err = boolArg(ctx, "POLYGON", args, 2)
			if err != nil {
				return nil, err
			}
		}
		sides := n
		if len(args) == 4 {
			sides, err = intArg(ctx, "POLYGON", args, 3)
			if err != nil {
				return nil, err
			}
		}
		degrees := 360.0
		if n != sides {
			degrees = (360.0 / float64(n)) * float64(sides)
		}
		if clockwise {
			degrees = -degrees
		}
		ctx.Backend().Circle(radius, degrees, sides)
		return nil, nil
	})
	defineOptional(procs, "ext.ellipse", 2, 4, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		major, err := numArg(ctx, "EXT.ELLIPSE", args, 0)
		if err != nil {
			return nil, err
		}
		minor, err := numArg(ctx, "EXT.ELLIPSE", args, 1)
		if err != nil {
			return nil, err
		}
		angle := 360.0
		if len(args) >= 3 {
			angle, err = numArg(ctx, "EXT.ELLIPSE", args, 2)
			if err != nil {
				return nil, err
			}
		}
		clockwise := true
		if len(args) == 4 {
			clockwise, err = boolArg(ctx, "EXT.ELLIPSE", args, 3)
			if err != nil {
				return nil, err
			}
		}
		ctx.Backend().Ellipse(major, minor, angle, clockwise)
		return nil, nil
	})
	define(procs, "ext.unfilled", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().BeginUnfilled()
		defer ctx.Backend().EndUnfilled()
		return ctx.RunValue(args[0])
	})
	define(procs, "filled", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		c, err := resolveColor(ctx, "FILLED", args[0])
		if err != nil {
			return nil, err
		}
		ctx.Backend().SetFillColor(c)
		ctx.Backend().BeginFill()
		defer ctx.Backend().EndFill()
		return ctx.RunValue(args[1])
	})
	defineOptional(procs, "label", 1, 3, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		text, err := wordArg(ctx, "LABEL", args, 0)
		if err != nil {
			return nil, err
		}
		align := "left"
		if len(args) >= 2 {
			a, err := wordArg(ctx, "LABEL", args, 1)
			if err != nil {
				return nil, err
			}
			align = a.Text
		}
		font := "Arial"
		if len(args) == 3 {
			l, err := listArg(ctx, "LABEL", args, 2)
			if err != nil {
				return nil, err
			}
			if l.Len() > 0 {
				if w, ok := l.Get(0).(value.Word); ok {
					font = w.Text
				}
			}
		}
		ctx.Backend().WriteText(text.Text, align, font)
		return nil, nil
	})
}

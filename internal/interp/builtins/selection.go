package builtins

import (
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterSelection installs FIRST/FIRSTS/LAST/BUTFIRST/BUTFIRSTS/
// BUTLAST/ITEM/COUNT/MEMBER, grounded on `logopy/procedure.py`'s
// same-named process_* functions. ITEM rejects only index < 1 (spec.md
// §9's recorded Open Question resolution, not index <= 0).
func RegisterSelection(procs *runtime.Table) {
	define(procs, "first", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			if t.Len() == 0 {
				return nil, ctx.NewError("FIRST does not like an empty list as input")
			}
			return t.Get(0), nil
		case value.Word:
			runes := []rune(t.Text)
			if len(runes) == 0 {
				return nil, ctx.NewError("FIRST does not like an empty word as input")
			}
			return value.NewWord(string(runes[0])), nil
		default:
			return nil, ctx.NewError("FIRST cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "firsts", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "FIRSTS", args, 0)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, 0, l.Len())
		for _, item := range l.Items() {
			first, err := firstOf(ctx, "FIRSTS", item)
			if err != nil {
				return nil, err
			}
			out = append(out, first)
		}
		return value.NewList(out), nil
	})
	define(procs, "last", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			if t.Len() == 0 {
				return nil, ctx.NewError("LAST does not like an empty list as input")
			}
			return t.Get(t.Len() - 1), nil
		case value.Word:
			runes := []rune(t.Text)
			if len(runes) == 0 {
				return nil, ctx.NewError("LAST does not like an empty word as input")
			}
			return value.NewWord(string(runes[len(runes)-1])), nil
		default:
			return nil, ctx.NewError("LAST cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "butfirst", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			if t.Len() == 0 {
				return nil, ctx.NewError("BUTFIRST does not like an empty list as input")
			}
			return value.NewList(t.Items()[1:]), nil
		case value.Word:
			runes := []rune(t.Text)
			if len(runes) == 0 {
				return nil, ctx.NewError("BUTFIRST does not like an empty word as input")
			}
			return value.NewWord(string(runes[1:])), nil
		default:
			return nil, ctx.NewError("BUTFIRST cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "butfirsts", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "BUTFIRSTS", args, 0)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, 0, l.Len())
		for _, item := range l.Items() {
			switch t := item.(type) {
			case value.List:
				if t.Len() == 0 {
					return nil, ctx.NewError("BUTFIRSTS does not like an empty list member")
				}
				out = append(out, value.NewList(t.Items()[1:]))
			case value.Word:
				runes := []rune(t.Text)
				if len(runes) == 0 {
					return nil, ctx.NewError("BUTFIRSTS does not like an empty word member")
				}
				out = append(out, value.NewWord(string(runes[1:])))
			}
		}
		return value.NewList(out), nil
	})
	define(procs, "butlast", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			if t.Len() == 0 {
				return nil, ctx.NewError("BUTLAST does not like an empty list as input")
			}
			items := t.Items()
			return value.NewList(items[:len(items)-1]), nil
		case value.Word:
			runes := []rune(t.Text)
			if len(runes) == 0 {
				return nil, ctx.NewError("BUTLAST does not like an empty word as input")
			}
			return value.NewWord(string(runes[:len(runes)-1])), nil
		default:
			return nil, ctx.NewError("BUTLAST cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "item", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		index, err := intArg(ctx, "ITEM", args, 0)
		if err != nil {
			return nil, err
		}
		if index < 1 {
			return nil, ctx.NewError("ITEM index %d out of range", index)
		}
		switch t := args[1].(type) {
		case value.List:
			if index > t.Len() {
				return nil, ctx.NewError("ITEM index %d out of range", index)
			}
			return t.Get(index - 1), nil
		case value.Word:
			runes := []rune(t.Text)
			if index > len(runes) {
				return nil, ctx.NewError("ITEM index %d out of range", index)
			}
			return value.NewWord(string(runes[index-1])), nil
		default:
			return nil, ctx.NewError("ITEM cannot be used on `%s`", value.Repr(args[1], true, false))
		}
	})
	define(procs, "count", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewNumberWord(float64(value.Len(args[0]))), nil
	})
	define(procs, "member", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[1].(type) {
		case value.List:
			items := t.Items()
			for i, item := range items {
				if value.Equal(item, args[0]) {
					return value.NewList(items[i:]), nil
				}
			}
			return value.EmptyList(), nil
		case value.Word:
			needle, ok := args[0].(value.Word)
			if !ok {
				return nil, ctx.NewError("MEMBER expected a word, but got `%s` instead", value.Repr(args[0], true, false))
			}
			runes := []rune(t.Text)
			for i, c := range runes {
				if string(c) == needle.Text {
					return value.NewWord(string(runes[i:])), nil
				}
			}
			return value.NewWord(""), nil
		default:
			return nil, ctx.NewError("MEMBER cannot be used on `%s`", value.Repr(args[1], true, false))
		}
	})
}

func firstOf(ctx runtime.Context, name string, v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case value.List:
		if t.Len() == 0 {
			return nil, ctx.NewError("%s does not like an empty list member", name)
		}
		return t.Get(0), nil
	case value.Word:
		runes := []rune(t.Text)
		if len(runes) == 0 {
			return nil, ctx.NewError("%s does not like an empty word member", name)
		}
		return value.NewWord(string(runes[0])), nil
	default:
		return nil, ctx.NewError("%s cannot be used on `%s`", name, value.Repr(v, true, false))
	}
}

package builtins

import (
	"math/rand"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterListConstruction installs WORD/LIST/SENTENCE/FPUT/LPUT/
// COMBINE/REVERSE/REMOVE/REMDUP/PICK, grounded on
// `logopy/procedure.py`'s same-named process_* functions.
func RegisterListConstruction(procs *runtime.Table) {
	defineVariadic(procs, "word", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		var sb []byte
		for i := range args {
			w, err := wordArg(ctx, "WORD", args, i)
			if err != nil {
				return nil, err
			}
			sb = append(sb, w.Text...)
		}
		return value.NewWord(string(sb)), nil
	})
	defineVariadic(procs, "list", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewList(append([]value.Value{}, args...)), nil
	})
	defineVariadic(procs, "sentence", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewList(flattenSentence(args)), nil
	})
	define(procs, "fput", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "FPUT", args, 1)
		if err != nil {
			return nil, err
		}
		out := append([]value.Value{args[0]}, l.Items()...)
		return value.NewList(out), nil
	})
	define(procs, "lput", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "LPUT", args, 1)
		if err != nil {
			return nil, err
		}
		out := append(append([]value.Value{}, l.Items()...), args[0])
		return value.NewList(out), nil
	})
	define(procs, "combine", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		if l, ok := args[1].(value.List); ok {
			out := append([]value.Value{args[0]}, l.Items()...)
			return value.NewList(out), nil
		}
		a, err := wordArg(ctx, "COMBINE", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := wordArg(ctx, "COMBINE", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewWord(a.Text + b.Text), nil
	})
	define(procs, "reverse", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			items := t.Items()
			out := make([]value.Value, len(items))
			for i, v := range items {
				out[len(items)-1-i] = v
			}
			return value.NewList(out), nil
		case value.Word:
			runes := []rune(t.Text)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return value.NewWord(string(runes)), nil
		default:
			return nil, ctx.NewError("REVERSE cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "remove", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[1].(type) {
		case value.List:
			var out []value.Value
			for _, item := range t.Items() {
				if !value.Equal(item, args[0]) {
					out = append(out, item)
				}
			}
			return value.NewList(out), nil
		case value.Word:
			needle, ok := args[0].(value.Word)
			if !ok {
				return nil, ctx.NewError("REMOVE expected a word, but got `%s` instead", value.Repr(args[0], true, false))
			}
			var sb []rune
			for _, c := range t.Text {
				if string(c) != needle.Text {
					sb = append(sb, c)
				}
			}
			return value.NewWord(string(sb)), nil
		default:
			return nil, ctx.NewError("REMOVE cannot be used on `%s`", value.Repr(args[1], true, false))
		}
	})
	define(procs, "remdup", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.List:
			var out []value.Value
			for i := len(t.Items()) - 1; i >= 0; i-- {
				item := t.Get(i)
				dup := false
				for _, kept := range out {
					if value.Equal(kept, item) {
						dup = true
						break
					}
				}
				if !dup {
					out = append([]value.Value{item}, out...)
				}
			}
			return value.NewList(out), nil
		case value.Word:
			seen := map[rune]bool{}
			var out []rune
			runes := []rune(t.Text)
			for i := len(runes) - 1; i >= 0; i-- {
				if !seen[runes[i]] {
					seen[runes[i]] = true
					out = append([]rune{runes[i]}, out...)
				}
			}
			return value.NewWord(string(out)), nil
		default:
			return nil, ctx.NewError("REMDUP cannot be used on `%s`", value.Repr(args[0], true, false))
		}
	})
	define(procs, "pick", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		l, err := listArg(ctx, "PICK", args, 0)
		if err != nil {
			return nil, err
		}
		if l.Len() == 0 {
			return nil, ctx.NewError("PICK does not like `%s` as input", value.Repr(args[0], true, false))
		}
		return l.Get(rand.Intn(l.Len())), nil
	})
}

// flattenSentence implements SENTENCE's/MAP.SE's flattening rule: list
// arguments contribute their elements, everything else is appended as
// a single item.
func flattenSentence(args []value.Value) []value.Value {
	var out []value.Value
	for _, a := range args {
		if l, ok := a.(value.List); ok {
			out = append(out, l.Items()...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

package builtins

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
	"github.com/maruel/natural"
)

// RegisterMeta installs REPCOUNT, `?`, PRINT/SHOW/TYPE (the primitives
// spec.md §4.2 names as list_repr's callers), PRINTOUT/POT/POTS/SAVE,
// grounded on `logopy/procedure.py`'s process_repcount/process_print/
// process_show/process_type/process_printout/process_pot/process_pots/
// process_save.
func RegisterMeta(procs *runtime.Table) {
	define(procs, "repcount", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.NewNumberWord(float64(ctx.Env().GetRepcount())), nil
	})
	defineOptional(procs, "?", 0, 1, 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n := 0
		if len(args) == 1 {
			i, err := intArg(ctx, "?", args, 0)
			if err != nil {
				return nil, err
			}
			n = i - 1
		}
		v, err := ctx.Env().GetPlaceholder(n)
		if err != nil {
			return nil, ctx.NewError("%s", err.Error())
		}
		return v, nil
	})
	defineVariadic(procs, "print", 1, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		fmt.Fprintln(ctx.Backend().Stdout(), joinReprs(args, false))
		return nil, nil
	})
	defineVariadic(procs, "show", 1, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		fmt.Fprintln(ctx.Backend().Stdout(), joinReprs(args, true))
		return nil, nil
	})
	defineVariadic(procs, "type", 1, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		fmt.Fprint(ctx.Backend().Stdout(), joinReprs(args, false))
		return nil, nil
	})
	define(procs, "printout", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		names, err := procNameList(ctx, "PRINTOUT", args[0])
		if err != nil {
			return nil, err
		}
		out := ctx.Backend().Stdout()
		for _, name := range names {
			if proc, ok := procs.Lookup(name); ok {
				if proc.IsPrimitive() {
					fmt.Fprintln(out, proc.String())
					fmt.Fprintf(out, "%s is a primitive.\n\n", proc.Name)
					continue
				}
				fmt.Fprintln(out, proc.String())
				fmt.Fprintln(out, bodySource(proc.Body))
				fmt.Fprintln(out, "end")
				fmt.Fprintln(out)
			}
		}
		return nil, nil
	})
	defineOptional(procs, "pot", 1, 2, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		names, err := procNameList(ctx, "POT", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 2 {
			flag, err := wordArg(ctx, "POT", args, 1)
			if err != nil {
				return nil, err
			}
			if strings.EqualFold(flag.Text, "json") {
				var found []*runtime.Procedure
				for _, name := range names {
					if proc, ok := procs.Lookup(name); ok {
						found = append(found, proc)
					}
				}
				fmt.Fprintln(ctx.Backend().Stdout(), procsToJSON(found))
				return nil, nil
			}
		}
		out := ctx.Backend().Stdout()
		for _, name := range names {
			if proc, ok := procs.Lookup(name); ok {
				fmt.Fprintln(out, proc.String())
			}
		}
		return nil, nil
	})
	define(procs, "pots", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		names := procs.Names()
		var userDefined []string
		for _, name := range names {
			if proc, ok := procs.Lookup(name); ok && !proc.IsPrimitive() {
				userDefined = append(userDefined, name)
			}
		}
		sort.Slice(userDefined, func(i, j int) bool { return natural.Less(userDefined[i], userDefined[j]) })
		out := ctx.Backend().Stdout()
		for _, name := range userDefined {
			proc, _ := procs.Lookup(name)
			fmt.Fprintln(out, proc.String())
		}
		return nil, nil
	})
	defineOptional(procs, "save", 1, 2, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		filename, err := wordArg(ctx, "SAVE", args, 0)
		if err != nil {
			return nil, err
		}
		asJSON := false
		if len(args) == 2 {
			flag, err := wordArg(ctx, "SAVE", args, 1)
			if err != nil {
				return nil, err
			}
			asJSON = strings.EqualFold(flag.Text, "json")
		}

		names := procs.Names()
		var userDefined []*runtime.Procedure
		for _, name := range names {
			if proc, ok := procs.Lookup(name); ok && !proc.IsPrimitive() {
				userDefined = append(userDefined, proc)
			}
		}
		sort.Slice(userDefined, func(i, j int) bool { return natural.Less(userDefined[i].Name, userDefined[j].Name) })

		global := ctx.Env().GlobalScope()
		varNames := make([]string, 0, len(global))
		for name := range global {
			if global[name] != nil {
				varNames = append(varNames, name)
			}
		}
		sortCollated(varNames)

		f, err := os.Create(filename.Text)
		if err != nil {
			return nil, ctx.NewError("SAVE could not open `%s`: %s", filename.Text, err.Error())
		}
		defer f.Close()

		if asJSON {
			doc := procsToJSON(userDefined)
			for _, name := range varNames {
				doc, err = sjson.Set(doc, "globals.-1", map[string]interface{}{
					"name":  name,
					"value": value.Repr(global[name], false, true),
				})
				if err != nil {
					return nil, ctx.NewError("SAVE could not encode globals: %s", err.Error())
				}
			}
			fmt.Fprintln(f, doc)
			count := len(gjson.Get(doc, "procedures").Array()) + len(gjson.Get(doc, "globals").Array())
			fmt.Fprintf(ctx.Backend().Stdout(), "saved %d entries to `%s`\n", count, filename.Text)
			return nil, nil
		}

		fmt.Fprintln(f, "; PROCEDURES")
		for _, proc := range userDefined {
			fmt.Fprintln(f, proc.String())
			fmt.Fprintln(f, bodySource(proc.Body))
			fmt.Fprintln(f, "end")
			fmt.Fprintln(f)
		}
		fmt.Fprintln(f, "; VARIABLES")
		for _, name := range varNames {
			fmt.Fprintf(f, "make \"%s %s\n", name, value.Repr(global[name], false, true))
		}
		return nil, nil
	})
}

// procsToJSON builds a JSON document describing procs, the machine-
// readable counterpart to POT's plain-text TITLE LINE dump: tooling
// that wants to diff a procedure table across runs can parse this
// instead of scraping `proc.String()` text.
func procsToJSON(procs []*runtime.Procedure) string {
	doc := "{}"
	for _, proc := range procs {
		entry := map[string]interface{}{
			"name":      proc.Name,
			"primitive": proc.IsPrimitive(),
			"minArity":  proc.MinArity(),
			"maxArity":  proc.MaxArity(),
		}
		if !proc.IsPrimitive() {
			entry["required"] = proc.RequiredInputs
			entry["body"] = bodySource(proc.Body)
		}
		doc, _ = sjson.Set(doc, "procedures.-1", entry)
	}
	return doc
}

func joinReprs(args []value.Value, withBraces bool) string {
	parts := make([]string, len(args))
	for i, v := range args {
		switch t := v.(type) {
		case value.List:
			parts[i] = value.Repr(t, withBraces, false)
		case value.Word:
			parts[i] = t.Text
		default:
			parts[i] = value.Repr(v, withBraces, false)
		}
	}
	return strings.Join(parts, " ")
}

func procNameList(ctx runtime.Context, name string, v value.Value) ([]string, error) {
	l, ok := v.(value.List)
	if !ok {
		return nil, ctx.NewError("%s expected a list of words, but received `%s`", name, value.Repr(v, true, false))
	}
	names := make([]string, 0, l.Len())
	for _, item := range l.Items() {
		w, ok := item.(value.Word)
		if !ok {
			return nil, ctx.NewError("%s expected a list of words, but received `%s`", name, value.Repr(item, true, false))
		}
		names = append(names, strings.ToLower(w.Text))
	}
	return names, nil
}

// bodySource renders a procedure body's captured token sequence back
// to Logo source text, the way SAVE/PRINTOUT/POT need to write a
// user-defined procedure out again.
func bodySource(body []parser.Node) string {
	return strings.Join(nodeSourceLines(body), "\n")
}

func nodeSourceLines(nodes []parser.Node) []string {
	var lines []string
	var current []string
	for _, n := range nodes {
		current = append(current, nodeSource(n))
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

func nodeSource(n parser.Node) string {
	switch t := n.(type) {
	case parser.Atom:
		return t.Text
	case parser.Number:
		return t.Text
	case parser.ListLit:
		items := make([]string, len(t.Items))
		for i, item := range t.Items {
			items[i] = nodeSource(item)
		}
		return "[" + strings.Join(items, " ") + "]"
	case parser.Group:
		items := make([]string, len(t.Items))
		for i, item := range t.Items {
			items[i] = nodeSource(item)
		}
		return "(" + strings.Join(items, " ") + ")"
	case parser.SpecialForm:
		items := make([]string, len(t.Args))
		for i, item := range t.Args {
			items[i] = nodeSource(item)
		}
		if len(items) > 0 {
			return "(" + t.Name + " " + strings.Join(items, " ") + ")"
		}
		return "(" + t.Name + ")"
	default:
		return ""
	}
}

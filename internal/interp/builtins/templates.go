package builtins

import (
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterTemplates installs FILTER/FIND/FOREACH/MAP/MAP.SE/REDUCE,
// grounded on `logopy/procedure.py`'s _create_template/process_filter/
// process_find/process_foreach/_process_map/process_reduce and
// spec.md §4.5.7's template-form table.
func RegisterTemplates(procs *runtime.Table) {
	define(procs, "filter", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		data, err := listArg(ctx, "FILTER", args, 1)
		if err != nil {
			return nil, err
		}
		var kept []value.Value
		for n, item := range data.Items() {
			result, err := runTemplateIteration(ctx, "FILTER", args[0], []value.Value{item}, n+1)
			if err != nil {
				return nil, err
			}
			if value.IsTrue(result) {
				kept = append(kept, item)
			} else if !value.IsFalse(result) {
				return nil, ctx.NewError("FILTER template must return either true or false")
			}
		}
		return value.NewList(kept), nil
	})
	define(procs, "find", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		data, err := listArg(ctx, "FIND", args, 1)
		if err != nil {
			return nil, err
		}
		for n, item := range data.Items() {
			result, err := runTemplateIteration(ctx, "FIND", args[0], []value.Value{item}, n+1)
			if err != nil {
				return nil, err
			}
			if value.IsTrue(result) {
				return item, nil
			}
			if !value.IsFalse(result) {
				return nil, ctx.NewError("FIND template must return either true or false")
			}
		}
		return value.EmptyList(), nil
	})
	defineVariadic(procs, "foreach", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		template := args[len(args)-1]
		dataArgs := args[:len(args)-1]
		dataLists := make([]value.List, len(dataArgs))
		for i := range dataArgs {
			l, err := listArg(ctx, "FOREACH", dataArgs, i)
			if err != nil {
				return nil, err
			}
			dataLists[i] = l
		}
		size := dataLists[0].Len()
		for _, l := range dataLists {
			if l.Len() != size {
				return nil, ctx.NewError("FOREACH expects all data lists to be of equal size")
			}
		}
		var result value.Value
		for n := 0; n < size; n++ {
			tuple := make([]value.Value, len(dataLists))
			for i, l := range dataLists {
				tuple[i] = l.Get(n)
			}
			r, err := runTemplateIteration(ctx, "FOREACH", template, tuple, n+1)
			if err != nil {
				return nil, err
			}
			result = r
		}
		return result, nil
	})
	defineVariadic(procs, "map", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return mapTemplate(ctx, "MAP", args)
	})
	defineVariadic(procs, "map.se", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		results, err := mapTemplate(ctx, "MAP.SE", args)
		if err != nil {
			return nil, err
		}
		l := results.(value.List)
		return value.NewList(flattenSentence(l.Items())), nil
	})
	define(procs, "reduce", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		data, err := listArg(ctx, "REDUCE", args, 1)
		if err != nil {
			return nil, err
		}
		items := data.Items()
		if len(items) == 1 {
			return items[0], nil
		}
		accumulator := items[0]
		for _, item := range items[1:] {
			ctx.Env().PushPlaceholders([]value.Value{item, accumulator})
			r, err := runTemplateOnTuple(ctx, "REDUCE", args[0], []value.Value{item, accumulator})
			ctx.Env().PopPlaceholders()
			if err != nil {
				return nil, err
			}
			accumulator = r
		}
		return accumulator, nil
	})
}

// runTemplateIteration wraps one FILTER/FIND/FOREACH/MAP/MAP.SE
// iteration's placeholder/REPCOUNT bookkeeping (spec §4.5.7: "push
// placeholders, push a REPCOUNT frame ..., then pop both regardless of
// success or error") around a single call to runTemplateOnTuple.
func runTemplateIteration(ctx runtime.Context, name string, template value.Value, tuple []value.Value, n int) (value.Value, error) {
	ctx.Env().PushPlaceholders(tuple)
	ctx.Env().CreateRepcountScope()
	ctx.Env().SetRepcount(n)
	defer ctx.Env().DestroyRepcountScope()
	defer ctx.Env().PopPlaceholders()
	return runTemplateOnTuple(ctx, name, template, tuple)
}

func mapTemplate(ctx runtime.Context, name string, args []value.Value) (value.Value, error) {
	template := args[0]
	dataArgs := args[1:]
	dataLists := make([]value.List, len(dataArgs))
	for i := range dataArgs {
		l, err := listArg(ctx, name, dataArgs, i)
		if err != nil {
			return nil, err
		}
		dataLists[i] = l
	}
	size := dataLists[0].Len()
	for _, l := range dataLists {
		if l.Len() != size {
			return nil, ctx.NewError("%s expects all data lists to be of equal size", name)
		}
	}
	results := make([]value.Value, 0, size)
	for n := 0; n < size; n++ {
		tuple := make([]value.Value, len(dataLists))
		for i, l := range dataLists {
			tuple[i] = l.Get(n)
		}
		r, err := runTemplateIteration(ctx, name, template, tuple, n+1)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, ctx.NewError("%s template must return a value", name)
		}
		results = append(results, r)
	}
	return value.NewList(results), nil
}

// runTemplateOnTuple dispatches a template against one tuple of
// already-evaluated data, per spec.md §4.5.7's named-procedure/
// qmark-form/lambda-form/procedure-text table.
func runTemplateOnTuple(ctx runtime.Context, name string, template value.Value, tuple []value.Value) (value.Value, error) {
	if w, ok := template.(value.Word); ok {
		return ctx.CallProcedure(w.Text, tuple)
	}
	l, ok := template.(value.List)
	if !ok {
		return nil, ctx.NewError("%s expected a template, but received `%s`", name, value.Repr(template, true, false))
	}
	items := l.Items()
	if len(items) == 0 {
		return nil, ctx.NewError("%s received an empty template", name)
	}
	first, ok := items[0].(value.List)
	if !ok {
		// qmark-form: the whole list is an instruction list; ?/?N
		// placeholders were already pushed by the caller.
		return ctx.RunValue(l)
	}
	allLines := true
	for _, it := range items[1:] {
		if _, ok := it.(value.List); !ok {
			allLines = false
			break
		}
	}
	names := first.Items()
	ctx.Env().PushScope()
	defer ctx.Env().PopScope()
	for i, nameV := range names {
		paramName, ok := nameV.(value.Word)
		if !ok {
			return nil, ctx.NewError("%s template parameter names must be words, but received `%s`", name, value.Repr(nameV, true, false))
		}
		var bound value.Value
		if i < len(tuple) {
			bound = tuple[i]
		}
		// Parameter names may be written `x` or `:x`; both bind x.
		pname := paramName.Text
		if len(pname) > 1 && pname[0] == ':' {
			pname = pname[1:]
		}
		ctx.Env().LocalMake(pname, bound)
	}
	if allLines {
		var body []value.Value
		for _, line := range items[1:] {
			body = append(body, line.(value.List).Items()...)
		}
		return ctx.RunValue(value.NewList(body))
	}
	return ctx.RunValue(value.NewList(items[1:]))
}

package builtins

import "github.com/cwaldbieser/logopy/internal/interp/runtime"

// RegisterAll installs every primitive this package defines into
// procs, mirroring the teacher's register.go:RegisterAll entry point
// but driving this package's lean per-category RegisterXxx functions
// instead of a Category-aware registry.
func RegisterAll(procs *runtime.Table) {
	RegisterArithmetic(procs)
	RegisterTrig(procs)
	RegisterPredicates(procs)
	RegisterListConstruction(procs)
	RegisterSelection(procs)
	RegisterConversion(procs)
	RegisterLogical(procs)
	RegisterVariables(procs)
	RegisterStacks(procs)
	RegisterControl(procs)
	RegisterIteration(procs)
	RegisterTemplates(procs)
	RegisterMeta(procs)
	RegisterTurtle(procs)
}

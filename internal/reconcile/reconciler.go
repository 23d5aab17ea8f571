package reconcile

import (
	"mkprop/internal/diagnostic"
	"mkprop/internal/grammar"
	"mkprop/internal/match"
)

// Mode selects how driver data is applied.
type Mode string

const (
	// ModeBuild reconciles the template against driver data.
	ModeBuild Mode = "build"
	// ModeSketch ignores driver data and resolves every constant to -1.
	ModeSketch Mode = "sketch"
)

// maxSuggestions bounds the names offered on an unused binding.
const maxSuggestions = 3

// Result is the outcome of a reconciliation.
type Result struct {
	Mode Mode
	// Fields is the constant table to emit.
	Fields *ResolvedFields
	// Diagnostics holds the advisory warnings, in emission order.
	Diagnostics diagnostic.Diagnostics
}

// Build reconciles t against the driver-data bindings defs.
func Build(t *grammar.Template, defs []grammar.DefineStatement) *Result {
	res := &Result{Mode: ModeBuild, Fields: NewResolvedFields()}

	assoc := associate(t, &res.Diagnostics)
	names := assoc.live()

	values := make(map[string]int32, len(names))

	for _, d := range dedupe(defs, &res.Diagnostics) {
		constName, ok := assoc.take(d.Name)
		if !ok {
			w := res.Diagnostics.AddWarningf(diagnostic.CategoryBuild, diagnostic.CodeUnusedDriverData, d.Name,
				"Unused driver data label %q", d.Name)
			w.Suggestions = match.Suggest(d.Name, assoc.pending(), match.DefaultMinScore, maxSuggestions)

			continue
		}

		values[constName] = d.Value
	}

	for _, constName := range assoc.live() {
		if !assoc.optional[constName] {
			res.Diagnostics.AddWarningf(diagnostic.CategoryBuild, diagnostic.CodeUnresolvedMapping, constName,
				"Unused non-opt template %q -> %q", assoc.reverse[constName], constName)
		}
	}

	for _, constName := range names {
		if v, ok := values[constName]; ok {
			res.Fields.Set(constName, v)
		} else {
			res.Fields.SetUnresolved(constName)
		}
	}

	return res
}

// Sketch resolves every constant of t to -1. Only template diagnostics are
// reported.
func Sketch(t *grammar.Template) *Result {
	res := &Result{Mode: ModeSketch, Fields: NewResolvedFields()}

	assoc := associate(t, &res.Diagnostics)
	for _, constName := range assoc.live() {
		res.Fields.SetUnresolved(constName)
	}

	return res
}

// dedupe collapses repeated binding names, keeping the first position and
// the last value. Every repeat is a DRIVER DATA warning.
func dedupe(defs []grammar.DefineStatement, diags *diagnostic.Diagnostics) []grammar.DefineStatement {
	out := make([]grammar.DefineStatement, 0, len(defs))
	seen := make(map[string]int, len(defs))

	for _, d := range defs {
		i, ok := seen[d.Name]
		if !ok {
			seen[d.Name] = len(out)
			out = append(out, d)

			continue
		}

		diags.AddWarningf(diagnostic.CategoryDriverData, diagnostic.CodeDuplicateBinding, d.Name,
			"duplicate entry %s is both %d and %d", d.Name, out[i].Value, d.Value)
		out[i].Value = d.Value
	}

	return out
}

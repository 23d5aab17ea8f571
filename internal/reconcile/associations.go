package reconcile

import (
	"mkprop/internal/diagnostic"
	"mkprop/internal/grammar"
)

// associations is a one-to-one relation between driver-data names and
// constant names. forward and reverse always describe the same pairs.
type associations struct {
	forward map[string]string // driver-data name -> const name
	reverse map[string]string // const name -> driver-data name

	// optional holds the OPT flag of the last MAP naming each const.
	optional map[string]bool
	// order lists const names in first-insertion order. It may hold names
	// that were since displaced; live() filters them.
	order []string
}

func newAssociations() *associations {
	return &associations{
		forward:  make(map[string]string),
		reverse:  make(map[string]string),
		optional: make(map[string]bool),
	}
}

// associate builds the relation from the MAP statements of t, reporting
// every collision as a TEMPLATE warning.
func associate(t *grammar.Template, diags *diagnostic.Diagnostics) *associations {
	a := newAssociations()

	for _, m := range t.Maps {
		if oldConst, ok := a.forward[m.DriverDataName]; ok {
			diags.AddWarningf(diagnostic.CategoryTemplate, diagnostic.CodeDuplicateMapping, m.DriverDataName,
				"duplicate mapping %s => (%s and %s)", m.DriverDataName, oldConst, m.ConstName)
		}

		if oldName, ok := a.reverse[m.ConstName]; ok && oldName != m.DriverDataName {
			diags.AddWarningf(diagnostic.CategoryTemplate, diagnostic.CodeDuplicateMapping, m.ConstName,
				"duplicate mapping (%s and %s) => %s", m.DriverDataName, oldName, m.ConstName)
		}

		a.insert(m.DriverDataName, m.ConstName)
		a.optional[m.ConstName] = m.Optional
	}

	return a
}

// insert adds the pair, first removing every pair sharing either side.
func (a *associations) insert(name, constName string) {
	if oldConst, ok := a.forward[name]; ok {
		delete(a.reverse, oldConst)
	}

	if oldName, ok := a.reverse[constName]; ok {
		delete(a.forward, oldName)
	}

	if _, seen := a.optional[constName]; !seen {
		a.order = append(a.order, constName)
	}

	a.forward[name] = constName
	a.reverse[constName] = name
}

// take removes the pair keyed by driver-data name and returns its const name.
func (a *associations) take(name string) (string, bool) {
	constName, ok := a.forward[name]
	if !ok {
		return "", false
	}

	delete(a.forward, name)
	delete(a.reverse, constName)

	return constName, true
}

// live returns the const names currently in the relation, in insertion order.
func (a *associations) live() []string {
	var names []string

	for _, c := range a.order {
		if _, ok := a.reverse[c]; ok {
			names = append(names, c)
		}
	}

	return names
}

// pending returns the driver-data names still waiting for a binding, in the
// insertion order of their const names.
func (a *associations) pending() []string {
	var names []string

	for _, c := range a.live() {
		names = append(names, a.reverse[c])
	}

	return names
}

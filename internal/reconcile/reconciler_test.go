package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkprop/internal/diagnostic"
	"mkprop/internal/grammar"
)

func mustTemplate(t *testing.T, src string) *grammar.Template {
	t.Helper()

	tmpl, err := grammar.ParseTemplate(src)
	require.NoError(t, err)

	return tmpl
}

func mustDriverData(t *testing.T, src string) []grammar.DefineStatement {
	t.Helper()

	defs, err := grammar.ParseDriverData(src)
	require.NoError(t, err)

	return defs
}

func TestBuild_OptionalMappingWithoutBinding(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP LO-2O 3bar_3 . MAP HIGH BAR OPT .")
	defs := mustDriverData(t, "DEF LO-2O -12 .")

	res := Build(tmpl, defs)

	assert.Equal(t, ModeBuild, res.Mode)
	assert.Equal(t, map[string]int32{"3bar_3": -12, "BAR": -1}, res.Fields.Map())
	assert.Zero(t, res.Diagnostics.Len())
}

func TestBuild_UnresolvedNonOptional(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP HIGH BAR .")

	res := Build(tmpl, nil)

	assert.Equal(t, map[string]int32{"BAR": -1}, res.Fields.Map())
	require.Equal(t, 1, res.Diagnostics.Len())

	w := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CategoryBuild, w.Category)
	assert.Equal(t, diagnostic.CodeUnresolvedMapping, w.Code)
	assert.Equal(t, `[BUILD] Unused non-opt template "HIGH" -> "BAR"`, w.String())
}

func TestSketch_IgnoresDriverData(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS S . MAP X A . MAP Y B OPT . MAP Z C .")

	res := Sketch(tmpl)

	assert.Equal(t, ModeSketch, res.Mode)
	assert.Equal(t, map[string]int32{"A": -1, "B": -1, "C": -1}, res.Fields.Map())
	assert.Zero(t, res.Diagnostics.Len())
}

func TestBuild_DuplicateBinding(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP HIGH BAR .")
	defs := mustDriverData(t, "DEF HIGH 12 . DEF HIGH 3000 .")

	res := Build(tmpl, defs)

	dups := res.Diagnostics.ByCode(diagnostic.CodeDuplicateBinding)
	require.Len(t, dups, 1)
	assert.Equal(t, diagnostic.CategoryDriverData, dups[0].Category)
	assert.Equal(t, "duplicate entry HIGH is both 12 and 3000", dups[0].Message)

	v, ok := res.Fields.Get("BAR")
	require.True(t, ok)
	assert.Equal(t, int32(3000), v)
	assert.Equal(t, 1, res.Diagnostics.Len())
}

func TestBuild_UnusedDriverData(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP ELEVATOR-TOP TOP . MAP ELEVATOR-BOTTOM BOTTOM OPT .")
	defs := mustDriverData(t, "DEF ELEVATR_TOP 4 . DEF CLIMBER 9 .")

	res := Build(tmpl, defs)

	unused := res.Diagnostics.ByCode(diagnostic.CodeUnusedDriverData)
	require.Len(t, unused, 2)
	assert.Equal(t, "ELEVATR_TOP", unused[0].Subject)
	assert.Equal(t, []string{"ELEVATOR-TOP"}, unused[0].Suggestions)
	assert.Equal(t, "CLIMBER", unused[1].Subject)
	assert.Empty(t, unused[1].Suggestions)

	unresolved := res.Diagnostics.ByCode(diagnostic.CodeUnresolvedMapping)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "TOP", unresolved[0].Subject)

	assert.Equal(t, map[string]int32{"TOP": -1, "BOTTOM": -1}, res.Fields.Map())
}

func TestBuild_DuplicateMappingSameDriverName(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP HIGH FOO . MAP HIGH BAR .")
	defs := mustDriverData(t, "DEF HIGH 7 .")

	res := Build(tmpl, defs)

	dups := res.Diagnostics.ByCode(diagnostic.CodeDuplicateMapping)
	require.Len(t, dups, 1)
	assert.Equal(t, diagnostic.CategoryTemplate, dups[0].Category)
	assert.Equal(t, "duplicate mapping HIGH => (FOO and BAR)", dups[0].Message)

	// The later mapping replaced the earlier pair entirely.
	assert.Equal(t, map[string]int32{"BAR": 7}, res.Fields.Map())
	assert.Equal(t, 1, res.Diagnostics.Len())
}

func TestBuild_DuplicateMappingSameConstName(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP LOW BAR . MAP HIGH BAR OPT .")
	defs := mustDriverData(t, "DEF LOW 1 .")

	res := Build(tmpl, defs)

	dups := res.Diagnostics.ByCode(diagnostic.CodeDuplicateMapping)
	require.Len(t, dups, 1)
	assert.Equal(t, "duplicate mapping (HIGH and LOW) => BAR", dups[0].Message)

	// LOW lost its mapping, so its binding is unused and BAR stays -1
	// without warning because the last mapping was OPT.
	unused := res.Diagnostics.ByCode(diagnostic.CodeUnusedDriverData)
	require.Len(t, unused, 1)
	assert.Equal(t, "LOW", unused[0].Subject)
	assert.Empty(t, res.Diagnostics.ByCode(diagnostic.CodeUnresolvedMapping))

	assert.Equal(t, map[string]int32{"BAR": -1}, res.Fields.Map())
}

func TestBuild_RepeatedIdenticalMapping(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP HIGH BAR OPT . MAP HIGH BAR .")

	res := Build(tmpl, nil)

	require.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateMapping), 1)

	// The last statement cleared OPT.
	unresolved := res.Diagnostics.ByCode(diagnostic.CodeUnresolvedMapping)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "BAR", unresolved[0].Subject)
}

func TestBuild_CrossConflict(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP A X . MAP B Y . MAP A Y .")
	defs := mustDriverData(t, "DEF A 1 . DEF B 2 .")

	res := Build(tmpl, defs)

	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateMapping), 2)
	assert.Equal(t, map[string]int32{"Y": 1}, res.Fields.Map())

	unused := res.Diagnostics.ByCode(diagnostic.CodeUnusedDriverData)
	require.Len(t, unused, 1)
	assert.Equal(t, "B", unused[0].Subject)
}

func TestBuild_FirstConsumedBindingWins(t *testing.T) {
	// A binding consumes its mapping; nothing else can rebind the constant.
	tmpl := mustTemplate(t, "@CLASS BR . MAP A X .")
	defs := mustDriverData(t, "DEF A 5 . DEF Q 6 .")

	res := Build(tmpl, defs)

	v, _ := res.Fields.Get("X")
	assert.Equal(t, int32(5), v)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeUnusedDriverData), 1)
}

func TestBuild_FieldOrderFollowsTemplate(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP C3 Z . MAP A1 X . MAP B2 Y .")
	defs := mustDriverData(t, "DEF B2 2 . DEF A1 1 . DEF C3 3 .")

	res := Build(tmpl, defs)

	assert.Equal(t, []Field{{"Z", 3}, {"X", 1}, {"Y", 2}}, res.Fields.Fields())
}

func TestSketch_ReportsTemplateDuplicates(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS S . MAP X A . MAP X B .")

	res := Sketch(tmpl)

	require.Equal(t, 1, res.Diagnostics.Len())
	assert.Equal(t, diagnostic.CategoryTemplate, res.Diagnostics.Warnings[0].Category)
	assert.Equal(t, map[string]int32{"B": -1}, res.Fields.Map())
}

func TestResolvedFields(t *testing.T) {
	f := NewResolvedFields()
	f.Set("A", 1)
	f.Set("B", 2)
	f.Set("A", 3)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []Field{{"A", 3}, {"B", 2}}, f.Fields())

	_, ok := f.Get("C")
	assert.False(t, ok)

	var names []string
	for name := range f.All() {
		names = append(names, name)
		break
	}

	assert.Equal(t, []string{"A"}, names)
}

func TestBuild_BoundMinusOneIsResolved(t *testing.T) {
	tmpl := mustTemplate(t, "@CLASS BR . MAP LO X . MAP HI Y OPT .")
	defs := mustDriverData(t, "DEF LO -1 .")

	res := Build(tmpl, defs)

	assert.Equal(t, map[string]int32{"X": -1, "Y": -1}, res.Fields.Map())
	assert.True(t, res.Fields.IsResolved("X"))
	assert.False(t, res.Fields.IsResolved("Y"))
	assert.Equal(t, []string{"Y"}, res.Fields.Unresolved())
}

func TestSketch_NothingResolved(t *testing.T) {
	res := Sketch(mustTemplate(t, "@CLASS S . MAP X A . MAP Y B ."))

	assert.Equal(t, []string{"A", "B"}, res.Fields.Unresolved())
	assert.False(t, res.Fields.IsResolved("A"))
}

func TestResolvedFields_SetClearsUnresolved(t *testing.T) {
	f := NewResolvedFields()
	f.SetUnresolved("A")
	f.Set("A", -1)

	assert.True(t, f.IsResolved("A"))
	assert.Empty(t, f.Unresolved())
	assert.False(t, f.IsResolved("missing"))
}

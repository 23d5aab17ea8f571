package compile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkprop/internal/classfile"
	"mkprop/internal/diagnostic"
	"mkprop/internal/grammar"
	"mkprop/internal/reconcile"
)

func decodeFields(t *testing.T, class []byte) map[string]int32 {
	t.Helper()

	info, err := classfile.Decode(class)
	require.NoError(t, err)

	got := make(map[string]int32, len(info.Fields))

	for _, f := range info.Fields {
		require.NotNil(t, f.ConstantValue, spew.Sdump(f))
		got[f.Name] = *f.ConstantValue
	}

	return got
}

func TestBuild_OptionalMappingUnresolved(t *testing.T) {
	res, err := Build("@CLASS BR . MAP LO-2O 3bar_3 . MAP HIGH BAR OPT .", "DEF LO-2O -12 .", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, reconcile.ModeBuild, res.Mode)
	assert.Equal(t, "BR", res.ClassName)
	assert.Equal(t, map[string]int32{"3bar_3": -12, "BAR": -1}, res.Fields.Map())
	assert.Zero(t, res.Diagnostics.Len(), spew.Sdump(res.Diagnostics))
	assert.Equal(t, res.Fields.Map(), decodeFields(t, res.Class))
}

func TestBuild_RequiredMappingUnresolved(t *testing.T) {
	res, err := Build("@CLASS BR . MAP HIGH BAR .", "", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]int32{"BAR": -1}, res.Fields.Map())

	require.Equal(t, 1, res.Diagnostics.Len())
	w := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CategoryBuild, w.Category)
	assert.Equal(t, diagnostic.CodeUnresolvedMapping, w.Code)
}

func TestSketch_IgnoresDriverData(t *testing.T) {
	res, err := Sketch("@CLASS S . MAP X A . MAP Y B OPT . MAP Z C .", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, reconcile.ModeSketch, res.Mode)
	assert.Equal(t, map[string]int32{"A": -1, "B": -1, "C": -1}, res.Fields.Map())
	assert.Zero(t, res.Diagnostics.Len())
	assert.Equal(t, res.Fields.Map(), decodeFields(t, res.Class))
}

func TestBuild_DuplicateBindingKeepsLast(t *testing.T) {
	res, err := Build("@CLASS BR . MAP HIGH BAR .", "DEF HIGH 12 . DEF HIGH 3000 .", DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateBinding), 1)
	assert.Equal(t, map[string]int32{"BAR": 3000}, decodeFields(t, res.Class))
}

func TestBuild_Int32OverflowIsFatal(t *testing.T) {
	_, err := Build("@CLASS BR . MAP HIGH BAR .", "DEF HIGH 3900000000 .", DefaultOptions())
	require.Error(t, err)

	var pe *grammar.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, grammar.SourceDriverData, pe.Source)
	assert.Equal(t, len("DEF HIGH "), pe.Pos.Offset)
	assert.True(t, strings.HasPrefix(err.Error(), "driver data: "))
}

func TestBuild_TemplateErrorComesFirst(t *testing.T) {
	_, err := Build("@CLASS .", "not driver data", DefaultOptions())

	var pe *grammar.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, grammar.SourceTemplate, pe.Source)
	assert.True(t, strings.HasPrefix(err.Error(), "template: "))
}

func TestBuild_UnusedBindingSuggestion(t *testing.T) {
	res, err := Build(
		"@CLASS Lift . MAP ELEVATOR_TOP TOP . MAP ELEVATOR-BOTTOM BOTTOM .",
		"DEF ELEVATR_TOP 5 . DEF ELEVATOR-BOTTOM 6 .",
		DefaultOptions(),
	)
	require.NoError(t, err)

	unused := res.Diagnostics.ByCode(diagnostic.CodeUnusedDriverData)
	require.Len(t, unused, 1)
	assert.Equal(t, []string{"ELEVATOR_TOP"}, unused[0].Suggestions)
	assert.Equal(t, map[string]int32{"TOP": -1, "BOTTOM": 6}, res.Fields.Map())
}

func TestBuild_ClassVersion(t *testing.T) {
	res, err := Build("@CLASS V .", "", Options{Version: classfile.Version{Major: 61}})
	require.NoError(t, err)

	info, err := classfile.Decode(res.Class)
	require.NoError(t, err)
	assert.Equal(t, uint16(61), info.Version.Major)
	assert.Equal(t, classfile.Version{Major: 61}, res.Version)
}

func TestBuild_LimitError(t *testing.T) {
	name := strings.Repeat("N", classfile.MaxUTF8Len+1)

	_, err := Build("@CLASS A . MAP X "+name+" .", "DEF X 1 .", DefaultOptions())

	var le *classfile.LimitError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, classfile.LimitUTF8Length, le.Kind)
}

func TestBuild_Deterministic(t *testing.T) {
	tmpl := "@CLASS RobotMap . MAP LEFT L . MAP RIGHT R . MAP ARM A OPT ."
	dd := "DEF RIGHT 2 . DEF LEFT 1 ."

	a, err := Build(tmpl, dd, DefaultOptions())
	require.NoError(t, err)

	b, err := Build(tmpl, dd, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a.Class, b.Class))
}

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"mkprop/internal/classfile"
	"mkprop/internal/compile"
)

func TestFromResult(t *testing.T) {
	res, err := compile.Build(
		"@CLASS BR . MAP LO-2O 3bar_3 . MAP HIGH BAR . MAP MID MID OPT .",
		"DEF LO-2O -12 . DEF LOW 4 .",
		compile.DefaultOptions(),
	)
	require.NoError(t, err)

	r := FromResult(res)

	assert.Equal(t, "BR", r.Class)
	assert.Equal(t, "build", r.Mode)
	assert.Equal(t, "52.0", r.ClassVersion)
	assert.Equal(t, len(res.Class), r.Size)
	assert.Equal(t, []FieldReport{
		{Name: "3bar_3", Value: -12},
		{Name: "BAR", Value: -1},
		{Name: "MID", Value: -1},
	}, r.Fields)
	assert.Equal(t, []string{"BAR", "MID"}, r.Unresolved)

	require.Len(t, r.Diagnostics, 2)
	assert.Equal(t, "BUILD", r.Diagnostics[0].Category)
	assert.Equal(t, "unused_driver_data", r.Diagnostics[0].Code)
	assert.Equal(t, "LOW", r.Diagnostics[0].Subject)
	assert.Equal(t, "unresolved_mapping", r.Diagnostics[1].Code)
}

func TestResultYAML_RoundTrip(t *testing.T) {
	res, err := compile.Sketch("@CLASS S . MAP X A . MAP Y B .", compile.DefaultOptions())
	require.NoError(t, err)

	data, err := ResultYAML(res)
	require.NoError(t, err)

	var back BuildReport
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *FromResult(res), back)
	assert.Contains(t, string(data), "mode: sketch")
	assert.NotContains(t, string(data), "diagnostics:")
}

func TestClassYAML(t *testing.T) {
	data, err := classfile.Encode(classfile.Version{Major: 55}, "BR", func(yield func(string, int32) bool) {
		yield("X", 7)
	})
	require.NoError(t, err)

	info, err := classfile.Decode(data)
	require.NoError(t, err)

	r := FromClass(info)
	assert.Equal(t, "BR", r.Class)
	assert.Equal(t, "java/lang/Object", r.Super)
	assert.Equal(t, "55.0", r.ClassVersion)
	assert.Equal(t, 11, r.JavaRelease)
	assert.Equal(t, "0x1031", r.AccessFlags)
	assert.Equal(t, uint16(14), r.PoolCount)

	require.Len(t, r.Fields, 1)
	assert.Equal(t, "0x1019", r.Fields[0].AccessFlags)
	require.NotNil(t, r.Fields[0].Value)
	assert.Equal(t, int32(7), *r.Fields[0].Value)

	require.Len(t, r.Methods, 1)
	assert.Equal(t, "<init>", r.Methods[0].Name)
	assert.Equal(t, "0x1001", r.Methods[0].AccessFlags)
	assert.Equal(t, "2A B7 00 0B B1", r.Methods[0].Code)

	out, err := ClassYAML(info)
	require.NoError(t, err)
	assert.Contains(t, string(out), "java_release: 11")
	assert.Contains(t, string(out), "value: 7")
}

func TestSummary(t *testing.T) {
	res, err := compile.Build("@CLASS BR . MAP HIGH BAR . MAP LOW FOO .", "DEF LOW 3 .", compile.DefaultOptions())
	require.NoError(t, err)

	s := Summary(res)
	lines := strings.Split(strings.TrimSpace(s), "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "BR (build, class version 52.0, "))
	assert.Equal(t, "  BAR = -1 (unresolved)", lines[1])
	assert.Equal(t, "  FOO = 3", lines[2])
	assert.Equal(t, "1 warning(s)", lines[3])
}

func TestFromResult_BoundMinusOneIsResolved(t *testing.T) {
	res, err := compile.Build("@CLASS BR . MAP LO X .", "DEF LO -1 .", compile.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 0, res.Diagnostics.Len())

	r := FromResult(res)
	assert.Equal(t, []FieldReport{{Name: "X", Value: -1}}, r.Fields)
	assert.Empty(t, r.Unresolved)

	assert.Contains(t, Summary(res), "  X = -1\n")
	assert.NotContains(t, Summary(res), "(unresolved)")
}

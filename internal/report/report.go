package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"mkprop/internal/classfile"
	"mkprop/internal/compile"
)

// BuildReport describes one compilation.
type BuildReport struct {
	Class        string             `yaml:"class"`
	Mode         string             `yaml:"mode"`
	ClassVersion string             `yaml:"class_version"`
	Size         int                `yaml:"size"`
	Fields       []FieldReport      `yaml:"fields"`
	Unresolved   []string           `yaml:"unresolved,omitempty"`
	Diagnostics  []DiagnosticReport `yaml:"diagnostics,omitempty"`
}

// FieldReport is one emitted constant.
type FieldReport struct {
	Name  string `yaml:"name"`
	Value int32  `yaml:"value"`
}

// DiagnosticReport is one warning.
type DiagnosticReport struct {
	Category    string   `yaml:"category"`
	Code        string   `yaml:"code"`
	Subject     string   `yaml:"subject,omitempty"`
	Message     string   `yaml:"message"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// FromResult builds a report of res.
func FromResult(res *compile.Result) *BuildReport {
	r := &BuildReport{
		Class:        res.ClassName,
		Mode:         string(res.Mode),
		ClassVersion: res.Version.String(),
		Size:         len(res.Class),
		Fields:       []FieldReport{},
	}

	for name, value := range res.Fields.All() {
		r.Fields = append(r.Fields, FieldReport{Name: name, Value: value})
	}

	r.Unresolved = res.Fields.Unresolved()

	for _, w := range res.Diagnostics.Warnings {
		r.Diagnostics = append(r.Diagnostics, DiagnosticReport{
			Category:    w.Category.String(),
			Code:        w.Code,
			Subject:     w.Subject,
			Message:     w.Message,
			Suggestions: w.Suggestions,
		})
	}

	return r
}

// ResultYAML renders the report of res as YAML.
func ResultYAML(res *compile.Result) ([]byte, error) {
	return yaml.Marshal(FromResult(res))
}

// ClassReport describes a decoded class file.
type ClassReport struct {
	Class        string            `yaml:"class"`
	Super        string            `yaml:"super,omitempty"`
	ClassVersion string            `yaml:"class_version"`
	JavaRelease  int               `yaml:"java_release,omitempty"`
	AccessFlags  string            `yaml:"access_flags"`
	PoolCount    uint16            `yaml:"constant_pool_count"`
	Interfaces   []string          `yaml:"interfaces,omitempty"`
	Fields       []ClassFieldEntry `yaml:"fields"`
	Methods      []MethodEntry     `yaml:"methods"`
}

// ClassFieldEntry is a decoded field. Value is nil for fields without an
// Integer ConstantValue.
type ClassFieldEntry struct {
	Name        string `yaml:"name"`
	Descriptor  string `yaml:"descriptor"`
	AccessFlags string `yaml:"access_flags"`
	Value       *int32 `yaml:"value,omitempty"`
}

// MethodEntry is a decoded method.
type MethodEntry struct {
	Name        string `yaml:"name"`
	Descriptor  string `yaml:"descriptor"`
	AccessFlags string `yaml:"access_flags"`
	MaxStack    uint16 `yaml:"max_stack"`
	MaxLocals   uint16 `yaml:"max_locals"`
	Code        string `yaml:"code"`
}

// FromClass builds a report of a decoded class.
func FromClass(info *classfile.ClassInfo) *ClassReport {
	r := &ClassReport{
		Class:        info.ThisClass,
		Super:        info.SuperClass,
		ClassVersion: info.Version.String(),
		JavaRelease:  info.Version.JavaRelease(),
		AccessFlags:  flags(info.AccessFlags),
		PoolCount:    info.PoolCount,
		Interfaces:   info.Interfaces,
		Fields:       []ClassFieldEntry{},
		Methods:      []MethodEntry{},
	}

	for _, f := range info.Fields {
		r.Fields = append(r.Fields, ClassFieldEntry{
			Name:        f.Name,
			Descriptor:  f.Descriptor,
			AccessFlags: flags(f.AccessFlags),
			Value:       f.ConstantValue,
		})
	}

	for _, m := range info.Methods {
		r.Methods = append(r.Methods, MethodEntry{
			Name:        m.Name,
			Descriptor:  m.Descriptor,
			AccessFlags: flags(m.AccessFlags),
			MaxStack:    m.MaxStack,
			MaxLocals:   m.MaxLocals,
			Code:        fmt.Sprintf("% X", m.Code),
		})
	}

	return r
}

// ClassYAML renders the report of a decoded class as YAML.
func ClassYAML(info *classfile.ClassInfo) ([]byte, error) {
	return yaml.Marshal(FromClass(info))
}

func flags(v uint16) string {
	return fmt.Sprintf("0x%04X", v)
}

// Summary formats a one-line-per-field text summary of res.
func Summary(res *compile.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s, class version %s, %d bytes)\n",
		res.ClassName, res.Mode, res.Version, len(res.Class))

	for name, value := range res.Fields.All() {
		if !res.Fields.IsResolved(name) {
			fmt.Fprintf(&sb, "  %s = %d (unresolved)\n", name, value)
		} else {
			fmt.Fprintf(&sb, "  %s = %d\n", name, value)
		}
	}

	if n := res.Diagnostics.Len(); n > 0 {
		fmt.Fprintf(&sb, "%d warning(s)\n", n)
	}

	return sb.String()
}

package compile

import (
	"fmt"

	"mkprop/internal/classfile"
	"mkprop/internal/diagnostic"
	"mkprop/internal/grammar"
	"mkprop/internal/reconcile"
)

// Options controls class generation.
type Options struct {
	// Version is the class-file version written into the header.
	Version classfile.Version
}

// DefaultOptions returns the default compile options.
func DefaultOptions() Options {
	return Options{Version: classfile.DefaultVersion}
}

// Result is the outcome of one compilation.
type Result struct {
	Mode      reconcile.Mode
	ClassName string
	Version   classfile.Version
	// Fields are the emitted constants, in class-file order.
	Fields      *reconcile.ResolvedFields
	Diagnostics diagnostic.Diagnostics
	// Class is the serialized class file.
	Class []byte
}

// Build compiles template against driverData.
func Build(template, driverData string, opts Options) (*Result, error) {
	t, err := grammar.ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	defs, err := grammar.ParseDriverData(driverData)
	if err != nil {
		return nil, err
	}

	return emit(t, reconcile.Build(t, defs), opts)
}

// Sketch compiles template with every constant set to -1. No driver data is
// read.
func Sketch(template string, opts Options) (*Result, error) {
	t, err := grammar.ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	return emit(t, reconcile.Sketch(t), opts)
}

func emit(t *grammar.Template, r *reconcile.Result, opts Options) (*Result, error) {
	class, err := classfile.Encode(opts.Version, t.ClassName, r.Fields.All())
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", t.ClassName, err)
	}

	return &Result{
		Mode:        r.Mode,
		ClassName:   t.ClassName,
		Version:     opts.Version,
		Fields:      r.Fields,
		Diagnostics: r.Diagnostics,
		Class:       class,
	}, nil
}

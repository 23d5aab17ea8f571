package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds the warnings of one reconciliation, in emission order.
type Diagnostics struct {
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Category names the input the diagnostic is about.
	Category Category
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject is the driver-data or constant name the diagnostic concerns.
	Subject string
	// Suggestions are names the user may have meant.
	Suggestions []string
}

// AddWarning adds a warning diagnostic and returns a pointer to it so
// suggestions can be attached.
func (d *Diagnostics) AddWarning(category Category, code, subject, message string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Category: category,
		Code:     code,
		Message:  message,
		Subject:  subject,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// AddWarningf adds a warning diagnostic with a formatted message.
func (d *Diagnostics) AddWarningf(category Category, code, subject, format string, args ...any) *Diagnostic {
	return d.AddWarning(category, code, subject, fmt.Sprintf(format, args...))
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Warnings)
}

// ByCode returns the warnings carrying code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var res []Diagnostic

	for _, w := range d.Warnings {
		if w.Code == code {
			res = append(res, w)
		}
	}

	return res
}

// String returns a formatted diagnostic string such as
// `[BUILD] Unused driver data label "X"`.
func (d Diagnostic) String() string {
	msg := "[" + d.Category.String() + "] " + d.Message
	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", quoteJoin(d.Suggestions))
	}

	return msg
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, " or ")
}

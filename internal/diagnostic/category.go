package diagnostic

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category names the input a diagnostic is about.
type Category int

const (
	CategoryTemplate   Category = iota // TEMPLATE
	CategoryDriverData                 // DRIVER DATA
	CategoryBuild                      // BUILD
)

// Diagnostic codes.
const (
	CodeDuplicateMapping  = "duplicate_mapping"
	CodeDuplicateBinding  = "duplicate_binding"
	CodeUnusedDriverData  = "unused_driver_data"
	CodeUnresolvedMapping = "unresolved_mapping"
)

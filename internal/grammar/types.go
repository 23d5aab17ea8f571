package grammar

// Template is a parsed template file.
type Template struct {
	// ClassName is the binary name of the class to generate.
	ClassName string
	// Maps holds the MAP statements in input order.
	Maps []MapStatement
}

// MapStatement declares that the driver-data binding DriverDataName supplies
// the value of the constant ConstName.
type MapStatement struct {
	DriverDataName string
	ConstName      string
	// Optional suppresses the warning emitted when no binding arrives.
	Optional bool
}

// DefineStatement is a single driver-data binding.
type DefineStatement struct {
	Name  string
	Value int32
}

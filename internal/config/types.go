package config

import "mkprop/internal/classfile"

// DefaultFile is the project file name used when none is given.
const DefaultFile = "mkprop.yaml"

// Mode values of a job.
const (
	ModeBuild  = "build"
	ModeSketch = "sketch"
)

// Project is the root structure of a project file.
type Project struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// ClassVersion is the default class-file version of every job.
	ClassVersion string `yaml:"class_version,omitempty"`
	// Jobs are run in order.
	Jobs []Job `yaml:"jobs"`

	// Dir is the directory relative paths are resolved against. LoadFile
	// sets it to the directory of the project file.
	Dir string `yaml:"-"`
}

// Job is a single compilation.
type Job struct {
	// Name identifies the job in output. Defaults to the output file name
	// without extension.
	Name string `yaml:"name,omitempty"`
	// Mode is "build" or "sketch".
	Mode       string `yaml:"mode,omitempty"`
	Template   string `yaml:"template"`
	DriverData string `yaml:"driver_data,omitempty"`
	Output     string `yaml:"output"`
	// Report is an optional YAML report path.
	Report       string `yaml:"report,omitempty"`
	ClassVersion string `yaml:"class_version,omitempty"`

	// Version is ClassVersion parsed.
	Version classfile.Version `yaml:"-"`
}

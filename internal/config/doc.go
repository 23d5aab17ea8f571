// Package config loads mkprop project files.
//
// A project file (mkprop.yaml by default) lists compilation jobs. It is
// validated against the embedded JSON schema before it is decoded, then
// defaults are applied and class versions are parsed. Relative paths are
// resolved against the directory holding the project file.
package config

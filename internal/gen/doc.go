// Package gen writes the artifacts of a compilation (class files and
// reports) to disk.
//
// Each file is written to a temporary sibling and renamed into place, so a
// failed run never leaves a truncated class file behind.
package gen

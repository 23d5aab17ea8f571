// Package compile runs the full mkprop pipeline: parse the template and the
// driver data, reconcile them and serialize the resulting class file.
//
// Build and Sketch return a Result holding the resolved fields, the
// advisory diagnostics and the class bytes. Parse errors (which name the
// input they came from) and format-limit errors are fatal. Diagnostics
// never fail a compilation.
package compile

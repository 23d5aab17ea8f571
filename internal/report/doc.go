// Package report renders compilation results and decoded class files as
// YAML documents and short human-readable summaries.
package report

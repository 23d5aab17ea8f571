// Package match scores how alike two identifiers look.
//
// It backs the "did you mean" hints attached to unused driver-data
// warnings: a misspelled binding name is compared against the driver-data
// names the template still expects.
//
// Key functions:
//   - NormalizeIdent: folds case and drops separators
//   - Levenshtein: computes edit distance between strings
//   - Rank / Suggest: orders candidate names by similarity
package match

// Package reconcile merges template mappings with driver-data bindings into
// the final constant table of a class.
//
// Reconciliation runs in statement order:
//
//  1. MAP statements build a one-to-one relation between driver-data names
//     and constant names. A statement that collides with an earlier one on
//     either side replaces it and is reported as a TEMPLATE warning.
//  2. DEF statements are deduplicated; the later value of a repeated name
//     wins and the repeat is reported as a DRIVER DATA warning.
//  3. Each binding resolves the constant its name is mapped to and consumes
//     that mapping. Bindings nothing maps are BUILD warnings.
//  4. Mappings left unconsumed resolve to -1; those not marked OPT are BUILD
//     warnings.
//
// Sketch mode skips steps 2 to 4 and resolves every constant to -1.
package reconcile

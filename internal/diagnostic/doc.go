// Package diagnostic provides the advisory warnings produced while
// reconciling a template with driver data.
//
// Diagnostics never stop a build. Each one carries a category naming the
// input it is about:
//   - TEMPLATE: duplicate mappings inside the template
//   - DRIVER DATA: duplicate bindings inside the driver data
//   - BUILD: bindings nothing consumed, mappings nothing resolved
package diagnostic

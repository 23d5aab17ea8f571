// Package grammar parses the two mkprop text formats into statement lists.
//
// # Template
//
//	@CLASS RobotMap .
//	MAP LEFT-DRIVE LEFT_DRIVE_PORT .
//	MAP ARM-LIMIT ARM_LIMIT_SWITCH OPT .
//
// A template names the class to generate and maps driver-data names to
// constant names. A mapping marked OPT does not warn when no driver data
// supplies its value.
//
// # Driver data
//
//	DEF LEFT-DRIVE 3 .
//	DEF ARM-LIMIT -1 .
//
// Whitespace is any run of spaces, tabs and newlines. Identifiers match
// [A-Za-z0-9_-]+ and are case-sensitive.
//
// Both parsers are total: the whole input must be consumed, otherwise a
// *ParseError reports the unconsumed suffix starting at the statement that
// failed, plus the position of the token that could not be matched.
//
// No semantic validation happens here; duplicates are the reconciler's job.
package grammar

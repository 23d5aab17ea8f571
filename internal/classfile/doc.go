// Package classfile emits and reads back the narrow class-file shape mkprop
// produces: one public class extending java/lang/Object, a default
// constructor, and public static final int fields carrying ConstantValue
// attributes.
//
// # Constant pool layout
//
// The pool starts with eleven fixed entries whose IDs are part of the
// format contract (see the ID constants). Field names and values follow as
// fresh entries in insertion order. The pool is never deduplicated: two
// fields holding the same value get two Integer entries.
//
// # Limits
//
// Pool IDs stop at 0xFFFE, the field table at 0xFFFF entries and every
// modified UTF-8 payload at 0xFFFF bytes. Exceeding any of them yields a
// *LimitError; nothing is written.
package classfile

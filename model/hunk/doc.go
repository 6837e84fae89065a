// Package hunk models parsed diff hunks for the four classic diff dialects
// (normal, unified, context and ed edit-script).
//
// A Hunk owns its ranges and the ordered Lines read from the diff. Lines and
// hunks are tagged with their format.Format; mixing dialects is a programming
// error and panics.
package hunk

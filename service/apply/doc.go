// Package apply implements the hunk application engine: given the hunks of one
// diff dialect and the file they describe, it writes the modified file or, in
// reverse, recovers the original one.
//
// A Hunks value is populated by a parser (AddHunk, AddLine, SetFile1Header,
// SetFile2Header) and consumed once by Apply.
package apply

// Package idgen generates the run identifiers attached to every patch
// application (logs, spans, action output). Identifiers are opaque strings;
// NewFunc can be replaced in tests.
package idgen

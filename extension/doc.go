// Package extension provides the run-time registry of action services the
// textpatch façade dispatches to. Besides the built-in system/patch service,
// applications may register their own types.Service implementations.
//
// The registry is normally modified through the public APIs under the root
// textpatch package, therefore most applications do not need to import this
// package directly.
package extension

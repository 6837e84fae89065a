package types

// Service is an action service: a named catalogue of executable methods
// taking typed input and output.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}

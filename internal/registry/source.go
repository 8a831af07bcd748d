// Package registry discovers theme definitions and holds the compiled brands
// in an immutable, ranked registry.
package registry

// Source indicates where a theme originated from.
type Source int

const (
	// SourceBuiltIn indicates a theme bundled with the application.
	SourceBuiltIn Source = iota
	// SourceUser indicates a theme from the user's theme directory.
	SourceUser
)

// String returns a human-readable representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceBuiltIn:
		return "built-in"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

//go:build validity_testmock

package valid

// UnsafeNewUnvalidated creates a Valid[T] without running any predicate.
//
// This is only available when building with the "validity_testmock" tag, so
// production builds cannot contain the bypass. It exists so test code can
// construct known-good fixtures without re-deriving validation logic; it
// goes without saying that it voids every guarantee the wrapper otherwise
// carries.
func UnsafeNewUnvalidated[T any](value T) Valid[T] {
	return Valid[T]{value: value, checked: true}
}

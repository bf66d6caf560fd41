package valid

import "time"

// NoContext is the unit context for predicates that need no external data.
// Payload types whose checks are entirely self-contained (length, charset,
// range) declare it as their context type, which also unlocks the
// no-argument Validate entry point.
type NoContext struct{}

// Validatable is the contract a payload type implements to participate in
// validation. The Context type parameter declares what auxiliary data the
// predicate needs to read: NoContext for self-contained checks, or e.g. a
// store handle for existence checks. The context is borrowed for the
// duration of the call only; implementations must not retain it.
//
// A concrete type can carry at most one IsValid method, so each type has a
// single, unambiguous definition of "valid". Use newtypes to give distinct
// meanings independent rules.
type Validatable[Context any] interface {
	// IsValid reports whether the value is valid. A nil return means valid;
	// a non-nil return is the domain-specific reason validation failed.
	// The receiver must not be mutated. The predicate may read from ctx,
	// including performing blocking lookups; any timeout or retry policy
	// belongs to the context provider, not to this package.
	IsValid(ctx Context) error
}

// ValidateWith runs value's predicate with the given context. On success the
// value is moved into a Valid wrapper and returned. On failure the
// predicate's error is returned unchanged, with no wrapping or enrichment,
// and no wrapper exists for this attempt.
//
// ValidateWith consumes its argument in the sense that the caller receives
// nothing back on failure; callers that need to retry must construct a fresh
// candidate, and callers that need failure details must encode them in the
// payload type's own error values.
func ValidateWith[T Validatable[C], C any](value T, ctx C) (Valid[T], error) {
	start := time.Now()

	err := value.IsValid(ctx)

	observeCheck(value, time.Since(start), err)

	if err != nil {
		return Valid[T]{}, err
	}

	return Valid[T]{value: value, checked: true}, nil
}

// Validate runs value's predicate without a context. It is available only
// for payload types whose declared context is NoContext; calling it on a
// type that requires real context is a compile error, not a runtime one.
// Behavior is otherwise identical to ValidateWith(value, NoContext{}).
func Validate[T Validatable[NoContext]](value T) (Valid[T], error) {
	return ValidateWith(value, NoContext{})
}

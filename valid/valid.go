package valid

import (
	"cmp"
	"errors"
	"fmt"
	"hash"
)

// ErrNotHashable is returned by Valid.UpdateHash when the wrapped payload
// does not implement hash delegation itself.
var ErrNotHashable = errors.New("valid: payload does not implement UpdateHash")

// Valid wraps a single payload value that has passed its type's validation
// predicate. A Valid[T] can only be constructed by Validate or ValidateWith,
// so holding one is proof that the payload was valid at construction time.
//
// The wrapper performs no transformation: the stored payload is exactly the
// value that was passed into validation. It also exposes no mutable access to
// the payload, so the proof cannot be invalidated after construction.
//
// The zero Valid[T] is not a proof. Accessors panic on it, so a zero value
// smuggled past an unchecked error cannot masquerade as validated data.
type Valid[T any] struct {
	value   T
	checked bool
}

// Get returns a copy of the wrapped payload for read access.
// It panics if called on the zero Valid[T], which never went through
// validation.
func (v Valid[T]) Get() T {
	if !v.checked {
		panic("valid: Get called on zero Valid")
	}

	return v.value
}

// Unwrap extracts the payload, ending the proof. The returned value carries
// no residual marker: validity is a property of holding the wrapper, not a
// permanent tag on the value, so callers that need the guarantee again after
// unwrapping must re-validate.
// It panics if called on the zero Valid[T].
func (v Valid[T]) Unwrap() T {
	if !v.checked {
		panic("valid: Unwrap called on zero Valid")
	}

	return v.value
}

// Equals compares this wrapper with another using the provided equality
// function over the payloads. Two wrappers are equal when their payloads are
// equal according to eq.
func (v Valid[T]) Equals(other Valid[T], eq func(T, T) bool) bool {
	return eq(v.value, other.value)
}

// String returns a string representation of the wrapper in the form
// "Valid(payload)".
func (v Valid[T]) String() string {
	return fmt.Sprintf("Valid(%v)", v.value)
}

// UpdateHash feeds the wrapped payload into h when the payload itself knows
// how to hash its contents (i.e. it implements UpdateHash(hash.Hash) error).
// Returns ErrNotHashable for payloads without hash support.
func (v Valid[T]) UpdateHash(h hash.Hash) error {
	hashable, ok := any(v.value).(interface{ UpdateHash(h hash.Hash) error })
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotHashable, v.value)
	}

	return hashable.UpdateHash(h)
}

// Equal reports whether two wrappers hold equal payloads, using the payload
// type's own == semantics.
func Equal[T comparable](a, b Valid[T]) bool {
	return a.value == b.value
}

// Compare orders two wrappers by their payloads, delegating to cmp.Compare.
// The result is identical to comparing the unwrapped payloads directly.
func Compare[T cmp.Ordered](a, b Valid[T]) int {
	return cmp.Compare(a.value, b.value)
}

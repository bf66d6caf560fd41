// Package valid provides a compile-time "proof of validity" pattern: a
// generic wrapper type, Valid[T], that can only be produced by successfully
// running a payload type's own validation predicate over a value.
//
// A type opts in by implementing the Validatable interface:
//
//	type PhoneNumber string
//
//	func (p PhoneNumber) IsValid(_ valid.NoContext) error {
//	    if len(p) != 11 {
//	        return ErrWrongLength
//	    }
//	    return nil
//	}
//
// Callers then obtain a proof by running the construction protocol:
//
//	number, err := valid.Validate(PhoneNumber("01234567890"))
//	if err != nil {
//	    // number does not exist; handle the domain error
//	}
//	dial(number) // dial takes a valid.Valid[PhoneNumber]
//
// Downstream code that accepts a Valid[PhoneNumber] never needs to re-check
// the number: the only way to hold the wrapper is to have passed validation.
//
// Predicates that need external state (for example an existence check against
// a store) declare a context type instead of NoContext and are run with
// ValidateWith, which borrows the context for the duration of the call:
//
//	func (s Subscriber) IsValid(dir *Directory) error { ... }
//
//	sub, err := valid.ValidateWith(candidate, dir)
//
// Because validity is defined by a method on the payload type, each type has
// exactly one definition of "valid" system-wide. Newtype wrappers are
// recommended to give each distinct meaning its own rules: a PhoneNumber and
// a ZipCode both backed by a string should not share one predicate.
package valid

package valid

import (
	"encoding/json"
	"errors"
)

// ErrZeroValid is returned when a zero Valid[T], which never went through
// validation, is asked to serialize itself.
var ErrZeroValid = errors.New("valid: cannot marshal zero Valid")

// MarshalJSON encodes the wrapper transparently as its payload, so a
// Valid[T] serializes exactly as a plain T would.
//
// Valid deliberately has no UnmarshalJSON method: decoding straight into a
// wrapper would mint a proof without running the predicate. Use
// UnmarshalValidate or UnmarshalValidateWith to decode a candidate and
// validate it in one step.
func (v Valid[T]) MarshalJSON() ([]byte, error) {
	if !v.checked {
		return nil, ErrZeroValid
	}

	return json.Marshal(v.value)
}

// UnmarshalValidate decodes a JSON candidate of a context-free payload type
// and runs the construction protocol over it. The wrapper is produced only
// if both the decode and the predicate succeed.
func UnmarshalValidate[T Validatable[NoContext]](data []byte) (Valid[T], error) {
	var candidate T
	if err := json.Unmarshal(data, &candidate); err != nil {
		return Valid[T]{}, err
	}

	return Validate(candidate)
}

// UnmarshalValidateWith decodes a JSON candidate and validates it with the
// given context.
func UnmarshalValidateWith[T Validatable[C], C any](data []byte, ctx C) (Valid[T], error) {
	var candidate T
	if err := json.Unmarshal(data, &candidate); err != nil {
		return Valid[T]{}, err
	}

	return ValidateWith(candidate, ctx)
}

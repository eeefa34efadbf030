// Package validator checks struct tags with go-playground/validator and
// turns failures into one readable error chain.
//
// Besides the stock tags it knows "keyhex": a 32-byte key written as 64 hex
// characters, the form used for wallet and base node keys.
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the error chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

const (
	keyHexTag = "keyhex"
	keySize   = 32
)

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	if err := validator.RegisterValidation(keyHexTag, isKeyHex); err != nil {
		panic(err)
	}
}

func isKeyHex(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != keySize*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate returns nil when v satisfies its tags, otherwise an error
// matching ErrValidationFailed with one line per failing field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

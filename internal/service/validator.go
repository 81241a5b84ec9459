package service

import (
	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// ValidateRequest checks the top-level fields. Items are left to
// ReconcileItems, which runs after authentication.
func ValidateRequest(req dto.TransactionRequest) error {
	if err := validate.Struct(req); err != nil {
		return errs.ErrMissingField
	}

	return nil
}

func validateItem(item dto.ItemDetail) error {
	if err := validate.Struct(item); err != nil {
		return errs.ErrInvalidItem
	}

	return nil
}

package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
)

// Messages are returned to partners verbatim. They name the failing stage
// only, never the individual field or sub-check.
var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrMissingField        = errors.New("Missing or invalid required fields.")
	ErrUnknownPartner      = errors.New("Access Denied!")
	ErrMalformedCredential = errors.New("Invalid Partner Password.")
	ErrCredentialMismatch  = errors.New("Invalid Partner Password.")
	ErrBadTimestampFormat  = errors.New("Invalid timestamp format")
	ErrExpiredTimestamp    = errors.New("Expired.")
	ErrInvalidItem         = errors.New("Invalid item detail provided.")
	ErrTotalAmountMismatch = errors.New("Invalid Total Amount.")
	ErrSignatureMismatch   = errors.New("Invalid Signature.")
)

var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrMissingField:        ErrStatusClient,
	ErrUnknownPartner:      ErrStatusUnauthorized,
	ErrMalformedCredential: ErrStatusUnauthorized,
	ErrCredentialMismatch:  ErrStatusUnauthorized,
	ErrBadTimestampFormat:  ErrStatusClient,
	ErrExpiredTimestamp:    ErrStatusUnauthorized,
	ErrInvalidItem:         ErrStatusClient,
	ErrTotalAmountMismatch: ErrStatusClient,
	ErrSignatureMismatch:   ErrStatusUnauthorized,
}

// codes label outcomes in logs and metrics.
var codes = map[error]string{
	ErrInternalServer:      "internal_error",
	ErrMissingField:        "missing_field",
	ErrUnknownPartner:      "unknown_partner",
	ErrMalformedCredential: "malformed_credential",
	ErrCredentialMismatch:  "credential_mismatch",
	ErrBadTimestampFormat:  "bad_timestamp_format",
	ErrExpiredTimestamp:    "expired_timestamp",
	ErrInvalidItem:         "invalid_item",
	ErrTotalAmountMismatch: "total_amount_mismatch",
	ErrSignatureMismatch:   "signature_mismatch",
}

func GetErrorStatusCode(err error) int {
	if known := resolve(err); known != nil {
		return errorMap[known]
	}
	return errorMap[ErrInternalServer]
}

// Code returns a stable machine-readable name for err.
func Code(err error) string {
	if known := resolve(err); known != nil {
		return codes[known]
	}
	return codes[ErrInternalServer]
}

// Message returns the partner-facing text for err. Anything outside the
// pipeline taxonomy reads as an internal error.
func Message(err error) string {
	if known := resolve(err); known != nil {
		return known.Error()
	}
	return ErrInternalServer.Error()
}

func resolve(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errorMap[err]; ok {
		return err
	}
	for known := range errorMap {
		if errors.Is(err, known) {
			return known
		}
	}
	return nil
}

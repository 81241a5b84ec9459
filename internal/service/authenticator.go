package service

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/amirhxil/partner-transaction-api/internal/domain"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
)

var base64Whitespace = strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "")

type PartnerAuthenticator struct {
	registry *domain.PartnerRegistry
}

func CreatePartnerAuthenticator(registry *domain.PartnerRegistry) PartnerAuthenticator {
	return PartnerAuthenticator{registry: registry}
}

// Authenticate resolves the partner and checks the base64 password against
// its secret. A password that does not decode and one that decodes to the
// wrong secret produce the same message. Spaces, tabs and line breaks
// inside the password are ignored when decoding.
func (a PartnerAuthenticator) Authenticate(partnerKey, encodedPassword string) error {
	credential, ok := a.registry.Lookup(partnerKey)
	if !ok {
		return errs.ErrUnknownPartner
	}

	decoded, err := base64.StdEncoding.DecodeString(base64Whitespace.Replace(encodedPassword))
	if err != nil {
		return errs.ErrMalformedCredential
	}

	if subtle.ConstantTimeCompare(decoded, []byte(credential.Secret)) != 1 {
		return errs.ErrCredentialMismatch
	}

	return nil
}

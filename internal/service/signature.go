package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/amirhxil/partner-transaction-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

type SignatureVerifier struct {
	enforce bool
}

func CreateSignatureVerifier(enforce bool) SignatureVerifier {
	return SignatureVerifier{enforce: enforce}
}

func ExpectedSignature(req dto.TransactionRequest, instant time.Time) string {
	return utils.GenerateSignature(
		utils.FormatSignatureTimestamp(instant),
		req.PartnerKey,
		req.PartnerRefNo,
		req.TotalAmount,
		req.PartnerPassword,
	)
}

// Verify compares the request sig with the recomputed one. A mismatch is an
// error only when enforcement is on; otherwise it is logged.
func (v SignatureVerifier) Verify(ctx context.Context, req dto.TransactionRequest, instant time.Time) error {
	expected := ExpectedSignature(req, instant)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(req.Sig)) == 1 {
		return nil
	}

	if v.enforce {
		return errs.ErrSignatureMismatch
	}

	log.Ctx(ctx).Warn().
		Str("component", "SignatureVerifier").
		Str("partner_key", req.PartnerKey).
		Msg("signature mismatch, enforcement disabled")

	return nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestExpectedSignature_UsesUTCTimestamp(t *testing.T) {
	req := dto.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "FG-00001",
		PartnerPassword: "RkFLRVBBU1NXT1JEMTIzNA==",
		TotalAmount:     30000,
	}
	utc := time.Date(2024, 8, 15, 2, 11, 22, 0, time.UTC)
	local := utc.In(time.FixedZone("MYT", 8*60*60))

	assert.Equal(t, "MTRjYzAyNmM4ZDNlZWVlMjM1N2MwZGNlYTk3YTEzMGMyOTQ5MDE3MGY5YjZjNTdhNTY1ZWY4MmY5Nzk0MTI1Ng==", ExpectedSignature(req, utc))
	assert.Equal(t, ExpectedSignature(req, utc), ExpectedSignature(req, local))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	instant := time.Date(2024, 8, 15, 2, 11, 22, 0, time.UTC)
	req := dto.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "FG-00001",
		PartnerPassword: "RkFLRVBBU1NXT1JEMTIzNA==",
		TotalAmount:     30000,
	}
	req.Sig = ExpectedSignature(req, instant)

	enforced := CreateSignatureVerifier(true)
	assert.NoError(t, enforced.Verify(context.Background(), req, instant))

	lowered := req
	lowered.Sig = "mtrjyzaynmm4zdnlzwvlmjm1n2mwzgnlytk3ytezmgmyoTq5mDe3mgy5yjzjntdhnty1zwy4mmy5nzk0mti1ng=="
	assert.ErrorIs(t, enforced.Verify(context.Background(), lowered, instant), errs.ErrSignatureMismatch)

	assert.NoError(t, CreateSignatureVerifier(false).Verify(context.Background(), lowered, instant))
}

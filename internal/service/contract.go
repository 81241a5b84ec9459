package service

import (
	"context"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
)

type TransactionService interface {
	SubmitTransaction(ctx context.Context, req dto.TransactionRequest) (dto.TransactionResponse, error)
}

// OutcomeRecorder counts pipeline outcomes by code.
type OutcomeRecorder interface {
	ObserveResult(code string)
}

package service

import (
	"context"
	"time"

	"github.com/amirhxil/partner-transaction-api/config"
	"github.com/amirhxil/partner-transaction-api/internal/domain"
	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/internal/publisher"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/amirhxil/partner-transaction-api/pkg/response"
	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const outcomeSuccess = "success"

type TransactionServiceImpl struct {
	authenticator     PartnerAuthenticator
	timestampPolicy   TimestampPolicy
	signatureVerifier SignatureVerifier
	publisher         publisher.SettlementPublisher
	recorder          OutcomeRecorder
	clock             clockwork.Clock
	tracer            trace.Tracer
}

func CreateTransactionService(registry *domain.PartnerRegistry, policy config.PolicyConfig, location *time.Location, clock clockwork.Clock, settlementPublisher publisher.SettlementPublisher, recorder OutcomeRecorder) TransactionService {
	if settlementPublisher == nil {
		settlementPublisher = publisher.NoopPublisher{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &TransactionServiceImpl{
		authenticator:     CreatePartnerAuthenticator(registry),
		timestampPolicy:   CreateTimestampPolicy(clock, location, policy.EnforceTimestampSkew, policy.TimestampSkewMinutes),
		signatureVerifier: CreateSignatureVerifier(policy.EnforceSignature),
		publisher:         settlementPublisher,
		recorder:          recorder,
		clock:             clock,
		tracer:            otel.Tracer("partner-transaction-api/service"),
	}
}

// SubmitTransaction runs the pipeline. The first failing stage ends it and
// its error is returned unwrapped so the caller can map it to a response.
func (s *TransactionServiceImpl) SubmitTransaction(ctx context.Context, req dto.TransactionRequest) (resp dto.TransactionResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "SubmitTransaction", trace.WithAttributes(
		attribute.String("partner.key", req.PartnerKey),
		attribute.String("partner.ref_no", req.PartnerRefNo),
	))
	defer span.End()

	defer func() {
		code := outcomeSuccess
		if err != nil {
			code = errs.Code(err)
			span.SetStatus(codes.Error, code)
		}
		span.SetAttributes(attribute.String("transaction.outcome", code))
		s.recorder.ObserveResult(code)
	}()

	logger := log.Ctx(ctx).With().Str("component", "SubmitTransaction").Logger()

	if err = ValidateRequest(req); err != nil {
		logger.Info().Msg("Validation failed: Missing or invalid required fields.")
		return
	}

	if err = s.authenticator.Authenticate(req.PartnerKey, req.PartnerPassword); err != nil {
		logger.Info().Str("reason", errs.Code(err)).Msg("Validation failed: partner authentication.")
		return
	}

	instant, err := s.timestampPolicy.Check(ctx, req.Timestamp)
	if err != nil {
		logger.Info().Str("reason", errs.Code(err)).Msg("Validation failed: timestamp.")
		return
	}

	if req.Items != nil {
		if err = ReconcileItems(req.Items, req.TotalAmount); err != nil {
			logger.Info().Str("reason", errs.Code(err)).Msg("Validation failed: item details.")
			return
		}
	}

	if err = s.signatureVerifier.Verify(ctx, req, instant); err != nil {
		logger.Info().Msg("Validation failed: Invalid Signature.")
		return
	}

	discount := CalculateDiscount(req.TotalAmount)
	span.SetAttributes(attribute.Int64("transaction.discount_percent", discount.Percent))

	resp = response.BuildSuccessResponse(req.TotalAmount, discount.Amount, discount.FinalAmount)

	s.publishAccepted(ctx, req, discount)

	return resp, nil
}

// publishAccepted never affects the response; failures are only logged.
func (s *TransactionServiceImpl) publishAccepted(ctx context.Context, req dto.TransactionRequest, discount Discount) {
	event := dto.SettlementEvent{
		EventID:       ulid.Make().String(),
		PartnerKey:    req.PartnerKey,
		PartnerRefNo:  req.PartnerRefNo,
		TotalAmount:   req.TotalAmount,
		TotalDiscount: discount.Amount,
		FinalAmount:   discount.FinalAmount,
		Timestamp:     req.Timestamp,
		AcceptedAt:    s.clock.Now().Unix(),
	}

	if err := s.publisher.PublishAccepted(ctx, event); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishAccepted").Str("partner_ref_no", req.PartnerRefNo).Msg("")
	}
}

type noopRecorder struct{}

func (noopRecorder) ObserveResult(string) {}

package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/amirhxil/partner-transaction-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	calls int
	got   dto.TransactionRequest
	resp  dto.TransactionResponse
	err   error
}

func (s *stubService) SubmitTransaction(_ context.Context, req dto.TransactionRequest) (dto.TransactionResponse, error) {
	s.calls++
	s.got = req
	return s.resp, s.err
}

func serve(t *testing.T, svc *stubService, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	CreateTransactionController(e.Group("/api"), svc)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSubmitTrxMessage_Success(t *testing.T) {
	svc := &stubService{resp: response.BuildSuccessResponse(1000, 0, 1000)}

	rec := serve(t, svc, "/api/submittrxmessage", `{"partnerkey":"FAKEGOOGLE","totalamount":1000,"items":null}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":1,"totalamount":1000,"totaldiscount":0,"finalamount":1000,"resultmessage":"Transaction submitted successfully"}`, rec.Body.String())
	assert.Equal(t, "FAKEGOOGLE", svc.got.PartnerKey)
	assert.Nil(t, svc.got.Items)
}

func TestSubmitTrxMessage_LegacyRoute(t *testing.T) {
	svc := &stubService{resp: response.BuildSuccessResponse(1000, 0, 1000)}

	rec := serve(t, svc, "/api/SubmitTrxMessage", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestSubmitTrxMessage_ServiceError(t *testing.T) {
	svc := &stubService{err: errs.ErrUnknownPartner}

	rec := serve(t, svc, "/api/submittrxmessage", `{"partnerkey":"NOBODY"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"result":0,"resultmessage":"Access Denied!"}`, rec.Body.String())
}

func TestSubmitTrxMessage_UndecodableBody(t *testing.T) {
	svc := &stubService{}

	rec := serve(t, svc, "/api/submittrxmessage", `{"totalamount":"lots"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"result":0,"resultmessage":"Missing or invalid required fields."}`, rec.Body.String())
	assert.Zero(t, svc.calls)
}

func TestSubmitTrxMessage_EmptyItemsArrayIsKept(t *testing.T) {
	svc := &stubService{resp: response.BuildSuccessResponse(1, 0, 1)}

	serve(t, svc, "/api/submittrxmessage", `{"items":[]}`)

	require.NotNil(t, svc.got.Items)
	assert.Empty(t, svc.got.Items)
}

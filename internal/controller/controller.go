package controller

import (
	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/internal/service"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/amirhxil/partner-transaction-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.TransactionService
}

func CreateTransactionController(e *echo.Group, service service.TransactionService) {
	c := Controller{
		service: service,
	}

	e.POST("/submittrxmessage", c.SubmitTrxMessage)
	e.POST("/SubmitTrxMessage", c.SubmitTrxMessage)
}

func (c *Controller) SubmitTrxMessage(e echo.Context) error {
	payload := dto.TransactionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SubmitTrxMessage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrMissingField)
	}

	resp, err := c.service.SubmitTransaction(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

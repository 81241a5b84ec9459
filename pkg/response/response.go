package response

import (
	"net/http"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/labstack/echo/v4"
)

type PingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func BuildSuccessResponse(totalAmount, totalDiscount, finalAmount int64) dto.TransactionResponse {
	return dto.TransactionResponse{
		Result:        dto.ResultSuccess,
		TotalAmount:   &totalAmount,
		TotalDiscount: &totalDiscount,
		FinalAmount:   &finalAmount,
		ResultMessage: dto.MessageSubmitted,
	}
}

// BuildErrorResponse carries only the stage message, never the text of a
// wrapped or unexpected error.
func BuildErrorResponse(err error) dto.TransactionResponse {
	return dto.TransactionResponse{
		Result:        dto.ResultFailed,
		ResultMessage: errs.Message(err),
	}
}

func WriteSuccessResponse(c echo.Context, resp dto.TransactionResponse) error {
	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	return c.JSON(errs.GetErrorStatusCode(err), BuildErrorResponse(err))
}

func WritePingResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, PingResponse{Status: "success", Message: message})
}

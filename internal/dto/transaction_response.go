package dto

const (
	ResultFailed  = 0
	ResultSuccess = 1

	MessageSubmitted = "Transaction submitted successfully"
)

type TransactionResponse struct {
	Result        int    `json:"result"`
	TotalAmount   *int64 `json:"totalamount,omitempty"`
	TotalDiscount *int64 `json:"totaldiscount,omitempty"`
	FinalAmount   *int64 `json:"finalamount,omitempty"`
	ResultMessage string `json:"resultmessage"`
}

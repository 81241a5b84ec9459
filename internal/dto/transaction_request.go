package dto

type ItemDetail struct {
	PartnerItemRef string `json:"partneritemref" validate:"notblank"`
	Name           string `json:"name" validate:"notblank"`
	Qty            int64  `json:"qty" validate:"gte=1"`
	UnitPrice      int64  `json:"unitprice" validate:"gt=0"`
}

// TransactionRequest is the partner submission. Amounts are in minor units
// and PartnerPassword is base64 encoded. A nil Items means the key was absent
// or null in the JSON body.
type TransactionRequest struct {
	PartnerKey      string       `json:"partnerkey" validate:"notblank"`
	PartnerRefNo    string       `json:"partnerrefno" validate:"notblank"`
	PartnerPassword string       `json:"partnerpassword" validate:"notblank"`
	TotalAmount     int64        `json:"totalamount" validate:"gt=0"`
	Items           []ItemDetail `json:"items"`
	Timestamp       string       `json:"timestamp" validate:"notblank"`
	Sig             string       `json:"sig" validate:"notblank"`
}

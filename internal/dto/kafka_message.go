package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// SettlementEvent is handed to the settlement backend for every accepted
// transaction. Credentials and the signature are never part of it.
type SettlementEvent struct {
	EventID       string `json:"event_id"`
	PartnerKey    string `json:"partner_key"`
	PartnerRefNo  string `json:"partner_ref_no"`
	TotalAmount   int64  `json:"total_amount"`
	TotalDiscount int64  `json:"total_discount"`
	FinalAmount   int64  `json:"final_amount"`
	Timestamp     string `json:"timestamp"`
	AcceptedAt    int64  `json:"accepted_at"`
}

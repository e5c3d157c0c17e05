package models

// RefundPayload is the asynq task payload for refunding a paid, rejected entry.
type RefundPayload struct {
	EntryID     string `json:"entryId"`
	PaymentID   string `json:"paymentId"`
	AmountPaise int64  `json:"amountPaise"`
	Reason      string `json:"reason"`
}

// NotifyPayload is the asynq task payload for a customer SMS.
type NotifyPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

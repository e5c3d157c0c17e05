package notification

// NotificationService delivers customer-facing messages. SMS is the only channel;
// customers are identified by phone number, not accounts.
type NotificationService interface {
	SendSMS(phone, message string) error
}

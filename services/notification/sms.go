package notification

import (
	"fmt"

	"salonq/config"
	"salonq/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// TwilioNotificationService implements NotificationService over Twilio SMS.
type TwilioNotificationService struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioNotificationService builds the Twilio client from configuration.
func NewTwilioNotificationService() *TwilioNotificationService {
	return &TwilioNotificationService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AppConfig.TwilioAccountSID,
			Password: config.AppConfig.TwilioAuthToken,
		}),
		from: config.AppConfig.TwilioFromNumber,
	}
}

// SendSMS delivers one message to the given phone number.
func (s *TwilioNotificationService) SendSMS(phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		utils.GetLogger().Error("failed to send SMS",
			zap.String("phone", phone), zap.Error(err))
		return fmt.Errorf("failed to send SMS to %s: %w", phone, err)
	}
	return nil
}

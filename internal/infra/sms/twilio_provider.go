package sms

import (
	"context"
	"time"

	"fileshare/config"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"
)

const (
	providerTwilio = "twilio"

	// twilioCodeUnverifiedTrialNumber is returned when a trial account messages a number that
	// is not on its verified caller list.
	twilioCodeUnverifiedTrialNumber = 21608
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type twilioProvider struct {
	api     messageCreator
	from    string
	now     func() time.Time
	limiter *rate.Limiter
}

// NewTwilioProvider creates an SMSProvider backed by the Twilio Messages API.
func NewTwilioProvider(cfg *config.SMSConfig) (service.SMSProvider, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, errors.New("twilio accountSID, authToken and fromNumber must be provided")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	provider := newTwilioProvider(client.Api, cfg.FromNumber)
	if cfg.MessagesPerSecond > 0 {
		provider.limiter = rate.NewLimiter(rate.Limit(cfg.MessagesPerSecond), 1)
	}

	return provider, nil
}

func newTwilioProvider(api messageCreator, from string) *twilioProvider {
	return &twilioProvider{
		api:     api,
		from:    from,
		now:     time.Now,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// Send delivers body to the E.164 number to.
func (p *twilioProvider) Send(ctx context.Context, to, body string) (*service.SMSReceipt, error) {
	// Twilio queues sends above the number's throughput and eventually drops them.
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, domainerrors.NewProviderError(providerTwilio, 0, err.Error())
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.from)
	params.SetBody(body)

	msg, err := p.api.CreateMessage(params)
	if err != nil {
		return nil, translateTwilioError(err)
	}

	receipt := &service.SMSReceipt{SentAt: p.now()}
	if msg.Sid != nil {
		receipt.MessageID = *msg.Sid
	}
	if msg.Status != nil {
		receipt.Status = *msg.Status
	}

	return receipt, nil
}

func translateTwilioError(err error) error {
	var restErr *twilioclient.TwilioRestError
	if !errors.As(err, &restErr) {
		return domainerrors.NewProviderError(providerTwilio, 0, err.Error())
	}
	if restErr.Code == twilioCodeUnverifiedTrialNumber {
		return domainerrors.NewTrialRestrictedError(providerTwilio, restErr.Code, restErr.Message)
	}

	return domainerrors.NewProviderError(providerTwilio, restErr.Code, restErr.Message)
}

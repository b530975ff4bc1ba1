// Package telephony wraps the Twilio voice API: placing outbound calls and
// rendering the TwiML that drives them.
package telephony

import (
	"context"
	"strings"

	"meetline/internal/pkg/config"
	"meetline/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrNotConfigured = errs.New("telephony credentials are not configured")
	ErrEmptyPhone    = errs.New("destination phone number is empty")
)

// TwilioDialer places calls through the Twilio REST API. Status callbacks
// and the voice webhook both point at this service.
type TwilioDialer struct {
	client *twilio.RestClient
	cfg    config.TwilioConfig
}

func NewTwilioDialer(cfg config.TwilioConfig) *TwilioDialer {
	var client *twilio.RestClient
	if cfg.Complete() {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return &TwilioDialer{client: client, cfg: cfg}
}

func (d *TwilioDialer) StartCall(_ context.Context, toPhone string) (string, error) {
	if d.client == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(toPhone) == "" {
		return "", ErrEmptyPhone
	}

	params := &api.CreateCallParams{}
	params.SetTo(toPhone)
	params.SetFrom(d.cfg.FromNumber)
	params.SetUrl(d.cfg.VoiceWebhookURL)
	params.SetStatusCallback(statusCallbackURL(d.cfg.VoiceWebhookURL))
	params.SetStatusCallbackEvent([]string{"initiated", "ringing", "answered", "completed"})

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create outbound call")
	}
	if call.Sid == nil {
		return "", errs.New("provider returned no call sid")
	}

	return *call.Sid, nil
}

// statusCallbackURL rewrites .../twilio/voice to .../twilio/status so one
// base URL configures both webhooks.
func statusCallbackURL(voiceURL string) string {
	if strings.HasSuffix(voiceURL, "/voice") {
		return strings.TrimSuffix(voiceURL, "/voice") + "/status"
	}
	return voiceURL
}

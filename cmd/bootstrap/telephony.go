package bootstrap

import (
	"meetline/internal/pkg/config"
	"meetline/internal/telephony"
	"meetline/internal/usecase/commands"

	"go.uber.org/fx"
)

var TelephonyModule = fx.Module("telephony",
	fx.Provide(
		fx.Annotate(
			NewDialer,
			fx.As(new(commands.Dialer)),
		),
	),
)

func NewDialer(cfg config.Config) *telephony.TwilioDialer {
	return telephony.NewTwilioDialer(cfg.Twilio)
}

package components

import (
	"meetline/internal/handler"
	"meetline/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMeetingRequestHandler,
		api.NewCampaignHandler,
		api.NewCallHandler,
		api.NewLeadHandler,
		api.NewTwilioHandler,
	),
	fx.Invoke(handler.NewRouter),
)

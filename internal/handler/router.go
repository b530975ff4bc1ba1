package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meetline/internal/handler/api"
	"meetline/internal/handler/middleware"
	"meetline/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	meetingRequestHandler *api.MeetingRequestHandler,
	campaignHandler *api.CampaignHandler,
	callHandler *api.CallHandler,
	leadHandler *api.LeadHandler,
	twilioHandler *api.TwilioHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, meetingRequestHandler, campaignHandler, callHandler, leadHandler, twilioHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	meetingRequestHandler *api.MeetingRequestHandler,
	campaignHandler *api.CampaignHandler,
	callHandler *api.CallHandler,
	leadHandler *api.LeadHandler,
	twilioHandler *api.TwilioHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		meetingRequests := apiGroup.Group("/meeting-requests")
		{
			addRoutes(meetingRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: meetingRequestHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: meetingRequestHandler.Get},
				{Method: http.MethodPost, Path: "/:id/availability", Handler: meetingRequestHandler.ReplaceAvailability},
				{Method: http.MethodGet, Path: "/:id/availabilities", Handler: meetingRequestHandler.Availabilities},
				{Method: http.MethodGet, Path: "/:id/suggested-slot", Handler: meetingRequestHandler.SuggestedSlot},
				{Method: http.MethodPost, Path: "/:id/confirm-best-slot", Handler: meetingRequestHandler.ConfirmBestSlot},
				{Method: http.MethodGet, Path: "/:id/meetings", Handler: meetingRequestHandler.Meetings},
			})
		}

		addRoutes(apiGroup.Group("/campaigns"), []route{
			{Method: http.MethodPost, Path: "", Handler: campaignHandler.Launch},
		})

		addRoutes(apiGroup.Group("/calls"), []route{
			{Method: http.MethodPost, Path: "/test", Handler: callHandler.TestCall},
			{Method: http.MethodGet, Path: "/:id", Handler: callHandler.Get},
		})

		addRoutes(apiGroup.Group("/leads"), []route{
			{Method: http.MethodGet, Path: "", Handler: leadHandler.GetByPhone},
			{Method: http.MethodGet, Path: "/:id", Handler: leadHandler.Get},
		})

		addRoutes(apiGroup.Group("/constraints"), []route{
			{Method: http.MethodPost, Path: "/parse", Handler: callHandler.ParseConstraints},
		})
	}

	twilio := engine.Group("/twilio")
	{
		addRoutes(twilio, []route{
			{Method: http.MethodPost, Path: "/status", Handler: twilioHandler.Status},
			{Method: http.MethodPost, Path: "/voice", Handler: twilioHandler.Voice},
			{Method: http.MethodPost, Path: "/voice/gather", Handler: twilioHandler.VoiceGather},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"meetline/internal/handler/api"
	resdto "meetline/internal/handler/dto/response"
	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/queries"
	"meetline/tests/common/builder"
	"meetline/tests/common/httptest"
	commandsmock "meetline/tests/mock/commands"
	queriesmock "meetline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MeetingRequestHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockScheduling   *commandsmock.MockSchedulingCommands
	mockAvailability *commandsmock.MockAvailabilityCommands
	mockQueries      *queriesmock.MockMeetingRequestQueries
	handler          *api.MeetingRequestHandler
}

func (s *MeetingRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduling = commandsmock.NewMockSchedulingCommands(s.mockCtrl)
	s.mockAvailability = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMeetingRequestQueries(s.mockCtrl)
	s.handler = api.NewMeetingRequestHandler(s.mockScheduling, s.mockAvailability, s.mockQueries)

	s.router.POST("/meeting-requests", s.handler.Create)
	s.router.GET("/meeting-requests/:id", s.handler.Get)
	s.router.POST("/meeting-requests/:id/availability", s.handler.ReplaceAvailability)
	s.router.GET("/meeting-requests/:id/suggested-slot", s.handler.SuggestedSlot)
	s.router.POST("/meeting-requests/:id/confirm-best-slot", s.handler.ConfirmBestSlot)
}

func (s *MeetingRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMeetingRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeetingRequestHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *MeetingRequestHandlerTestSuite) TestCreate() {
	url := "/meeting-requests"

	b := builder.NewMeetingRequestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	detail := b.BuildDetail()
	created := &commands.CreateMeetingRequestResult{MeetingRequestID: b.ID, SlotCount: len(detail.Slots)}

	s.Run("success: returns 201 Created with request and slots", func() {
		s.mockScheduling.EXPECT().CreateMeetingRequest(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.MeetingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.MeetingRequest.ID)
		s.Len(response.Slots, len(detail.Slots))
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		testCases := []map[string]any{
			{"title": "no owner", "duration_minutes": 30},
			{"owner_id": "owner-1", "duration_minutes": 30},
			{"owner_id": "owner-1", "title": "no duration"},
			{"owner_id": "owner-1", "title": "bad duration", "duration_minutes": 0},
		}
		for _, body := range testCases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 Bad Request when the schedule configuration is invalid", func() {
		s.mockScheduling.EXPECT().CreateMeetingRequest(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidScheduleConfig).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create meeting request failed")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *MeetingRequestHandlerTestSuite) TestGet() {
	b := builder.NewMeetingRequestBuilder()
	url := "/meeting-requests/" + b.ID.String()

	s.Run("success: returns 200 OK with MeetingRequestResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(b.BuildDetail(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.MeetingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.Title, response.MeetingRequest.Title)
		s.Equal("ACTIVE", response.MeetingRequest.Status)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(nil, queries.ErrMeetingRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Meeting request not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/meeting-requests/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestReplaceAvailability
// ================================================================================

func (s *MeetingRequestHandlerTestSuite) TestReplaceAvailability() {
	b := builder.NewMeetingRequestBuilder()
	url := "/meeting-requests/" + b.ID.String() + "/availability"
	leadID := uuid.New()

	body := map[string]any{
		"lead_id": leadID.String(),
		"windows": []map[string]any{
			{
				"start_time": b.WindowStart.Format(time.RFC3339),
				"end_time":   b.WindowStart.Add(2 * time.Hour).Format(time.RFC3339),
			},
		},
	}

	s.Run("success: returns 200 OK with stored window ids", func() {
		ids := []uuid.UUID{uuid.New()}
		s.mockAvailability.EXPECT().ReplaceAvailability(gomock.Any(), b.ID, leadID, gomock.Any()).
			Return(ids, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.ReplaceAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(leadID, response.LeadID)
		s.Len(response.Availabilities, 1)
		s.Equal(ids[0], response.Availabilities[0].ID)
	})

	s.Run("error: 400 Bad Request when windows are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"lead_id": leadID.String(),
			"windows": []map[string]any{},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "meeting request not found",
				commandsError:  commands.ErrMeetingRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Meeting request not found",
			},
			{
				name:           "request already completed",
				commandsError:  commands.ErrRequestNotActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not active",
			},
			{
				name:           "invalid window",
				commandsError:  commands.ErrInvalidAvailabilityWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid availability window",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().ReplaceAvailability(gomock.Any(), b.ID, leadID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSuggestedSlot
// ================================================================================

func (s *MeetingRequestHandlerTestSuite) TestSuggestedSlot() {
	b := builder.NewMeetingRequestBuilder()
	url := "/meeting-requests/" + b.ID.String() + "/suggested-slot"

	s.Run("success: returns 200 OK with the best slot", func() {
		slot := &queries.SuggestedSlotView{
			StartTime:      b.WindowStart,
			EndTime:        b.WindowStart.Add(30 * time.Minute),
			ParticipantIDs: []uuid.UUID{uuid.New()},
			Score:          110,
		}
		s.mockQueries.EXPECT().SuggestedSlot(gomock.Any(), b.ID, 1).
			Return(slot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SuggestedSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Slot)
		s.Equal(slot.Score, response.Slot.Score)
	})

	s.Run("success: returns 200 OK with null slot when nothing qualifies", func() {
		s.mockQueries.EXPECT().SuggestedSlot(gomock.Any(), b.ID, 1).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SuggestedSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Slot)
	})

	s.Run("success: forwards min_participants from the query string", func() {
		s.mockQueries.EXPECT().SuggestedSlot(gomock.Any(), b.ID, 3).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_participants=3", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockQueries.EXPECT().SuggestedSlot(gomock.Any(), b.ID, 1).
			Return(nil, queries.ErrMeetingRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Meeting request not found")
	})
}

// ================================================================================
// TestConfirmBestSlot
// ================================================================================

func (s *MeetingRequestHandlerTestSuite) TestConfirmBestSlot() {
	b := builder.NewMeetingRequestBuilder()
	url := "/meeting-requests/" + b.ID.String() + "/confirm-best-slot"

	s.Run("success: returns 200 OK with the booked slot", func() {
		primary := uuid.New()
		meetingID := uuid.New()
		result := &commands.ConfirmBestSlotResult{
			StartTime:      b.WindowStart,
			EndTime:        b.WindowStart.Add(30 * time.Minute),
			Score:          215,
			ParticipantIDs: []uuid.UUID{primary, uuid.New()},
			PrimaryLeadID:  primary,
			MeetingID:      meetingID,
		}
		s.mockScheduling.EXPECT().ConfirmBestSlot(gomock.Any(), b.ID, 1).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.ConfirmBestSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(primary, response.PrimaryLeadID)
		s.Equal(meetingID, response.MeetingID)
		s.Equal(result.Score, response.Slot.Score)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "meeting request not found",
				commandsError:  commands.ErrMeetingRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Meeting request not found",
			},
			{
				name:           "request not active",
				commandsError:  commands.ErrRequestNotActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not active",
			},
			{
				name:           "no confirmable slot",
				commandsError:  commands.ErrNoConfirmableSlot,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No suitable slot",
			},
			{
				name:           "invalid configuration",
				commandsError:  commands.ErrInvalidScheduleConfig,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid schedule configuration",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockScheduling.EXPECT().ConfirmBestSlot(gomock.Any(), b.ID, 1).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

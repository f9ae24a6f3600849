package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

type mockTicketService struct {
	registerFn  func(ctx context.Context, eventID, identityID string) (string, error)
	verifyFn    func(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error)
	getTicketFn func(ctx context.Context, eventID, identityID string) (*dto.TicketResponse, error)
	ticketQRFn  func(ctx context.Context, ticketID, eventID string) ([]byte, error)
}

func (m *mockTicketService) Register(ctx context.Context, eventID, identityID string) (string, error) {
	return m.registerFn(ctx, eventID, identityID)
}
func (m *mockTicketService) Verify(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error) {
	return m.verifyFn(ctx, ticketID, eventID)
}
func (m *mockTicketService) GetTicket(ctx context.Context, eventID, identityID string) (*dto.TicketResponse, error) {
	return m.getTicketFn(ctx, eventID, identityID)
}
func (m *mockTicketService) TicketQR(ctx context.Context, ticketID, eventID string) ([]byte, error) {
	return m.ticketQRFn(ctx, ticketID, eventID)
}

func authAs(identity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}

	return w, parsed
}

func ticketRouter(svc service.TicketService, identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTicketHandler(svc)

	router := gin.New()
	group := router.Group("/event", authAs(identity))
	group.POST("/registerEvent", h.RegisterEvent)
	group.POST("/getTicket", h.GetTicket)
	group.POST("/verifyTicket", h.VerifyTicket)
	group.GET("/ticketQR", h.TicketQR)
	return router
}

func TestRegisterEventHandlerSuccess(t *testing.T) {
	svc := &mockTicketService{
		registerFn: func(ctx context.Context, eventID, identityID string) (string, error) {
			assert.Equal(t, "user_1", identityID)
			return "TICKET-123456-ABC", nil
		},
	}
	router := ticketRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/registerEvent", gin.H{"eventId": "11111111-1111-1111-1111-111111111111"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Event registered successfully", body["message"])
	assert.Equal(t, "TICKET-123456-ABC", body["ticketId"])
}

func TestRegisterEventHandlerMissingEventID(t *testing.T) {
	router := ticketRouter(&mockTicketService{}, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/registerEvent", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestRegisterEventHandlerEventFull(t *testing.T) {
	svc := &mockTicketService{
		registerFn: func(ctx context.Context, eventID, identityID string) (string, error) {
			return "", apperror.Conflict("Event is already full")
		},
	}
	router := ticketRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/registerEvent", gin.H{"eventId": "11111111-1111-1111-1111-111111111111"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Event is already full", body["message"])
}

func TestVerifyTicketHandlerSuccess(t *testing.T) {
	svc := &mockTicketService{
		verifyFn: func(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error) {
			return &dto.VerifiedTicketResponse{TicketID: ticketID, EventTitle: "Tech Fest", Status: "used"}, 0, nil
		},
	}
	router := ticketRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/verifyTicket", gin.H{
		"ticketId": "TICKET-123456-ABC",
		"eventId":  "11111111-1111-1111-1111-111111111111",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Ticket verified successfully", body["message"])

	ticket, ok := body["ticket"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "used", ticket["status"])
}

func TestVerifyTicketHandlerWrongDayIncludesDayCount(t *testing.T) {
	svc := &mockTicketService{
		verifyFn: func(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error) {
			return nil, 3, apperror.New(400, "Event is in 3 days", service.ErrWrongDay)
		},
	}
	router := ticketRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/verifyTicket", gin.H{
		"ticketId": "TICKET-123456-ABC",
		"eventId":  "11111111-1111-1111-1111-111111111111",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Event is in 3 days", body["message"])
	assert.Equal(t, float64(3), body["daysUntilEvent"])
}

func TestGetTicketHandlerNotFound(t *testing.T) {
	svc := &mockTicketService{
		getTicketFn: func(ctx context.Context, eventID, identityID string) (*dto.TicketResponse, error) {
			return nil, apperror.NotFound("Ticket not found")
		},
	}
	router := ticketRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/event/getTicket", gin.H{"eventId": "11111111-1111-1111-1111-111111111111"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket not found", body["message"])
}

func TestTicketQRHandlerReturnsPNG(t *testing.T) {
	svc := &mockTicketService{
		ticketQRFn: func(ctx context.Context, ticketID, eventID string) ([]byte, error) {
			return []byte("\x89PNG-bytes"), nil
		},
	}
	router := ticketRouter(svc, "user_1")

	req := httptest.NewRequest(http.MethodGet, "/event/ticketQR?ticketId=TICKET-123456-ABC&eventId=11111111-1111-1111-1111-111111111111", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestTicketQRHandlerMissingQuery(t *testing.T) {
	router := ticketRouter(&mockTicketService{}, "user_1")

	req := httptest.NewRequest(http.MethodGet, "/event/ticketQR", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

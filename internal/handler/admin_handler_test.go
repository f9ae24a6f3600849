package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

type mockAdminService struct {
	submitFn        func(ctx context.Context, identityID string, input dto.LeadRequestInput) error
	listPendingFn   func(ctx context.Context) ([]*model.User, error)
	reviewFn        func(ctx context.Context, adminIdentity, targetIdentity, action string) (string, error)
	removeFn        func(ctx context.Context, targetIdentity string) error
	isCollegeLeadFn func(ctx context.Context, identityID string) (bool, error)
	getAllFn        func(ctx context.Context) ([]*model.User, error)
}

func (m *mockAdminService) SubmitLeadRequest(ctx context.Context, identityID string, input dto.LeadRequestInput) error {
	return m.submitFn(ctx, identityID, input)
}
func (m *mockAdminService) ListPendingRequests(ctx context.Context) ([]*model.User, error) {
	return m.listPendingFn(ctx)
}
func (m *mockAdminService) ReviewLeadRequest(ctx context.Context, adminIdentity, targetIdentity, action string) (string, error) {
	return m.reviewFn(ctx, adminIdentity, targetIdentity, action)
}
func (m *mockAdminService) RemoveUser(ctx context.Context, targetIdentity string) error {
	return m.removeFn(ctx, targetIdentity)
}
func (m *mockAdminService) IsCollegeLead(ctx context.Context, identityID string) (bool, error) {
	return m.isCollegeLeadFn(ctx, identityID)
}
func (m *mockAdminService) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	return m.getAllFn(ctx)
}

func adminRouter(svc service.AdminService, identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(svc)

	router := gin.New()
	group := router.Group("/admin", authAs(identity))
	group.POST("/sendrequest", h.SendRequest)
	group.GET("/sendrequest", h.ListPendingRequests)
	group.POST("/approvecollegelead", h.ApproveCollegeLead)
	group.POST("/removeUser", h.RemoveUser)
	group.POST("/isCollegeLead", h.IsCollegeLead)
	return router
}

func leadRequestBody() gin.H {
	return gin.H{
		"collegeName":   "Telkom University",
		"degree":        "Informatics",
		"yearOfPassing": "2024",
		"agenda":        "Monthly tech meetups",
	}
}

func TestSendRequestHandlerSuccess(t *testing.T) {
	svc := &mockAdminService{
		submitFn: func(ctx context.Context, identityID string, input dto.LeadRequestInput) error {
			assert.Equal(t, "user_1", identityID)
			assert.Equal(t, "Telkom University", input.CollegeName)
			return nil
		},
	}
	router := adminRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/sendrequest", leadRequestBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Request sent", body["message"])
}

func TestSendRequestHandlerAlreadyPending(t *testing.T) {
	svc := &mockAdminService{
		submitFn: func(ctx context.Context, identityID string, input dto.LeadRequestInput) error {
			return apperror.Conflict("Request already pending")
		},
	}
	router := adminRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/sendrequest", leadRequestBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request already pending", body["message"])
}

func TestSendRequestHandlerMissingFields(t *testing.T) {
	router := adminRouter(&mockAdminService{}, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/sendrequest", gin.H{"collegeName": "Telkom University"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestApproveCollegeLeadHandler(t *testing.T) {
	svc := &mockAdminService{
		reviewFn: func(ctx context.Context, adminIdentity, targetIdentity, action string) (string, error) {
			assert.Equal(t, "admin_1", adminIdentity)
			assert.Equal(t, "user_1", targetIdentity)
			assert.Equal(t, "approve", action)
			return "Request approved", nil
		},
	}
	router := adminRouter(svc, "admin_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/approvecollegelead", gin.H{
		"targetUserId": "user_1",
		"action":       "approve",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Request approved", body["message"])
}

func TestApproveCollegeLeadHandlerRejectsUnknownAction(t *testing.T) {
	router := adminRouter(&mockAdminService{}, "admin_1")

	w, _ := performJSON(t, router, http.MethodPost, "/admin/approvecollegelead", gin.H{
		"targetUserId": "user_1",
		"action":       "escalate",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveUserHandler(t *testing.T) {
	removed := ""
	svc := &mockAdminService{
		removeFn: func(ctx context.Context, targetIdentity string) error {
			removed = targetIdentity
			return nil
		},
	}
	router := adminRouter(svc, "admin_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/removeUser", gin.H{"identity": "user_1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User removed successfully", body["message"])
	assert.Equal(t, "user_1", removed)
}

func TestIsCollegeLeadHandlerForbidden(t *testing.T) {
	svc := &mockAdminService{
		isCollegeLeadFn: func(ctx context.Context, identityID string) (bool, error) {
			return false, apperror.Forbidden("User is not College Lead")
		},
	}
	router := adminRouter(svc, "user_1")

	w, body := performJSON(t, router, http.MethodPost, "/admin/isCollegeLead", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "User is not College Lead", body["message"])
}

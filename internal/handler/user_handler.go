package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/manantri/campusfest/pkg/response"
)

type UserHandler struct {
	sync service.SyncService
}

func NewUserHandler(sync service.SyncService) *UserHandler {
	return &UserHandler{sync: sync}
}

// SyncUser reconciles the authenticated identity with a local user record.
// Identity and email come from the verified token claims, never the body.
func (h *UserHandler) SyncUser(c *gin.Context) {
	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	email := response.Email(c)
	if email == "" {
		response.Fail(c, apperror.BadRequest("Token is missing the email claim"))
		return
	}

	user, err := h.sync.Sync(c.Request.Context(), identity, email)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": user})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/response"
	"github.com/manantri/campusfest/pkg/validator"
)

type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) SendRequest(c *gin.Context) {
	var input dto.LeadRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.admin.SubmitLeadRequest(c.Request.Context(), identity, input); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Request sent"})
}

func (h *AdminHandler) ListPendingRequests(c *gin.Context) {
	users, err := h.admin.ListPendingRequests(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": users})
}

func (h *AdminHandler) ApproveCollegeLead(c *gin.Context) {
	var input dto.ReviewLeadRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	message, err := h.admin.ReviewLeadRequest(c.Request.Context(), identity, input.TargetIdentity, input.Action)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": message})
}

func (h *AdminHandler) RemoveUser(c *gin.Context) {
	var input dto.RemoveUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	if err := h.admin.RemoveUser(c.Request.Context(), input.TargetIdentity); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "User removed successfully"})
}

func (h *AdminHandler) IsCollegeLead(c *gin.Context) {
	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if _, err := h.admin.IsCollegeLead(c.Request.Context(), identity); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{})
}

func (h *AdminHandler) GetAllUsersData(c *gin.Context) {
	users, err := h.admin.GetAllUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": users})
}

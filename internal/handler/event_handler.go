package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/response"
	"github.com/manantri/campusfest/pkg/validator"
)

type EventHandler struct {
	events service.EventService
	search service.SearchService
}

func NewEventHandler(events service.EventService, search service.SearchService) *EventHandler {
	return &EventHandler{events: events, search: search}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input dto.CreateEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	event, err := h.events.Create(c.Request.Context(), identity, input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"event": event})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var input dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	event, err := h.events.Update(c.Request.Context(), identity, input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Event updated successfully", "event": event})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	var input dto.EventIDRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.events.Delete(c.Request.Context(), identity, input.EventID); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.events.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetSingleEvent(c *gin.Context) {
	var input dto.EventIDRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	event, err := h.events.GetByID(c.Request.Context(), input.EventID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"event": event})
}

func (h *EventHandler) GetEventsByCategory(c *gin.Context) {
	var input dto.CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	events, err := h.events.GetByCategory(c.Request.Context(), input.Category)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"count": len(events), "events": events})
}

// GetMyEvents lists the events the caller organizes.
func (h *EventHandler) GetMyEvents(c *gin.Context) {
	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	events, err := h.events.GetCreatedBy(c.Request.Context(), identity)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"events": events})
}

// GetParticipatedEvents lists the events the caller holds a ticket for.
func (h *EventHandler) GetParticipatedEvents(c *gin.Context) {
	identity, err := response.Identity(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	events, err := h.events.GetParticipatedBy(c.Request.Context(), identity)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"events": events})
}

// SearchToken hands the browsing client a tenant token scoped to the events
// search index.
func (h *EventHandler) SearchToken(c *gin.Context) {
	token, err := h.search.GenerateSearchToken()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"token": token})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/service"
	"github.com/manantri/campusfest/pkg/response"
	"github.com/manantri/campusfest/pkg/validator"
)

type TicketHandler struct {
	tickets service.TicketService
}

func NewTicketHandler(tickets service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

func (h *TicketHandler) RegisterEvent(c *gin.Context) {
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

	ticketID, err := h.tickets.Register(c.Request.Context(), input.EventID, identity)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Event registered successfully", "ticketId": ticketID})
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
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

	ticket, err := h.tickets.GetTicket(c.Request.Context(), input.EventID, identity)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) VerifyTicket(c *gin.Context) {
	var input dto.VerifyTicketRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	ticket, days, err := h.tickets.Verify(c.Request.Context(), input.TicketID, input.EventID)
	if err != nil {
		if errors.Is(err, service.ErrWrongDay) {
			response.FailWith(c, err, gin.H{"daysUntilEvent": days})
			return
		}
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Ticket verified successfully", "ticket": ticket})
}

// TicketQR streams the ticket's entry-scan QR code as a PNG.
func (h *TicketHandler) TicketQR(c *gin.Context) {
	var query dto.TicketQRQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	png, err := h.tickets.TicketQR(c.Request.Context(), query.TicketID, query.EventID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

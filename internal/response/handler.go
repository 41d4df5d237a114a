package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Submit - POST /events/:code/responses
func (h *Handler) Submit(c *gin.Context) {
	var submission AnswersSubmit
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	count, err := h.Service.Submit(c.Param("code"), &submission)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound), errors.Is(err, ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrGuestNotInEvent):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit responses"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Submitted %d responses", count),
		"count":   count,
	})
}

// ByGuest - GET /events/:code/responses/:guest_id
func (h *Handler) ByGuest(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("guest_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest ID"})
		return
	}

	responses, err := h.Service.ByGuest(c.Param("code"), guestID)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch responses"})
		return
	}
	c.JSON(http.StatusOK, responses)
}

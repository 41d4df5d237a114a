package guest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Join - POST /events/:code/join
func (h *Handler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	g, err := h.Service.Join(c.Param("code"), &req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNicknameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join event"})
		}
		return
	}

	c.JSON(http.StatusCreated, g)
}

// List - GET /events/:code/guests
func (h *Handler) List(c *gin.Context) {
	guests, err := h.Service.List(c.Param("code"))
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch guests"})
		return
	}
	c.JSON(http.StatusOK, guests)
}

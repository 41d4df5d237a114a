package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partymatcher/party-matchmaker-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateEvent - POST /events
// Runs behind OptionalAuth: an invalid or missing token creates an
// anonymous event instead of failing the request.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.CreateEvent(&req, middleware.CallerID(c))
	if err != nil {
		if errors.Is(err, ErrCodeGeneration) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// MyEvents - GET /events/my-events
func (h *Handler) MyEvents(c *gin.Context) {
	events, err := h.Service.MyEvents(middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent - GET /events/:code
func (h *Handler) GetEvent(c *gin.Context) {
	pub, err := h.Service.GetPublic(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pub)
}

// UpdateEvent - PUT /events/:code
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.UpdateEvent(c.Param("code"), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEvent - DELETE /events/:code
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.Service.DeleteEvent(c.Param("code"), middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Status - GET /events/:code/status
func (h *Handler) Status(c *gin.Context) {
	status, err := h.Service.Status(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotHost):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNoFieldsToUpdate), errors.Is(err, ErrImmutableAfterMatching):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

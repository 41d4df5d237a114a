package matching

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// RunMatching - POST /events/:code/match
func (h *Handler) RunMatching(c *gin.Context) {
	count, err := h.Service.RunMatching(c.Request.Context(), c.Param("code"), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Created %d matches", count),
		"matches_count": count,
	})
}

// AllMatches - GET /events/:code/matches
func (h *Handler) AllMatches(c *gin.Context) {
	matches, err := h.Service.AllMatches(c.Param("code"), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Reveal - POST /events/:code/reveal
func (h *Handler) Reveal(c *gin.Context) {
	if err := h.Service.Reveal(c.Param("code"), middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Matches revealed to guests"})
}

// MyMatch - GET /events/:code/my-match/:guest_id
func (h *Handler) MyMatch(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("guest_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest ID"})
		return
	}

	match, err := h.Service.MyMatch(c.Param("code"), guestID)
	if err != nil {
		respondError(c, err)
		return
	}
	if match == nil {
		c.JSON(http.StatusOK, gin.H{"match": nil, "message": "No match found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}

// DeleteMatch - DELETE /events/:code/matches/:match_id
func (h *Handler) DeleteMatch(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	if err := h.Service.DeleteMatch(c.Param("code"), middleware.CallerID(c), matchID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// ManualMatch - POST /events/:code/matches/manual?guest_a_id=&guest_b_id=
func (h *Handler) ManualMatch(c *gin.Context) {
	guestAID, errA := uuid.Parse(c.Query("guest_a_id"))
	guestBID, errB := uuid.Parse(c.Query("guest_b_id"))
	if errA != nil || errB != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest IDs"})
		return
	}

	m, err := h.Service.ManualMatch(c.Param("code"), middleware.CallerID(c), guestAID, guestBID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match created successfully", "match": m})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrNotFound), errors.Is(err, ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, event.ErrNotHost), errors.Is(err, ErrMatchesNotRevealed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotEnoughGuests), errors.Is(err, ErrMatchingNotCompleted), errors.Is(err, ErrInvalidGuests):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrMatchingInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

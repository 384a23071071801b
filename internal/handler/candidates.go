package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/talentbase-api/internal/model"
	"github.com/yourusername/talentbase-api/internal/repository"
	"github.com/yourusername/talentbase-api/internal/service"
)

type CandidateHandler struct {
	candidateRepo *repository.CandidateRepo
}

func NewCandidateHandler(candidateRepo *repository.CandidateRepo) *CandidateHandler {
	return &CandidateHandler{candidateRepo: candidateRepo}
}

// ListCandidates handles GET /candidates
// The search parameter is expanded through the keyboard-layout
// transliterator, so a query typed on the wrong layout still matches.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	filter := repository.CandidateFilter{
		SearchVariants: service.QueryVariants(c.Query("search")),
		Company:        c.Query("company"),
	}

	candidates, err := h.candidateRepo.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list candidates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list candidates"})
		return
	}

	if candidates == nil {
		candidates = []model.Candidate{}
	}

	c.JSON(http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/:id
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
		return
	}

	candidate, err := h.candidateRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get candidate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get candidate"})
		return
	}
	if candidate == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// CreateCandidate handles POST /candidates
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var candidate model.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	created, err := h.candidateRepo.Create(c.Request.Context(), &candidate)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create candidate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save candidate"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateCandidate handles PUT /candidates/:id
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
		return
	}

	var candidate model.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	candidate.ID = id

	updated, err := h.candidateRepo.Update(c.Request.Context(), &candidate)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update candidate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCandidate handles DELETE /candidates/:id
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID"})
		return
	}

	if err := h.candidateRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

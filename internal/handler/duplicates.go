package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/talentbase-api/internal/dedupe"
	"github.com/yourusername/talentbase-api/internal/model"
	"github.com/yourusername/talentbase-api/internal/repository"
)

type DuplicateHandler struct {
	candidateRepo *repository.CandidateRepo
	thresholds    dedupe.Thresholds
}

func NewDuplicateHandler(candidateRepo *repository.CandidateRepo, thresholds dedupe.Thresholds) *DuplicateHandler {
	return &DuplicateHandler{candidateRepo: candidateRepo, thresholds: thresholds}
}

// ScanDuplicates handles GET /candidates/duplicates
// Runs the pairwise scan over the whole candidate pool. The detector is
// O(n²); pools in the hundreds scan in well under a second, which is the
// scale this endpoint is built for.
func (h *DuplicateHandler) ScanDuplicates(c *gin.Context) {
	candidates, err := h.candidateRepo.List(c.Request.Context(), repository.CandidateFilter{})
	if err != nil {
		log.Error().Err(err).Msg("Failed to load candidates for duplicate scan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan for duplicates"})
		return
	}

	records := make([]dedupe.Record, len(candidates))
	for i, cand := range candidates {
		records[i] = cand.DedupeRecord()
	}

	groups := dedupe.FindDuplicateGroups(records, h.thresholds)

	report := model.DuplicateReport{
		Scanned:   len(records),
		Definite:  explainAll(groups.Definite),
		Potential: explainAll(groups.Potential),
		Homonyms:  explainAll(groups.Homonyms),
	}

	log.Info().
		Int("scanned", report.Scanned).
		Int("definite", len(report.Definite)).
		Int("potential", len(report.Potential)).
		Int("homonyms", len(report.Homonyms)).
		Msg("Duplicate scan complete")

	c.JSON(http.StatusOK, report)
}

// CheckPair handles POST /candidates/check
// Classifies two inline records without touching the store, for the
// "possible duplicate" warning shown while a new candidate is being entered.
func (h *DuplicateHandler) CheckPair(c *gin.Context) {
	var req struct {
		A dedupe.Record `json:"a" binding:"required"`
		B dedupe.Record `json:"b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide records 'a' and 'b'"})
		return
	}
	if req.A.Name == "" || req.B.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both records need a name"})
		return
	}

	pair := dedupe.DetectDuplicate(req.A, req.B, h.thresholds)
	c.JSON(http.StatusOK, model.ExplainedPair{Pair: pair, Explanation: dedupe.Explain(pair)})
}

func explainAll(pairs []dedupe.Pair) []model.ExplainedPair {
	out := make([]model.ExplainedPair, len(pairs))
	for i, p := range pairs {
		out[i] = model.ExplainedPair{Pair: p, Explanation: dedupe.Explain(p)}
	}
	return out
}

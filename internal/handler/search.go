package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/talentbase-api/internal/service"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// QueryVariants handles GET /search/variants
// Exposes the keyboard-layout query expansion so the frontend can show
// "searching for 김민수" when the user typed "rlaalstn".
func (h *SearchHandler) QueryVariants(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"variants": service.QueryVariants(query),
	})
}

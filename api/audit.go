package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airportadm/internal/repository"
	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 50

// AuditHandler exposes the change history recorded by the worker.
type AuditHandler struct {
	entries repository.AuditRepository
}

func NewAuditHandler(entries repository.AuditRepository) *AuditHandler {
	return &AuditHandler{entries: entries}
}

func (h *AuditHandler) Register(admin *gin.RouterGroup) {
	admin.GET("/audit", h.list)
}

func (h *AuditHandler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
		return
	}

	entries, err := h.entries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles HTTP requests for the allocation audit trail
type AuditHandler struct {
	auditService service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetByDate handles GET /allocation/audit
// @Summary List audit entries for a date
// @Description Applied allocation mutations recorded for one date, newest first
// @Tags audit
// @Produce json
// @Param date query string true "Allocation date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AuditListResponse "Audit entries"
// @Failure 400 {object} ErrorResponse "Missing date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocation/audit [get]
func (h *AuditHandler) GetByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.auditService.GetByDate(date, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByGroup handles GET /allocation/groups/:id/audit
// @Summary List audit entries for a mission group
// @Description Deploy, extend and shrink mutations recorded against one group, newest first
// @Tags audit
// @Produce json
// @Param id path int true "Group ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AuditListResponse "Audit entries"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocation/groups/{id}/audit [get]
func (h *AuditHandler) GetByGroup(c *gin.Context) {
	groupID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.auditService.GetByGroup(groupID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecent handles GET /allocation/audit/recent
// @Summary Most recent audit entries across all dates
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} models.AllocationAudit "Audit entries"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocation/audit/recent [get]
func (h *AuditHandler) GetRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.auditService.GetRecent(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

package handlers

import (
	"net/http"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// AllocationHandler handles HTTP requests for the date session, snapshot
// read views and mission selections
type AllocationHandler struct {
	allocationService service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// SessionRequest selects the allocation date to work on
type SessionRequest struct {
	Date string `json:"date" binding:"required" example:"2026-04-15"`
}

// SelectionRequest adds or removes missions in a selection set
type SelectionRequest struct {
	MissionIDs []int `json:"mission_ids" binding:"required"`
	Selected   bool  `json:"selected"`
}

// SelectionResponse reports the resulting contents of a selection set
type SelectionResponse struct {
	Set        string `json:"set"`
	MissionIDs []int  `json:"mission_ids"`
}

// SelectDate handles POST /allocation/session
// @Summary Select the working date
// @Description Load teams, missions, groups and plan load for a date and make it the active session
// @Tags allocation
// @Accept json
// @Produce json
// @Param session body SessionRequest true "Date to load (YYYY-MM-DD)"
// @Success 200 {object} service.SessionResponse "Session loaded"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 502 {object} ErrorResponse "Catalog gateway unreachable"
// @Router /allocation/session [post]
func (h *AllocationHandler) SelectDate(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.allocationService.SelectDate(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Refresh handles POST /allocation/refresh
// @Summary Refresh the active session
// @Description Re-query the catalog for the active date and replace the snapshot
// @Tags allocation
// @Produce json
// @Success 200 {object} service.SessionResponse "Session refreshed"
// @Failure 409 {object} ErrorResponse "No active session"
// @Failure 502 {object} ErrorResponse "Catalog gateway unreachable"
// @Router /allocation/refresh [post]
func (h *AllocationHandler) Refresh(c *gin.Context) {
	session, err := h.allocationService.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetTeams handles GET /allocation/teams
// @Summary List teams for the active date
// @Description Teams with rosters plus derived reserved and validity flags
// @Tags allocation
// @Produce json
// @Success 200 {array} service.TeamView "Teams"
// @Failure 409 {object} ErrorResponse "No active session"
// @Router /allocation/teams [get]
func (h *AllocationHandler) GetTeams(c *gin.Context) {
	teams, err := h.allocationService.Teams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetMissions handles GET /allocation/missions
// @Summary List missions for the active date
// @Tags allocation
// @Produce json
// @Success 200 {array} catalog.Mission "Missions"
// @Failure 409 {object} ErrorResponse "No active session"
// @Router /allocation/missions [get]
func (h *AllocationHandler) GetMissions(c *gin.Context) {
	missions, err := h.allocationService.Missions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, missions)
}

// GetGroups handles GET /allocation/groups
// @Summary List mission groups for the active date
// @Tags allocation
// @Produce json
// @Success 200 {array} catalog.MissionGroup "Mission groups"
// @Failure 409 {object} ErrorResponse "No active session"
// @Router /allocation/groups [get]
func (h *AllocationHandler) GetGroups(c *gin.Context) {
	groups, err := h.allocationService.Groups()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetPlanLoad handles GET /allocation/plan-load
// @Summary Per-resource plan load for the active date
// @Description How many plans each pilot and drone is committed to on the date
// @Tags allocation
// @Produce json
// @Success 200 {object} catalog.PlanLoad "Plan load"
// @Failure 409 {object} ErrorResponse "No active session"
// @Router /allocation/plan-load [get]
func (h *AllocationHandler) GetPlanLoad(c *gin.Context) {
	planLoad, err := h.allocationService.PlanLoad()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, planLoad)
}

// UpdateSelection handles PUT /allocation/selection/:set
// @Summary Add or remove missions in a selection set
// @Description The deploy and group selection sets are independent; :set names which one
// @Tags selection
// @Accept json
// @Produce json
// @Param set path string true "Selection set" Enums(deploy, group)
// @Param selection body SelectionRequest true "Mission ids and whether to select or deselect"
// @Success 200 {object} SelectionResponse "Resulting selection"
// @Failure 400 {object} ErrorResponse "Unknown set or mission"
// @Failure 409 {object} ErrorResponse "No active session"
// @Router /allocation/selection/{set} [put]
func (h *AllocationHandler) UpdateSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	kind := service.SelectionKind(c.Param("set"))
	ids, err := h.allocationService.UpdateSelection(kind, req.MissionIDs, req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SelectionResponse{Set: string(kind), MissionIDs: ids})
}

// GetSelection handles GET /allocation/selection/:set
// @Summary Current contents of a selection set
// @Tags selection
// @Produce json
// @Param set path string true "Selection set" Enums(deploy, group)
// @Success 200 {object} SelectionResponse "Current selection"
// @Failure 400 {object} ErrorResponse "Unknown set"
// @Router /allocation/selection/{set} [get]
func (h *AllocationHandler) GetSelection(c *gin.Context) {
	kind := service.SelectionKind(c.Param("set"))
	ids, err := h.allocationService.Selection(kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SelectionResponse{Set: string(kind), MissionIDs: ids})
}

// ClearSelection handles DELETE /allocation/selection/:set
// @Summary Empty a selection set
// @Tags selection
// @Produce json
// @Param set path string true "Selection set" Enums(deploy, group)
// @Success 200 {object} SelectionResponse "Emptied selection"
// @Failure 400 {object} ErrorResponse "Unknown set"
// @Router /allocation/selection/{set} [delete]
func (h *AllocationHandler) ClearSelection(c *gin.Context) {
	kind := service.SelectionKind(c.Param("set"))
	if err := h.allocationService.ClearSelection(kind); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SelectionResponse{Set: string(kind), MissionIDs: []int{}})
}

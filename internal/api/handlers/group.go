package handlers

import (
	"net/http"
	"strconv"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for mission group operations
type GroupHandler struct {
	groupService service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// DeployGroup handles POST /allocation/groups
// @Summary Deploy a mission group
// @Description Bind the listed missions (or the deploy selection set when none are listed) to a team, pilot and drone for the active date
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.DeployGroupRequest true "Group deployment request"
// @Success 201 {object} service.GroupResult "Group deployed"
// @Failure 400 {object} ErrorResponse "Invalid request, empty selection or mission already grouped"
// @Failure 409 {object} ErrorResponse "Catalog rejected the deployment or no active session"
// @Failure 502 {object} ErrorResponse "Catalog unreachable and outcome unconfirmed"
// @Router /allocation/groups [post]
func (h *GroupHandler) DeployGroup(c *gin.Context) {
	var req service.DeployGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.groupService.DeployGroup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// AddMissions handles POST /allocation/groups/:id/missions
// @Summary Add missions to an existing group
// @Description Extend a group with the listed missions, or the group selection set when none are listed
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param missions body service.ExtendGroupRequest true "Missions to add"
// @Success 200 {object} service.GroupResult "Missions added"
// @Failure 400 {object} ErrorResponse "Invalid request or mission already grouped"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Catalog rejected the change or no active session"
// @Router /allocation/groups/{id}/missions [post]
func (h *GroupHandler) AddMissions(c *gin.Context) {
	groupID, err := strconv.Atoi(c.Param("id"))
	if err != nil || groupID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group ID"})
		return
	}

	var req service.ExtendGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.groupService.AddMissionsToGroup(c.Request.Context(), groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemoveMissions handles DELETE /allocation/groups/missions
// @Summary Remove missions from their groups
// @Description Missions are removed by id alone; each belongs to at most one group on the active date
// @Tags groups
// @Accept json
// @Produce json
// @Param missions body service.ShrinkGroupRequest true "Missions to remove"
// @Success 200 {object} service.GroupResult "Missions removed"
// @Failure 400 {object} ErrorResponse "Mission not grouped on the active date"
// @Failure 409 {object} ErrorResponse "Catalog rejected the change or no active session"
// @Router /allocation/groups/missions [delete]
func (h *GroupHandler) RemoveMissions(c *gin.Context) {
	var req service.ShrinkGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.groupService.RemoveMissionsFromGroup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// MoveHandler handles HTTP requests for resource relocation
type MoveHandler struct {
	moveService service.MoveServiceInterface
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(moveService service.MoveServiceInterface) *MoveHandler {
	return &MoveHandler{
		moveService: moveService,
	}
}

// MoveResource handles POST /allocation/moves
// @Summary Move a pilot or drone between teams
// @Description Relocate one resource. Moving onto the originating team is a successful no-op. Constraint violations fail before any catalog call.
// @Tags moves
// @Accept json
// @Produce json
// @Param move body service.MoveRequest true "Move request"
// @Success 200 {object} service.OperationResult "Move applied or no-op"
// @Failure 400 {object} ErrorResponse "Constraint violation"
// @Failure 409 {object} ErrorResponse "Catalog rejected the move or no active session"
// @Failure 502 {object} ErrorResponse "Catalog unreachable and outcome unconfirmed"
// @Router /allocation/moves [post]
func (h *MoveHandler) MoveResource(c *gin.Context) {
	var req service.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.moveService.MoveResource(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReturnToPool handles POST /allocation/pool
// @Summary Return resources to the pool team
// @Description Send a batch of pilots and drones back to the unassigned pool
// @Tags moves
// @Accept json
// @Produce json
// @Param pool body service.PoolRequest true "Pilot and drone ids to return"
// @Success 200 {object} service.PoolResponse "Resources returned"
// @Failure 400 {object} ErrorResponse "Empty batch or unknown resource"
// @Failure 409 {object} ErrorResponse "Catalog rejected the return or no active session"
// @Failure 502 {object} ErrorResponse "Catalog unreachable and outcome unconfirmed"
// @Router /allocation/pool [post]
func (h *MoveHandler) ReturnToPool(c *gin.Context) {
	var req service.PoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.moveService.ReturnToPool(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

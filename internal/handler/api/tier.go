package api

import (
	"net/http"

	reqdto "loyalty-console/internal/handler/dto/request"
	resdto "loyalty-console/internal/handler/dto/response"
	"loyalty-console/internal/handler/httperr"
	"loyalty-console/internal/handler/middleware"
	"loyalty-console/internal/usecase/commands"
	"loyalty-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TierHandler struct {
	cmds commands.TierCommands
}

func NewTierHandler(cmds commands.TierCommands) *TierHandler {
	return &TierHandler{cmds: cmds}
}

// @Summary Create membership tier
// @Description Add a tier to the program; the spend range must not overlap existing tiers
// @Tags tiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TierRequest true "Tier"
// @Success 201 {object} resdto.ProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /program/tiers [post]
func (h *TierHandler) Create(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.CreateTier(c.Request.Context(), tenantID, req.ToDomain())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProgramView(queries.FromProgram(updated)))
}

// @Summary Update membership tier
// @Description Replace a tier's fields; replaying the current data is valid
// @Tags tiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tier ID"
// @Param request body reqdto.TierRequest true "Tier"
// @Success 200 {object} resdto.ProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /program/tiers/{id} [put]
func (h *TierHandler) Update(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	tierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.TierRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.UpdateTier(c.Request.Context(), tenantID, tierID, req.ToDomain())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgramView(queries.FromProgram(updated)))
}

// @Summary Remove membership tier
// @Description Remove a tier; benefits referencing it keep their stale reference
// @Tags tiers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tier ID"
// @Success 200 {object} resdto.ProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /program/tiers/{id} [delete]
func (h *TierHandler) Delete(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	tierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	updated, err := h.cmds.RemoveTier(c.Request.Context(), tenantID, tierID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgramView(queries.FromProgram(updated)))
}

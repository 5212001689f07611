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

type BenefitHandler struct {
	cmds commands.BenefitCommands
	q    queries.BenefitQueries
}

func NewBenefitHandler(cmds commands.BenefitCommands, q queries.BenefitQueries) *BenefitHandler {
	return &BenefitHandler{cmds: cmds, q: q}
}

// @Summary List benefits
// @Description List the tenant's benefits with tier references resolved
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BenefitResponse
// @Failure 401 {object} map[string]string
// @Router /benefits [get]
func (h *BenefitHandler) List(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListBenefits(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"benefits": resdto.FromBenefitList(views)})
}

// @Summary Get benefit
// @Description Get a benefit by ID
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /benefits/{id} [get]
func (h *BenefitHandler) Get(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetBenefit(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitView(view))
}

// @Summary Create benefit
// @Description Create a benefit; the type must be offered for the tenant's business vertical
// @Tags benefits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BenefitRequest true "Benefit"
// @Success 201 {object} resdto.BenefitResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /benefits [post]
func (h *BenefitHandler) Create(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.BenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.CreateBenefit(c.Request.Context(), tenantID, req.ToDomain())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	view, err := h.q.GetBenefit(c.Request.Context(), tenantID, created.ID())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBenefitView(view))
}

// @Summary Update benefit
// @Description Replace a benefit's fields
// @Tags benefits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Param request body reqdto.BenefitRequest true "Benefit"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /benefits/{id} [put]
func (h *BenefitHandler) Update(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.BenefitRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if _, err = h.cmds.UpdateBenefit(c.Request.Context(), tenantID, id, req.ToDomain()); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	view, err := h.q.GetBenefit(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitView(view))
}

// @Summary Delete benefit
// @Description Delete a benefit
// @Tags benefits
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /benefits/{id} [delete]
func (h *BenefitHandler) Delete(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.RemoveBenefit(c.Request.Context(), tenantID, id); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Benefit type catalogue
// @Description List the benefit types offerable for the tenant's business vertical
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BenefitTypeResponse
// @Failure 401 {object} map[string]string
// @Router /benefits/types [get]
func (h *BenefitHandler) TypeCatalogue(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	types, err := h.q.TypeCatalogue(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": resdto.FromTypeCatalogue(types)})
}

package api

import (
	"net/http"

	resdto "loyalty-console/internal/handler/dto/response"
	"loyalty-console/internal/handler/httperr"
	"loyalty-console/internal/handler/middleware"
	"loyalty-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EntitlementHandler struct {
	q queries.EntitlementQueries
}

func NewEntitlementHandler(q queries.EntitlementQueries) *EntitlementHandler {
	return &EntitlementHandler{q: q}
}

// @Summary Feature catalogue
// @Description List all platform features with display labels
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FeatureCatalogueResponse
// @Failure 503 {object} map[string]string
// @Router /entitlements/features [get]
func (h *EntitlementHandler) Features(c *gin.Context) {
	features, err := h.q.Features(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeatureCatalogue(features))
}

// @Summary Plan projection tables
// @Description Get the feature and limit tables for every subscription plan
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PlanTableResponse
// @Router /entitlements/plans [get]
func (h *EntitlementHandler) PlanTables(c *gin.Context) {
	features, err := h.q.TierFeatures(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	limits, err := h.q.TierLimits(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanTables(features, limits))
}

// @Summary Current plan
// @Description Get the tenant's resolved subscription plan and entitlements
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PlanResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /entitlements/plan [get]
func (h *EntitlementHandler) CurrentPlan(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	plan, err := h.q.CurrentPlan(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanView(plan))
}

package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "loyalty-console/internal/handler/dto/request"
	resdto "loyalty-console/internal/handler/dto/response"
	"loyalty-console/internal/handler/httperr"
	"loyalty-console/internal/handler/middleware"
	"loyalty-console/internal/pkg/clock"
	"loyalty-console/internal/usecase/commands"
	"loyalty-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const previewDateLayout = "2006-01-02"

type ProgramHandler struct {
	pointsCmds commands.PointsCommands
	q          queries.ProgramQueries
	clock      clock.Clock
}

func NewProgramHandler(pointsCmds commands.PointsCommands, q queries.ProgramQueries, clk clock.Clock) *ProgramHandler {
	return &ProgramHandler{pointsCmds: pointsCmds, q: q, clock: clk}
}

// @Summary Get loyalty program
// @Description Get the tenant's full loyalty program document
// @Tags program
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProgramResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /program [get]
func (h *ProgramHandler) Get(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetProgram(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgramView(view))
}

// @Summary Update points system
// @Description Replace the program's earning and redemption configuration
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PointsSystemRequest true "Points system"
// @Success 200 {object} resdto.ProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /program/points [put]
func (h *ProgramHandler) UpdatePoints(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.PointsSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ps, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.pointsCmds.UpdatePointsSystem(c.Request.Context(), tenantID, ps)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgramView(queries.FromProgram(updated)))
}

// @Summary Preview earned points
// @Description Preview the points a hypothetical transaction would earn
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param amount query string true "Transaction amount"
// @Param cumulative_spend query string false "Customer's cumulative spend (default 0)"
// @Param date query string false "Transaction date, YYYY-MM-DD (default today)"
// @Success 200 {object} resdto.EarnPreviewResponse
// @Failure 400 {object} map[string]string
// @Router /program/preview/earn [get]
func (h *ProgramHandler) PreviewEarn(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}
	cumulativeSpend := decimal.Zero
	if v := c.Query("cumulative_spend"); v != "" {
		if cumulativeSpend, err = decimal.NewFromString(v); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cumulative_spend", nil)
			return
		}
	}
	date := h.clock.Now()
	if v := c.Query("date"); v != "" {
		if date, err = time.Parse(previewDateLayout, v); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
	}
	preview, err := h.q.PreviewEarn(c.Request.Context(), tenantID, amount, date, cumulativeSpend)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEarnPreview(preview))
}

// @Summary Preview redemption value
// @Description Preview the discount a point balance redeems into
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param balance query int true "Point balance"
// @Success 200 {object} resdto.RedeemPreviewResponse
// @Failure 400 {object} map[string]string
// @Router /program/preview/redeem [get]
func (h *ProgramHandler) PreviewRedeem(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	balance, err := strconv.ParseInt(c.Query("balance"), 10, 64)
	if err != nil || balance < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid balance", nil)
		return
	}
	preview, err := h.q.PreviewRedeem(c.Request.Context(), tenantID, balance)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemPreview(preview))
}

// @Summary Resolve tier placement
// @Description Resolve which tier a cumulative spend places a customer in
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param cumulative_spend query string true "Customer's cumulative spend"
// @Success 200 {object} resdto.TierResolutionResponse
// @Failure 400 {object} map[string]string
// @Router /program/placement [get]
func (h *ProgramHandler) ResolvePlacement(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	cumulativeSpend, err := decimal.NewFromString(c.Query("cumulative_spend"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cumulative_spend", nil)
		return
	}
	resolution, err := h.q.ResolvePlacement(c.Request.Context(), tenantID, cumulativeSpend)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTierResolution(resolution))
}

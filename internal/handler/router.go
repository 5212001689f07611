package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loyalty-console/internal/handler/api"
	"loyalty-console/internal/handler/middleware"
	"loyalty-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	programHandler *api.ProgramHandler,
	tierHandler *api.TierHandler,
	benefitHandler *api.BenefitHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, programHandler, tierHandler, benefitHandler, entitlementHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	programHandler *api.ProgramHandler,
	tierHandler *api.TierHandler,
	benefitHandler *api.BenefitHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	editor := authMiddleware.RequireRoleAtLeast(middleware.RoleEditor)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		programGroup := apiGroup.Group("/program")
		{
			addRoutes(programGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: programHandler.Get},
				{Method: http.MethodGet, Path: "/preview/earn", Handler: programHandler.PreviewEarn},
				{Method: http.MethodGet, Path: "/preview/redeem", Handler: programHandler.PreviewRedeem},
				{Method: http.MethodGet, Path: "/placement", Handler: programHandler.ResolvePlacement},
				{Method: http.MethodPut, Path: "/points", Handler: programHandler.UpdatePoints, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPost, Path: "/tiers", Handler: tierHandler.Create, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPut, Path: "/tiers/:id", Handler: tierHandler.Update, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodDelete, Path: "/tiers/:id", Handler: tierHandler.Delete, Mw: []gin.HandlerFunc{editor}},
			})
		}

		benefits := apiGroup.Group("/benefits")
		{
			addRoutes(benefits, []route{
				{Method: http.MethodGet, Path: "", Handler: benefitHandler.List},
				{Method: http.MethodGet, Path: "/types", Handler: benefitHandler.TypeCatalogue},
				{Method: http.MethodGet, Path: "/:id", Handler: benefitHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: benefitHandler.Create, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPut, Path: "/:id", Handler: benefitHandler.Update, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodDelete, Path: "/:id", Handler: benefitHandler.Delete, Mw: []gin.HandlerFunc{editor}},
			})
		}

		entitlements := apiGroup.Group("/entitlements")
		{
			addRoutes(entitlements, []route{
				{Method: http.MethodGet, Path: "/features", Handler: entitlementHandler.Features},
				{Method: http.MethodGet, Path: "/plans", Handler: entitlementHandler.PlanTables},
				{Method: http.MethodGet, Path: "/plan", Handler: entitlementHandler.CurrentPlan,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/handler/api"
	resdto "loyalty-console/internal/handler/dto/response"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/queries"
	"loyalty-console/tests/common/httptest"
	queriesmock "loyalty-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EntitlementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEntitlementQueries
	handler     *api.EntitlementHandler
}

func (s *EntitlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEntitlementQueries(s.mockCtrl)
	s.handler = api.NewEntitlementHandler(s.mockQueries)

	s.router.GET("/entitlements/features", testAuthMiddleware, s.handler.Features)
	s.router.GET("/entitlements/plans", testAuthMiddleware, s.handler.PlanTables)
	s.router.GET("/entitlements/plan", testAuthMiddleware, s.handler.CurrentPlan)
}

func (s *EntitlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEntitlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntitlementHandlerTestSuite))
}

func (s *EntitlementHandlerTestSuite) TestFeatures() {
	s.Run("success: returns the labelled catalogue", func() {
		catalogue := map[entitlement.FeatureKey]string{
			entitlement.FeatureLoyaltyProgram: "Loyalty Program",
			entitlement.FeatureGuestCRM:       "Guest CRM",
		}
		s.mockQueries.EXPECT().Features(gomock.Any()).
			Return(catalogue, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/entitlements/features", nil, "bearer-token")

		var body resdto.FeatureCatalogueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Loyalty Program", body.Features["loyalty_program"])
		s.Len(body.Features, 2)
	})

	s.Run("error: 503 when the catalogue is unreachable", func() {
		s.mockQueries.EXPECT().Features(gomock.Any()).
			Return(nil, errs.ErrGatewayUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/entitlements/features", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Gateway unavailable")
	})
}

func (s *EntitlementHandlerTestSuite) TestPlanTables() {
	s.Run("success: returns both projection tables", func() {
		features := map[entitlement.PlanTier][]entitlement.FeatureKey{
			entitlement.PlanBasic:        entitlement.FeaturesFor(entitlement.PlanBasic),
			entitlement.PlanProfessional: entitlement.FeaturesFor(entitlement.PlanProfessional),
		}
		limits := map[entitlement.PlanTier]map[entitlement.LimitKey]int64{
			entitlement.PlanBasic:        entitlement.LimitsFor(entitlement.PlanBasic),
			entitlement.PlanProfessional: entitlement.LimitsFor(entitlement.PlanProfessional),
		}
		s.mockQueries.EXPECT().TierFeatures(gomock.Any()).Return(features, nil).Times(1)
		s.mockQueries.EXPECT().TierLimits(gomock.Any()).Return(limits, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/entitlements/plans", nil, "bearer-token")

		var body resdto.PlanTableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(body.Features["professional"], "loyalty_program")
		s.NotContains(body.Features["basic"], "loyalty_program")
		s.Contains(body.Limits, "professional")
	})
}

func (s *EntitlementHandlerTestSuite) TestCurrentPlan() {
	url := "/entitlements/plan"

	s.Run("success: returns the resolved plan", func() {
		view := &queries.PlanView{
			Tier:     entitlement.PlanProfessional,
			Features: entitlement.FeaturesFor(entitlement.PlanProfessional),
			Limits:   entitlement.LimitsFor(entitlement.PlanProfessional),
		}
		s.mockQueries.EXPECT().CurrentPlan(gomock.Any(), testTenantID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("professional", body.Tier)
		s.Contains(body.Features, "loyalty_program")
	})

	s.Run("error: 503 when billing is unreachable", func() {
		s.mockQueries.EXPECT().CurrentPlan(gomock.Any(), testTenantID).
			Return(nil, errs.ErrGatewayUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Gateway unavailable")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

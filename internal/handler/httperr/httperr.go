package httperr

import (
	"errors"
	"net/http"

	"loyalty-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortDomainError maps the domain error taxonomy onto HTTP statuses.
// Validation failures carry the full field violation list in the detail
// payload so the editor UI can annotate every field at once.
func AbortDomainError(c *gin.Context, err error) {
	if vErr, ok := errs.AsValidation(err); ok {
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", vErr.Violations)
		return
	}

	switch {
	case errors.Is(err, errs.ErrProgramNotFound),
		errors.Is(err, errs.ErrTierNotFound),
		errors.Is(err, errs.ErrBenefitNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrNoTierForSpend):
		AbortWithError(c, http.StatusNotFound, err, "No tier covers this spend", nil)
	case errors.Is(err, errs.ErrBenefitTypeUnavailable):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Benefit type not offered for this business", nil)
	case errors.Is(err, errs.ErrGatewayRejected):
		AbortWithError(c, http.StatusBadGateway, err, "Gateway rejected the request", nil)
	case errors.Is(err, errs.ErrGatewayUnavailable):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Gateway unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Program errors
	ErrProgramNotFound = errors.New("loyalty program not found")

	// Tier errors
	ErrTierNotFound      = errors.New("membership tier not found")
	ErrDuplicateTierName = errors.New("duplicate tier name")
	ErrNoTierForSpend    = errors.New("no tier matches cumulative spend")

	// Benefit errors
	ErrBenefitNotFound        = errors.New("benefit not found")
	ErrBenefitTypeUnavailable = errors.New("benefit type not offered for vertical")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Gateway errors
	ErrGatewayUnavailable = errors.New("gateway unavailable")
	ErrGatewayRejected    = errors.New("gateway rejected request")
)

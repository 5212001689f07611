// Package entitlement projects a subscription plan tier onto the feature set
// and resource limits it unlocks. Plan tiers are billing state, distinct
// from loyalty membership tiers.
package entitlement

// PlanTier identifies the tenant's subscription plan.
type PlanTier string

const (
	PlanBasic        PlanTier = "basic"
	PlanProfessional PlanTier = "professional"
	PlanEnterprise   PlanTier = "enterprise"
	PlanTrialing     PlanTier = "trialing"
)

func (p PlanTier) Valid() bool {
	switch p {
	case PlanBasic, PlanProfessional, PlanEnterprise, PlanTrialing:
		return true
	}
	return false
}

// FeatureKey names a toggleable platform capability.
type FeatureKey string

const (
	FeatureGuestCRM       FeatureKey = "guest_crm"
	FeatureStaffDirectory FeatureKey = "staff_directory"
	FeatureBookings       FeatureKey = "bookings"
	FeatureChatSync       FeatureKey = "chat_sync"
	FeatureAIAgents       FeatureKey = "ai_agents"
	FeatureSupportTickets FeatureKey = "support_tickets"
	FeatureLoyaltyProgram FeatureKey = "loyalty_program"
	FeatureImageStudio    FeatureKey = "image_studio"
	FeatureAnalytics      FeatureKey = "analytics"
)

// LimitKey names a numeric resource cap.
type LimitKey string

const (
	LimitStaffAccounts    LimitKey = "staff_accounts"
	LimitRentalUnits      LimitKey = "rental_units"
	LimitMembershipTiers  LimitKey = "membership_tiers"
	LimitActiveBenefits   LimitKey = "active_benefits"
	LimitMonthlyAIReplies LimitKey = "monthly_ai_replies"
)

// Unlimited is the sentinel for "no cap". Consumers must branch on the
// sentinel before treating a limit as a numeric cap.
const Unlimited int64 = -1

func IsUnlimited(limit int64) bool {
	return limit == Unlimited
}

// planFeatures is the authoritative tier -> feature table. Trialing tenants
// get the professional feature set for the duration of the trial.
var planFeatures = map[PlanTier][]FeatureKey{
	PlanBasic: {
		FeatureGuestCRM,
		FeatureBookings,
		FeatureSupportTickets,
	},
	PlanProfessional: {
		FeatureGuestCRM,
		FeatureStaffDirectory,
		FeatureBookings,
		FeatureChatSync,
		FeatureSupportTickets,
		FeatureLoyaltyProgram,
		FeatureAnalytics,
	},
	PlanEnterprise: {
		FeatureGuestCRM,
		FeatureStaffDirectory,
		FeatureBookings,
		FeatureChatSync,
		FeatureAIAgents,
		FeatureSupportTickets,
		FeatureLoyaltyProgram,
		FeatureImageStudio,
		FeatureAnalytics,
	},
	PlanTrialing: {
		FeatureGuestCRM,
		FeatureStaffDirectory,
		FeatureBookings,
		FeatureChatSync,
		FeatureSupportTickets,
		FeatureLoyaltyProgram,
		FeatureAnalytics,
	},
}

var planLimits = map[PlanTier]map[LimitKey]int64{
	PlanBasic: {
		LimitStaffAccounts:    5,
		LimitRentalUnits:      10,
		LimitMembershipTiers:  3,
		LimitActiveBenefits:   10,
		LimitMonthlyAIReplies: 0,
	},
	PlanProfessional: {
		LimitStaffAccounts:    25,
		LimitRentalUnits:      100,
		LimitMembershipTiers:  10,
		LimitActiveBenefits:   50,
		LimitMonthlyAIReplies: 1000,
	},
	PlanEnterprise: {
		LimitStaffAccounts:    Unlimited,
		LimitRentalUnits:      Unlimited,
		LimitMembershipTiers:  Unlimited,
		LimitActiveBenefits:   Unlimited,
		LimitMonthlyAIReplies: Unlimited,
	},
	PlanTrialing: {
		LimitStaffAccounts:    25,
		LimitRentalUnits:      100,
		LimitMembershipTiers:  10,
		LimitActiveBenefits:   50,
		LimitMonthlyAIReplies: 100,
	},
}

// FeaturesFor returns the enabled feature keys for a plan tier. Unknown
// tiers fall back to the basic set to fail safely.
func FeaturesFor(tier PlanTier) []FeatureKey {
	features, ok := planFeatures[tier]
	if !ok {
		features = planFeatures[PlanBasic]
	}
	out := make([]FeatureKey, len(features))
	copy(out, features)
	return out
}

// HasFeature reports whether the plan tier enables the feature.
func HasFeature(tier PlanTier, key FeatureKey) bool {
	for _, f := range FeaturesFor(tier) {
		if f == key {
			return true
		}
	}
	return false
}

// LimitsFor returns the resource limits for a plan tier, with Unlimited as
// the sentinel for uncapped resources. Unknown tiers fall back to basic.
func LimitsFor(tier PlanTier) map[LimitKey]int64 {
	limits, ok := planLimits[tier]
	if !ok {
		limits = planLimits[PlanBasic]
	}
	out := make(map[LimitKey]int64, len(limits))
	for k, v := range limits {
		out[k] = v
	}
	return out
}

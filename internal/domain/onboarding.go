package domain

// OnboardingState enumerates the seller/buyer signup flow states.
type OnboardingState string

const (
	OnboardingUnregistered        OnboardingState = "unregistered"
	OnboardingPendingBasicInfo    OnboardingState = "pending_basic_info"
	OnboardingPendingUserType     OnboardingState = "pending_user_type"
	OnboardingPendingConfirmation OnboardingState = "pending_confirmation"
	OnboardingPendingKYC          OnboardingState = "pending_kyc"
	OnboardingPendingBankDetails  OnboardingState = "pending_bank_details"
	OnboardingPendingVerification OnboardingState = "pending_verification"
	OnboardingActive              OnboardingState = "active"
	OnboardingSellerActive        OnboardingState = "seller_active"
)

// Terminal reports whether the flow has completed.
func (s OnboardingState) Terminal() bool {
	return s == OnboardingActive || s == OnboardingSellerActive
}

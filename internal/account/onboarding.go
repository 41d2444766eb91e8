package account

import (
	"celora/internal/domain"
)

// BasicInfo is the first onboarding step.
type BasicInfo struct {
	Email       string
	Password    string
	DisplayName string
	Mobile      string // optional
}

// SellerKYC is the tax identity step of the seller path.
type SellerKYC struct {
	TaxID string
}

// BankDetails is the payout step of the seller path.
type BankDetails struct {
	AccountName   string
	AccountNumber string
	RoutingCode   string
	Address       string
}

// Onboarding drives the signup state machine. Each step validates its tagged
// record before the transition; a failed step leaves the state unchanged.
//
//	unregistered -> pending_basic_info -> pending_user_type
//	  buyer/undecided: -> pending_confirmation -> active
//	  seller:          -> pending_kyc -> pending_bank_details
//	                      -> pending_verification -> seller_active
type Onboarding struct {
	state domain.OnboardingState
	basic BasicInfo
	role  domain.UserRole
	kyc   SellerKYC
	bank  BankDetails
}

// NewOnboarding starts a flow in the unregistered state.
func NewOnboarding() *Onboarding {
	return &Onboarding{state: domain.OnboardingUnregistered}
}

// State returns the current flow state.
func (o *Onboarding) State() domain.OnboardingState { return o.state }

// Role returns the chosen role, empty before the user-type step.
func (o *Onboarding) Role() domain.UserRole { return o.role }

func (o *Onboarding) require(want domain.OnboardingState) error {
	if o.state != want {
		return domain.NewValidationError("state", "step not allowed in state "+string(o.state))
	}
	return nil
}

// Begin opens the signup form.
func (o *Onboarding) Begin() error {
	if err := o.require(domain.OnboardingUnregistered); err != nil {
		return err
	}
	o.state = domain.OnboardingPendingBasicInfo
	return nil
}

// SubmitBasicInfo validates and records the first step.
func (o *Onboarding) SubmitBasicInfo(info BasicInfo) error {
	if err := o.require(domain.OnboardingPendingBasicInfo); err != nil {
		return err
	}
	if err := ValidateEmail(info.Email); err != nil {
		return err
	}
	if err := ValidatePassword(info.Password); err != nil {
		return err
	}
	if info.Mobile != "" {
		if err := ValidateMobile(info.Mobile); err != nil {
			return err
		}
	}
	if err := ValidateDisplayName(info.DisplayName); err != nil {
		return err
	}
	o.basic = info
	o.state = domain.OnboardingPendingUserType
	return nil
}

// ChooseRole branches the flow between the buyer and seller paths.
func (o *Onboarding) ChooseRole(role domain.UserRole) error {
	if err := o.require(domain.OnboardingPendingUserType); err != nil {
		return err
	}
	if !role.Valid() {
		return domain.NewValidationError("role", "must be buyer, seller or undecided")
	}
	o.role = role
	if role == domain.RoleSeller {
		o.state = domain.OnboardingPendingKYC
	} else {
		o.state = domain.OnboardingPendingConfirmation
	}
	return nil
}

// Confirm completes the buyer/undecided path.
func (o *Onboarding) Confirm() error {
	if err := o.require(domain.OnboardingPendingConfirmation); err != nil {
		return err
	}
	o.state = domain.OnboardingActive
	return nil
}

// SubmitKYC validates and records the seller tax identity step.
func (o *Onboarding) SubmitKYC(kyc SellerKYC) error {
	if err := o.require(domain.OnboardingPendingKYC); err != nil {
		return err
	}
	if err := ValidateTaxID(kyc.TaxID); err != nil {
		return err
	}
	o.kyc = kyc
	o.state = domain.OnboardingPendingBankDetails
	return nil
}

// SubmitBankDetails validates and records the payout step. Afterwards the
// flow waits on external verification.
func (o *Onboarding) SubmitBankDetails(bank BankDetails) error {
	if err := o.require(domain.OnboardingPendingBankDetails); err != nil {
		return err
	}
	if err := ValidateRoutingCode(bank.RoutingCode); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"bank_account_name":   bank.AccountName,
		"bank_account_number": bank.AccountNumber,
		"address":             bank.Address,
	} {
		if value == "" {
			return domain.NewValidationError(field, "must not be empty")
		}
	}
	o.bank = bank
	o.state = domain.OnboardingPendingVerification
	return nil
}

// Approve records the external verification decision and activates the
// seller account.
func (o *Onboarding) Approve() error {
	if err := o.require(domain.OnboardingPendingVerification); err != nil {
		return err
	}
	o.state = domain.OnboardingSellerActive
	return nil
}

// SellerRegistration assembles the registration record once the seller path
// has reached pending_verification or later.
func (o *Onboarding) SellerRegistration() (SellerRegistration, error) {
	if o.state != domain.OnboardingPendingVerification && o.state != domain.OnboardingSellerActive {
		return SellerRegistration{}, domain.NewValidationError("state", "seller steps incomplete")
	}
	return SellerRegistration{
		Registration: Registration{
			Email:       o.basic.Email,
			Password:    o.basic.Password,
			DisplayName: o.basic.DisplayName,
			Role:        domain.RoleSeller,
			Mobile:      o.basic.Mobile,
		},
		TaxID:             o.kyc.TaxID,
		BankAccountName:   o.bank.AccountName,
		BankAccountNumber: o.bank.AccountNumber,
		RoutingCode:       o.bank.RoutingCode,
		Address:           o.bank.Address,
	}, nil
}

package account

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"celora/internal/domain"
	"celora/internal/kv"
)

// Fixed persistence keys, carried over from the storefront client.
const (
	sessionKeyPrefix = "celora_session:"
	cartKeyPrefix    = "celora_cart:"
	libraryKeyPrefix = "celora_library:"
)

// dummyHash is compared against when the identifier is unknown so that a
// failed login costs the same whether or not the account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLxH1vS8mDgkzqlkL1P0jO0zC4q2e")

// Registration is the tagged record collected by the basic signup form.
type Registration struct {
	Email       string
	Password    string
	DisplayName string
	Role        domain.UserRole
	Mobile      string // optional
}

// SellerRegistration extends Registration with the KYC and bank steps.
type SellerRegistration struct {
	Registration
	TaxID             string
	BankAccountName   string
	BankAccountNumber string
	RoutingCode       string
	Address           string
}

// Manager owns account validation, credential verification and the persisted
// session blob. It does not own usage counters or billing.
type Manager struct {
	users  domain.UserRepository
	store  kv.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewManager wires a Manager over a user repository and session store.
func NewManager(users domain.UserRepository, store kv.Store, logger zerolog.Logger) *Manager {
	return &Manager{users: users, store: store, logger: logger, now: time.Now}
}

func (r Registration) validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	if r.Mobile != "" {
		if err := ValidateMobile(r.Mobile); err != nil {
			return err
		}
	}
	if err := ValidateDisplayName(r.DisplayName); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return domain.NewValidationError("role", "must be buyer, seller or undecided")
	}
	return nil
}

func (r SellerRegistration) validate() error {
	if err := r.Registration.validate(); err != nil {
		return err
	}
	if err := ValidateTaxID(r.TaxID); err != nil {
		return err
	}
	if err := ValidateRoutingCode(r.RoutingCode); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"bank_account_name":   r.BankAccountName,
		"bank_account_number": r.BankAccountNumber,
		"address":             r.Address,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.NewValidationError(field, "must not be empty")
		}
	}
	return nil
}

// Register creates a buyer/undecided account on the free plan. All validation
// rules run before anything is persisted.
func (m *Manager) Register(ctx context.Context, reg Registration) (*domain.Session, error) {
	if err := reg.validate(); err != nil {
		return nil, err
	}
	user, err := m.createUser(ctx, reg, nil)
	if err != nil {
		return nil, err
	}
	return m.openSession(user)
}

// RegisterSeller creates a seller account. Verification is asynchronous and
// external, so the session starts with SellerVerified=false.
func (m *Manager) RegisterSeller(ctx context.Context, reg SellerRegistration) (*domain.Session, error) {
	reg.Role = domain.RoleSeller
	if err := reg.validate(); err != nil {
		return nil, err
	}
	profile := &domain.SellerProfile{
		TaxID:             reg.TaxID,
		BankAccountName:   reg.BankAccountName,
		BankAccountNumber: reg.BankAccountNumber,
		RoutingCode:       reg.RoutingCode,
		Address:           reg.Address,
	}
	user, err := m.createUser(ctx, reg.Registration, profile)
	if err != nil {
		return nil, err
	}
	return m.openSession(user)
}

func (m *Manager) createUser(ctx context.Context, reg Registration, profile *domain.SellerProfile) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := m.now().UTC()
	user := &domain.User{
		ID:            uuid.NewString(),
		Email:         strings.ToLower(reg.Email),
		Mobile:        reg.Mobile,
		DisplayName:   strings.TrimSpace(reg.DisplayName),
		Role:          reg.Role,
		Plan:          domain.PlanFree,
		PasswordHash:  hash,
		SellerProfile: profile,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the identifier as an email or mobile number by shape and
// verifies the password against the stored bcrypt hash. Shape rules for the
// password itself apply only at registration. Every failure surfaces the same
// generic AuthError.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	identifier = strings.TrimSpace(identifier)

	var user *domain.User
	var err error
	switch {
	case ValidateEmail(identifier) == nil:
		user, err = m.users.GetByEmail(ctx, strings.ToLower(identifier))
	case ValidateMobile(identifier) == nil:
		user, err = m.users.GetByMobile(ctx, identifier)
	default:
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = user.PasswordHash
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return m.openSession(user)
}

// Logout clears the persisted session state. It is idempotent: logging out an
// already absent session is a no-op.
func (m *Manager) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return m.store.Remove(sessionKeyPrefix + userID)
}

// UpdatePlan swaps the subscription tier. Billing is an external concern;
// any known plan is accepted for any session.
func (m *Manager) UpdatePlan(ctx context.Context, userID string, plan domain.Plan) (*domain.Session, error) {
	if _, ok := domain.LookupPlan(plan); !ok {
		return nil, domain.NewValidationError("plan", "unknown plan "+string(plan))
	}
	if err := m.users.UpdatePlan(ctx, userID, plan); err != nil {
		return nil, err
	}
	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	session := user.Session()
	if err := m.persistSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CurrentSession restores the persisted session for a user. A corrupted blob
// degrades to logged-out: the entry is cleared and no session is returned.
func (m *Manager) CurrentSession(ctx context.Context, userID string) (*domain.Session, error) {
	raw, ok, err := m.store.Get(sessionKeyPrefix + userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.UserID == "" {
		m.logger.Warn().Str("user_id", userID).Msg("clearing corrupted session blob")
		_ = m.store.Remove(sessionKeyPrefix + userID)
		return nil, nil
	}
	return &session, nil
}

func (m *Manager) openSession(user *domain.User) (*domain.Session, error) {
	session := user.Session()
	if err := m.persistSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (m *Manager) persistSession(session *domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return m.store.Set(sessionKeyPrefix+session.UserID, string(blob))
}

// CartKey and LibraryKey expose the fixed persistence keys to the cart
// service so all storefront state lives under one naming scheme.
func CartKey(userID string) string    { return cartKeyPrefix + userID }
func LibraryKey(userID string) string { return libraryKeyPrefix + userID }

// Package repo implements the domain repositories backed by PostgreSQL.
package repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"celora/internal/domain"
	"celora/internal/infra"
	"celora/internal/sqlinline"
)

var _ domain.UserRepository = (*UserRepositoryPG)(nil)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts a new account. A duplicate email or mobile maps onto
// domain.ErrDuplicateAccount.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	var profile []byte
	if user.SellerProfile != nil {
		blob, err := json.Marshal(user.SellerProfile)
		if err != nil {
			return err
		}
		profile = blob
	}
	_, err := r.sql.Exec(ctx, sqlinline.QInsertUser,
		user.ID,
		user.Email,
		user.Mobile,
		user.DisplayName,
		user.Role,
		user.Plan,
		user.PasswordHash,
		user.EmailVerified,
		user.SellerVerified,
		profile,
		user.CreatedAt,
		user.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicateAccount
	}
	return err
}

// GetByID fetches a user by UUID.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByEmail fetches a user by email.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email))
}

// GetByMobile fetches a user by mobile number.
func (r *UserRepositoryPG) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByMobile, mobile))
}

// UpdatePlan swaps the stored subscription tier.
func (r *UserRepositoryPG) UpdatePlan(ctx context.Context, id string, plan domain.Plan) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateUserPlan, id, plan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var profile []byte
	if err := row.Scan(&u.ID, &u.Email, &u.Mobile, &u.DisplayName, &u.Role, &u.Plan, &u.PasswordHash,
		&u.EmailVerified, &u.SellerVerified, &profile, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(profile) > 0 && string(profile) != "null" {
		var p domain.SellerProfile
		if err := json.Unmarshal(profile, &p); err == nil {
			u.SellerProfile = &p
		}
	}
	return &u, nil
}

package writerepo

import (
	"context"
	"errors"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, loyalty_points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String(), u.LoyaltyPoints(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) AddLoyaltyPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users SET loyalty_points = loyalty_points + $2, updated_at = now() WHERE id = $1`,
		userID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to add loyalty points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userColumns = `id, email, name, password_hash, role, loyalty_points`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	snap, err := r.findSnapshot(ctx, r.db, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedView(snap), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	snap, err := r.findSnapshot(ctx, r.db, `WHERE email = $1`, email)
	if err != nil {
		return nil, "", err
	}
	return toAuthorizedView(snap), snap.PasswordHash, nil
}

// Command-side snapshot lookups, bound to the caller's transaction.

func (r *UserReadStore) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.findSnapshot(ctx, dbtx, `WHERE id = $1`, id)
}

func (r *UserReadStore) FindSnapshotByEmail(ctx context.Context, dbtx db.DBTX, email string) (*shared.UserSnapshot, error) {
	return r.findSnapshot(ctx, dbtx, `WHERE email = $1`, email)
}

func (r *UserReadStore) findSnapshot(ctx context.Context, dbtx db.DBTX, where string, arg any) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := dbtx.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users `+where, arg,
	).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Role, &snap.LoyaltyPoints)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

func toAuthorizedView(snap *shared.UserSnapshot) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            snap.ID,
		Email:         snap.Email,
		Name:          snap.Name,
		Role:          snap.Role,
		LoyaltyPoints: snap.LoyaltyPoints,
	}
}

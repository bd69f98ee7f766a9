package readstore

import (
	"context"
	"strings"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/shared"
)

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

// FindActiveByCode resolves a code that is active and unexpired as of the
// given date. Inactive and expired codes report KindNotFound, same as
// unknown ones; the booking flow treats all three as "no discount".
func (r *PromotionReadStore) FindActiveByCode(ctx context.Context, dbtx db.DBTX, code string, asOf time.Time) (*shared.PromotionSnapshot, error) {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))

	var snap shared.PromotionSnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, code, discount_percentage, expiry_date, is_active, description
		FROM promotions
		WHERE code = $1 AND is_active = true AND expiry_date > $2`,
		normalizedCode, pgconv.DateToPgtype(asOf),
	).Scan(&snap.ID, &snap.Code, &snap.DiscountPercentage, &snap.ExpiryDate, &snap.IsActive, &snap.Description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}

	return &snap, nil
}

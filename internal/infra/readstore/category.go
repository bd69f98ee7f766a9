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

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(dbtx db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: dbtx}
}

const categoryColumns = `id, name, price_per_night_cents, total_rooms, amenities, image_urls`

func (r *CategoryReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.CategorySnapshot, error) {
	var snap shared.CategorySnapshot
	err := dbtx.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM room_categories WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.PricePerNightCents, &snap.TotalRooms, &snap.Amenities, &snap.ImageURLs)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room category", err)
	}
	return &snap, nil
}

func (r *CategoryReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	var v queries.CategoryView
	err := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM room_categories WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.PricePerNightCents, &v.TotalRooms, &v.Amenities, &v.ImageURLs)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room category", err)
	}
	return &v, nil
}

func (r *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.price_per_night_cents, c.total_rooms, c.amenities, c.image_urls
		FROM room_categories c
		ORDER BY c.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room categories", err)
	}
	defer rows.Close()

	return scanCategoryViews(rows)
}

func (r *CategoryReadStore) SearchByPriceRange(ctx context.Context, minCents, maxCents int64) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.price_per_night_cents, c.total_rooms, c.amenities, c.image_urls
		FROM room_categories c
		WHERE c.price_per_night_cents BETWEEN $1 AND $2
		ORDER BY c.price_per_night_cents, c.name`,
		minCents, maxCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search room categories", err)
	}
	defer rows.Close()

	return scanCategoryViews(rows)
}

type categoryRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCategoryViews(rows categoryRows) ([]*queries.CategoryView, error) {
	var result []*queries.CategoryView
	for rows.Next() {
		var v queries.CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.PricePerNightCents, &v.TotalRooms, &v.Amenities, &v.ImageURLs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room category", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room categories", err)
	}
	return result, nil
}

package queries

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/google/uuid"
)

type CategoryView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	TotalRooms         int32     `json:"total_rooms"`
	Amenities          string    `json:"amenities"`
	ImageURLs          []string  `json:"image_urls"`
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	SearchByPriceRange(ctx context.Context, minCents, maxCents int64) ([]*CategoryView, error)
}

type CategoryViewRepo interface {
	List(ctx context.Context) ([]*CategoryView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	SearchByPriceRange(ctx context.Context, minCents, maxCents int64) ([]*CategoryView, error)
}

type catalogQueriesImpl struct {
	repo CategoryViewRepo
}

func NewCatalogQueries(repo CategoryViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.repo.List(ctx)
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) SearchByPriceRange(ctx context.Context, minCents, maxCents int64) ([]*CategoryView, error) {
	if minCents < 0 || maxCents < minCents {
		return nil, errs.ErrDomainValidation
	}
	return q.repo.SearchByPriceRange(ctx, minCents, maxCents)
}

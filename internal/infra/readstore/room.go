package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

// FindByCategory returns the category's whole unit pool in allocation order
// (room number, then id), matching the allocator's tie-break.
func (r *RoomReadStore) FindByCategory(ctx context.Context, dbtx db.DBTX, categoryID uuid.UUID) ([]shared.RoomSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, room_number, category_id
		FROM rooms
		WHERE category_id = $1
		ORDER BY room_number, id`,
		categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []shared.RoomSnapshot
	for rows.Next() {
		var snap shared.RoomSnapshot
		if err := rows.Scan(&snap.ID, &snap.Number, &snap.CategoryID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return result, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, hotel_id, room_type, price_per_night, amenities, images,
			                     is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Master.ExecContext(ctx, query,
		room.ID, room.HotelID, room.RoomType, room.PricePerNight,
		pq.Array(room.Amenities), pq.Array(room.Images),
		room.IsAvailable, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrHotelNotFound
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

const roomColumns = `id, hotel_id, room_type, price_per_night, amenities, images,
                     is_available, created_at, updated_at`

func scanRoom(s scanner, room *domain.Room) error {
	return s.Scan(
		&room.ID, &room.HotelID, &room.RoomType, &room.PricePerNight,
		pq.Array(&room.Amenities), pq.Array(&room.Images),
		&room.IsAvailable, &room.CreatedAt, &room.UpdatedAt,
	)
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if !validID(id) {
		return nil, domain.ErrRoomNotFound
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = scanRoom(row, &room); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

// ToggleAvailability flips the flag in one statement, so concurrent toggles
// never read a stale value.
func (r *RoomRepository) ToggleAvailability(ctx context.Context, id string) (*domain.Room, error) {
	if !validID(id) {
		return nil, domain.ErrRoomNotFound
	}

	query := `UPDATE rooms
			  SET is_available = NOT is_available, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + roomColumns

	var room domain.Room
	if err := scanRoom(r.db.Master.QueryRowContext(ctx, query, id), &room); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("toggle room availability: %w", err)
	}

	return &room, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const hotelColumns = `id, owner_id, name, address, contact, city, created_at, updated_at`

type HotelRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	query := `INSERT INTO hotels (id, owner_id, name, address, contact, city, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Master.ExecContext(ctx, query,
		h.ID, h.OwnerID, h.Name, h.Address, h.Contact, h.City, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return domain.ErrHotelAlreadyRegistered
		case pgForeignKeyViolation:
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert hotel: %w", err)
	}

	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	return r.getOne(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`, id)
}

func (r *HotelRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Hotel, error) {
	return r.getOne(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE owner_id = $1`, ownerID)
}

func (r *HotelRepository) getOne(ctx context.Context, query string, arg any) (*domain.Hotel, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	var h domain.Hotel
	if err = row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address, &h.Contact, &h.City, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return &h, nil
}

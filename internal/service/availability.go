package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityChecker struct {
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewAvailabilityChecker(bookingRepo ports.BookingRepo, logger logger.Logger) *AvailabilityChecker {
	return &AvailabilityChecker{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// IsAvailable fails closed: any lookup error yields false.
// The stay is expected to be validated by the caller.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID string, stay domain.Stay) (bool, error) {
	existing, err := c.bookingRepo.ListActiveByRoom(ctx, roomID, stay)
	if err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "availability lookup failed, treating room as unavailable",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
		return false, fmt.Errorf("list room bookings: %w", err)
	}

	for _, b := range existing {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		if stay.Overlaps(b.Stay()) {
			return false, nil
		}
	}

	return true, nil
}

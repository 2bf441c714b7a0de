package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCanceller interface {
	CancelExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically releases rooms held by unpaid online checkouts.
type Scheduler struct {
	canceller   bookingCanceller
	interval    time.Duration
	tickTimeout time.Duration
	logger      logger.Logger
}

func New(
	canceller bookingCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		canceller:   canceller,
		interval:    interval,
		tickTimeout: interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	// после рестарта просроченные брони не должны ждать целый интервал
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	// тик не должен пересекаться со следующим
	tickCtx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	cancelled, err := s.canceller.CancelExpired(tickCtx)
	if err != nil {
		s.logger.Error("failed to cancel expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("unpaid booking expired",
			logger.String("booking_id", b.ID),
			logger.String("room_id", b.RoomID),
			logger.String("hotel_id", b.HotelID),
			logger.String("user_id", b.UserID),
		)
	}
}

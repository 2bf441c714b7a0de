package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type WebhookService struct {
	gateway     ports.PaymentGateway
	bookingRepo ports.BookingRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	deduper     ports.EventDeduper
	journal     ports.PaymentJournal
	owners      ports.OwnerNotifier
	publisher   ports.EventPublisher
	logger      logger.Logger
}

func NewWebhookService(
	gateway ports.PaymentGateway,
	bookingRepo ports.BookingRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	deduper ports.EventDeduper,
	journal ports.PaymentJournal,
	owners ports.OwnerNotifier,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		gateway:     gateway,
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		deduper:     deduper,
		journal:     journal,
		owners:      owners,
		publisher:   publisher,
		logger:      logger,
	}
}

// HandleProviderEvent verifies and applies a payment provider event.
// Nothing is written before the signature check passes.
func (s *WebhookService) HandleProviderEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "webhook rejected",
			logger.String("gateway", s.gateway.Name()),
			logger.String("error", err.Error()),
		)
		s.record(ctx, domain.PaymentRecord{Outcome: domain.PaymentOutcomeRejected, Error: err.Error()})
		if errors.Is(err, domain.ErrMalformedEvent) || errors.Is(err, domain.ErrInvalidSignature) {
			return err
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err.Error())
	}

	processed, err := s.deduper.IsProcessed(ctx, event.ID)
	if err != nil {
		// дедупликация необязательна: переход идемпотентен
		s.logger.LogAttrs(ctx, logger.WarnLevel, "webhook dedupe lookup failed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
	if processed {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "webhook event already processed",
			logger.String("event_id", event.ID),
		)
		s.record(ctx, newRecord(event, domain.PaymentOutcomeDuplicate, nil))
		return nil
	}

	outcome, err := s.apply(ctx, event)
	s.record(ctx, newRecord(event, outcome, err))
	if err != nil {
		return err
	}

	if err = s.deduper.MarkProcessed(ctx, event.ID); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to mark webhook event processed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}

	return nil
}

func (s *WebhookService) apply(ctx context.Context, event *domain.PaymentEvent) (domain.PaymentOutcome, error) {
	switch event.Kind {
	case domain.PaymentEventCheckoutCompleted:
		if event.BookingID == "" {
			return domain.PaymentOutcomeRejected,
				fmt.Errorf("%w: checkout session %s has no booking id", domain.ErrMalformedEvent, event.ID)
		}
		return s.confirmPayment(ctx, event.BookingID)

	case domain.PaymentEventPaymentSucceeded:
		bookingID := event.BookingID
		if bookingID == "" {
			if event.PaymentIntentID == "" {
				return domain.PaymentOutcomeRejected,
					fmt.Errorf("%w: payment event %s has no payment intent", domain.ErrMalformedEvent, event.ID)
			}
			id, err := s.gateway.BookingIDByPaymentIntent(ctx, event.PaymentIntentID)
			if err != nil {
				return domain.PaymentOutcomeFailed, fmt.Errorf("lookup checkout session: %w", err)
			}
			bookingID = id
		}
		if bookingID == "" {
			s.logger.LogAttrs(ctx, logger.InfoLevel, "payment is not linked to a booking, ignoring",
				logger.String("event_id", event.ID),
				logger.String("payment_intent", event.PaymentIntentID),
			)
			return domain.PaymentOutcomeIgnored, nil
		}
		return s.confirmPayment(ctx, bookingID)

	default:
		s.logger.LogAttrs(ctx, logger.DebugLevel, "unhandled webhook event",
			logger.String("event_id", event.ID),
			logger.String("kind", string(event.Kind)),
		)
		return domain.PaymentOutcomeIgnored, nil
	}
}

// confirmPayment is the single transition shared by every payment event.
// Side effects fire only when the booking actually changed.
func (s *WebhookService) confirmPayment(ctx context.Context, bookingID string) (domain.PaymentOutcome, error) {
	changed, err := s.bookingRepo.MarkPaid(ctx, bookingID, s.gateway.Name())
	if err != nil {
		if errors.Is(err, domain.ErrBookingCancelled) {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "payment received for cancelled booking, refund required",
				logger.String("booking_id", bookingID),
			)
		}
		return domain.PaymentOutcomeFailed, fmt.Errorf("mark booking paid: %w", err)
	}
	if !changed {
		return domain.PaymentOutcomeDuplicate, nil
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking paid",
		logger.String("booking_id", bookingID),
		logger.String("gateway", s.gateway.Name()),
	)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to load paid booking for notifications",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return domain.PaymentOutcomeApplied, nil
	}

	bgCtx := context.WithoutCancel(ctx)
	go s.notifyOwner(bgCtx, booking)
	go func() {
		if err := s.publisher.Publish(bgCtx, domain.NewBookingEvent(domain.BookingEventConfirmed, booking)); err != nil {
			s.logger.Error("failed to publish booking event",
				logger.String("booking_id", booking.ID),
				logger.String("error", err.Error()),
			)
		}
	}()

	return domain.PaymentOutcomeApplied, nil
}

func (s *WebhookService) notifyOwner(ctx context.Context, booking *domain.Booking) {
	hotel, err := s.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		s.logger.Error("failed to get hotel for payment notification",
			logger.String("hotel_id", booking.HotelID),
		)
		return
	}

	owner, err := s.userRepo.GetByID(ctx, hotel.OwnerID)
	if err != nil {
		s.logger.Error("failed to get hotel owner for payment notification",
			logger.String("owner_id", hotel.OwnerID),
		)
		return
	}

	s.owners.NotifyBookingPaid(ctx, owner, booking)
}

func (s *WebhookService) record(ctx context.Context, rec domain.PaymentRecord) {
	rec.ReceivedAt = time.Now().UTC()
	if err := s.journal.Record(ctx, rec); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to journal payment event",
			logger.String("event_id", rec.EventID),
			logger.String("error", err.Error()),
		)
	}
}

func newRecord(event *domain.PaymentEvent, outcome domain.PaymentOutcome, err error) domain.PaymentRecord {
	rec := domain.PaymentRecord{
		EventID:   event.ID,
		Kind:      string(event.Kind),
		BookingID: event.BookingID,
		Outcome:   outcome,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}

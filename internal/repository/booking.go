package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.user_id, b.room_id, b.hotel_id, b.check_in, b.check_out, b.guests,
                        b.total_price, b.status, b.payment_method, b.is_paid,
                        b.checkout_session_id, b.checkout_expires_at, b.created_at, b.updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanBooking(s scanner, b *domain.Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.UserID, &b.RoomID, &b.HotelID, &b.CheckIn, &b.CheckOut, &b.Guests,
		&b.TotalPrice, &b.Status, &b.PaymentMethod, &b.IsPaid,
		&b.CheckoutSessionID, &b.CheckoutExpiresAt, &b.CreatedAt, &b.UpdatedAt,
	}
	return s.Scan(append(dest, extra...)...)
}

// Create inserts the booking only if the room is free for its dates.
// The exclusion constraint bookings_no_overlap is the final guard.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// сериализуем бронирования одной комнаты внутри транзакции
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, b.RoomID); err != nil {
		return fmt.Errorf("room advisory lock: %w", err)
	}

	var overlapping int
	overlapQuery := `SELECT COUNT(*) FROM bookings
					 WHERE room_id = $1 AND status = ANY($2)
					   AND check_in < $4 AND check_out > $3`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.RoomID, pq.Array(domain.ActiveStatuses), b.CheckIn, b.CheckOut,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrRoomNotAvailable
	}

	query := `INSERT INTO bookings (id, user_id, room_id, hotel_id, check_in, check_out, guests,
			                        total_price, status, payment_method, is_paid, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.UserID, b.RoomID, b.HotelID, b.CheckIn, b.CheckOut, b.Guests,
		b.TotalPrice, b.Status, b.PaymentMethod, b.IsPaid, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgExclusionViolation:
			return domain.ErrRoomNotAvailable
		case pgForeignKeyViolation:
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if !validID(id) {
		return nil, domain.ErrBookingNotFound
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row, &b); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID string, stay domain.Stay) ([]*domain.Booking, error) {
	if !validID(roomID) {
		return nil, domain.ErrRoomNotFound
	}

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.room_id = $1 AND b.status = ANY($2)
			    AND b.check_in < $4 AND b.check_out > $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		roomID, pq.Array(domain.ActiveStatuses), stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

const bookingViewQuery = `SELECT ` + bookingColumns + `,
		r.room_type, COALESCE(r.images[1], ''), h.name, h.city, u.full_name, u.email
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN hotels h ON h.id = b.hotel_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error) {
	return r.listViews(ctx, bookingViewQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID string) ([]*domain.BookingView, error) {
	return r.listViews(ctx, bookingViewQuery+` WHERE b.hotel_id = $1 ORDER BY b.created_at DESC`, hotelID)
}

func (r *BookingRepository) listViews(ctx context.Context, query string, arg any) ([]*domain.BookingView, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.BookingView, 0)
	for rows.Next() {
		var v domain.BookingView
		if err = scanBooking(rows, &v.Booking,
			&v.RoomType, &v.RoomImage, &v.HotelName, &v.HotelCity, &v.UserName, &v.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan booking view: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *BookingRepository) AttachCheckout(ctx context.Context, id, sessionID string, expiresAt time.Time) error {
	if !validID(id) {
		return domain.ErrBookingNotFound
	}

	query := `UPDATE bookings
			  SET checkout_session_id = $2, checkout_expires_at = $3, updated_at = now()
			  WHERE id = $1 AND is_paid = FALSE AND status = $4`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, sessionID, expiresAt, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("attach checkout: %w", err)
	}
	return expectOneRow(res, domain.ErrBookingNotFound)
}

// MarkPaid is idempotent: a booking already paid by the same method is
// left untouched and reported as unchanged.
func (r *BookingRepository) MarkPaid(ctx context.Context, id, paymentMethod string) (bool, error) {
	if !validID(id) {
		return false, domain.ErrBookingNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		status string
		isPaid bool
		method string
	)
	lockQuery := `SELECT status, is_paid, payment_method FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&status, &isPaid, &method); err != nil {
		if isNoRows(err) {
			return false, domain.ErrBookingNotFound
		}
		return false, fmt.Errorf("lock booking: %w", err)
	}

	if domain.BookingStatus(status) == domain.BookingStatusCancelled {
		return false, domain.ErrBookingCancelled
	}
	if isPaid && domain.BookingStatus(status) == domain.BookingStatusConfirmed && method == paymentMethod {
		return false, nil
	}

	updateQuery := `UPDATE bookings
					SET is_paid = TRUE, status = $2, payment_method = $3, updated_at = now()
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, domain.BookingStatusConfirmed, paymentMethod); err != nil {
		return false, fmt.Errorf("mark booking paid: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func (r *BookingRepository) CancelExpired(ctx context.Context, paymentMethod string, grace time.Duration) ([]*domain.Booking, error) {
	// бронь с оплатой в отеле не отменяется из-за брошенного checkout
	query := `
        UPDATE bookings b
        SET status = $2, updated_at = NOW()
        WHERE b.status = $1
          AND b.is_paid = FALSE
          AND b.payment_method = $4
          AND b.checkout_expires_at IS NOT NULL
          AND b.checkout_expires_at + make_interval(secs => $3) < NOW()
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, grace.Seconds(), paymentMethod,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

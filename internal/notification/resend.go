package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/stpnv0/HotelBooker/internal/domain"
)

type ResendConfig struct {
	APIKey         string
	From           string
	Timeout        time.Duration
	CurrencySymbol string
}

type ResendSender struct {
	client   *resend.Client
	from     string
	currency string
}

func NewResendSender(cfg ResendConfig) *ResendSender {
	return &ResendSender{
		client:   resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey),
		from:     fmt.Sprintf("%s <%s>", senderName, cfg.From),
		currency: cfg.CurrencySymbol,
	}
}

func (s *ResendSender) SendBookingConfirmation(
	ctx context.Context,
	booking *domain.Booking,
	recipient domain.Recipient,
	room domain.RoomSnapshot,
) error {
	content, err := renderConfirmation(booking, recipient, room, s.currency)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	_, err = s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{recipient.Email},
		Subject: content.Subject,
		Html:    content.HTML,
		Text:    content.Text,
	})
	if err != nil {
		return fmt.Errorf("send confirmation via resend: %w", err)
	}
	return nil
}

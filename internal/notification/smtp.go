package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	TLSPolicy      string
	Timeout        time.Duration
	CurrencySymbol string
}

type SMTPSender struct {
	client   *mail.Client
	from     string
	currency string
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPSender{
		client:   client,
		from:     cfg.From,
		currency: cfg.CurrencySymbol,
	}, nil
}

func (s *SMTPSender) SendBookingConfirmation(
	ctx context.Context,
	booking *domain.Booking,
	recipient domain.Recipient,
	room domain.RoomSnapshot,
) error {
	msg, err := s.buildMessage(booking, recipient, room)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation via smtp: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(
	booking *domain.Booking,
	recipient domain.Recipient,
	room domain.RoomSnapshot,
) (*mail.Msg, error) {
	content, err := renderConfirmation(booking, recipient, room, s.currency)
	if err != nil {
		return nil, fmt.Errorf("render confirmation: %w", err)
	}

	msg := mail.NewMsg()
	if err = msg.FromFormat(senderName, s.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err = msg.To(recipient.Email); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(content.Subject)
	msg.SetBodyString(mail.TypeTextPlain, content.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, content.HTML)

	return msg, nil
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch name {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}

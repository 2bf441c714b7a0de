package notification

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	senderName = "Hotel Booking System"
	dateLayout = "Mon Jan 02 2006"
)

var htmlConfirmation = htmltemplate.Must(htmltemplate.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #f8f9fa; padding: 20px; text-align: center; }
    .details { background-color: #f8f9fa; padding: 15px; margin: 20px 0; border-radius: 5px; }
    .footer { text-align: center; padding: 20px; font-size: 0.9em; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Booking Confirmation</h1></div>
    <p>Dear {{.GuestName}},</p>
    <p>Thank you for your booking! Your reservation has been received.</p>
    <div class="details">
      <h3>Booking Details:</h3>
      <p><strong>Booking ID:</strong> {{.BookingID}}</p>
      <p><strong>Hotel:</strong> {{.HotelName}}</p>
      <p><strong>Address:</strong> {{.HotelAddress}}</p>
      <p><strong>Room Type:</strong> {{.RoomType}}</p>
      <p><strong>Check-in Date:</strong> {{.CheckIn}}</p>
      <p><strong>Check-out Date:</strong> {{.CheckOut}}</p>
      <p><strong>Nights:</strong> {{.Nights}}</p>
      <p><strong>Number of Guests:</strong> {{.Guests}}</p>
      <p><strong>Total Amount:</strong> {{.Total}}</p>
    </div>
    <p>We look forward to welcoming you!</p>
    <div class="footer"><p>This is an automated email. Please do not reply to this message.</p></div>
  </div>
</body>
</html>
`))

var textConfirmation = texttemplate.Must(texttemplate.New("confirmation").Parse(`Booking Confirmation

Dear {{.GuestName}},

Thank you for your booking! Your reservation has been received.

Booking Details:
- Booking ID: {{.BookingID}}
- Hotel: {{.HotelName}}
- Address: {{.HotelAddress}}
- Room Type: {{.RoomType}}
- Check-in Date: {{.CheckIn}}
- Check-out Date: {{.CheckOut}}
- Nights: {{.Nights}}
- Number of Guests: {{.Guests}}
- Total Amount: {{.Total}}

We look forward to welcoming you!
`))

type confirmationData struct {
	GuestName    string
	BookingID    string
	HotelName    string
	HotelAddress string
	RoomType     string
	CheckIn      string
	CheckOut     string
	Nights       int
	Guests       int
	Total        string
}

type confirmation struct {
	Subject string
	HTML    string
	Text    string
}

func renderConfirmation(
	booking *domain.Booking,
	recipient domain.Recipient,
	room domain.RoomSnapshot,
	currencySymbol string,
) (*confirmation, error) {
	data := confirmationData{
		GuestName:    recipient.Name,
		BookingID:    booking.ID,
		HotelName:    room.HotelName,
		HotelAddress: room.HotelAddress,
		RoomType:     string(room.RoomType),
		CheckIn:      booking.CheckIn.UTC().Format(dateLayout),
		CheckOut:     booking.CheckOut.UTC().Format(dateLayout),
		Nights:       room.Nights,
		Guests:       booking.Guests,
		Total:        currencySymbol + strconv.FormatFloat(booking.TotalPrice, 'f', 2, 64),
	}

	var html, text bytes.Buffer
	if err := htmlConfirmation.Execute(&html, data); err != nil {
		return nil, err
	}
	if err := textConfirmation.Execute(&text, data); err != nil {
		return nil, err
	}

	return &confirmation{
		Subject: "Hotel Booking Confirmation - Booking ID: " + booking.ID,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// NoopSender only logs confirmations. Used when no email provider is configured.
type NoopSender struct {
	logger logger.Logger
}

func NewNoopSender(logger logger.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) SendBookingConfirmation(
	ctx context.Context,
	booking *domain.Booking,
	recipient domain.Recipient,
	_ domain.RoomSnapshot,
) error {
	s.logger.LogAttrs(ctx, logger.InfoLevel, "email delivery disabled, confirmation skipped",
		logger.String("booking_id", booking.ID),
		logger.String("email", recipient.Email),
	)
	return nil
}

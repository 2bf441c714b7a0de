package notification

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const telegramDateLayout = "02.01.2006"

// botSender is the part of *tgbotapi.BotAPI used for alerts.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier alerts hotel owners about bookings of their rooms.
type TelegramNotifier struct {
	bot      botSender
	currency string
	logger   logger.Logger
}

func NewTelegramNotifier(token, currencySymbol string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, owner alerts disabled")
		return &TelegramNotifier{currency: currencySymbol, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, currency: currencySymbol, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Новое бронирование*\n\n"+"Бронь: %s\n"+"Даты: %s\n"+"Гостей: %d\n"+"Сумма: %s\n"+"Оплата: %s",
		booking.ID, n.stay(booking), booking.Guests, n.total(booking), booking.PaymentMethod,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, owner *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование оплачено*\n\n"+"Бронь: %s\n"+"Даты: %s\n"+"Сумма: %s",
		booking.ID, n.stay(booking), n.total(booking),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, owner *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отменено (истекло время оплаты)*\n\n"+"Бронь: %s\n"+"Даты: %s\n"+"Номер снова свободен на эти даты.",
		booking.ID, n.stay(booking),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) stay(b *domain.Booking) string {
	return b.CheckIn.UTC().Format(telegramDateLayout) + " - " + b.CheckOut.UTC().Format(telegramDateLayout)
}

func (n *TelegramNotifier) total(b *domain.Booking) string {
	return n.currency + strconv.FormatFloat(b.TotalPrice, 'f', 2, 64)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("owner alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("owner alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("owner alert skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send owner alert",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

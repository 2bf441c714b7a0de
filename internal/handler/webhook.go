package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = 64 << 10
)

// StripeWebhook needs the raw body: the signature covers the exact bytes.
func (h *Handler) StripeWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.Fail("cannot read request body"))
		return
	}

	err = h.webhookService.HandleProviderEvent(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		c.Set("error", err.Error())
	}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, ginext.H{"received": true})

	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, dto.Fail("webhook signature verification failed"))

	case errors.Is(err, domain.ErrMalformedEvent):
		// повторная доставка не поможет
		c.JSON(http.StatusBadRequest, ginext.H{"received": true, "error": err.Error()})

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrBookingCancelled):
		c.JSON(http.StatusOK, ginext.H{"received": true})

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("webhook processing failed"))
	}
}

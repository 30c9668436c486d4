package services

import (
	"context"
	"fmt"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

// HistoryService is the read-only panel over the device-scoped last completed
// booking and its invoice link.
type HistoryService struct {
	device ports.DeviceStore
	rail   ports.RailService
}

func NewHistoryService(device ports.DeviceStore, rail ports.RailService) *HistoryService {
	return &HistoryService{device: device, rail: rail}
}

func (h *HistoryService) LastBooking(ctx context.Context) (*domain.CompletedBooking, error) {
	booking, err := h.device.LastBooking(ctx)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNoBooking
	}
	return booking, nil
}

// MenuLabel is the sidebar entry text, refreshed whenever the panel opens.
func (h *HistoryService) MenuLabel(ctx context.Context) string {
	booking, err := h.device.LastBooking(ctx)
	if err != nil || booking == nil {
		return "No previous booking"
	}
	return fmt.Sprintf("%s → %s | %s", booking.FromCity, booking.ToCity, booking.TrainName)
}

// InvoiceURL builds the invoice link for the stored booking id. An absent id,
// or the literal "undefined" a broken write once left behind, refuses rather
// than producing an invalid link.
func (h *HistoryService) InvoiceURL(ctx context.Context) (string, error) {
	id, err := h.device.LastBookingID(ctx)
	if err != nil {
		return "", err
	}
	if id == "" || id == "undefined" {
		return "", ErrNoBooking
	}
	return h.rail.InvoiceURL(id), nil
}

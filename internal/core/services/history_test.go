package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports/mocks"
	"github.com/anbuvel/railbook/internal/core/services"
)

func lastBookingFixture() *domain.CompletedBooking {
	return &domain.CompletedBooking{
		BookingID:   "B123",
		TrainNo:     "12605",
		TrainName:   "Pallavan Express",
		FromCity:    "Chennai",
		ToCity:      "Trichy",
		TicketType:  domain.TicketAC,
		NumSeats:    3,
		TotalAmount: 1500,
	}
}

func TestLastBooking_None(t *testing.T) {
	device := mocks.NewDeviceStore(t)
	rail := mocks.NewRailService(t)
	history := services.NewHistoryService(device, rail)
	ctx := context.Background()

	device.On("LastBooking", ctx).Return(nil, nil)

	_, err := history.LastBooking(ctx)
	assert.ErrorIs(t, err, services.ErrNoBooking)
}

func TestLastBooking_Found(t *testing.T) {
	device := mocks.NewDeviceStore(t)
	rail := mocks.NewRailService(t)
	history := services.NewHistoryService(device, rail)
	ctx := context.Background()

	device.On("LastBooking", ctx).Return(lastBookingFixture(), nil)

	booking, err := history.LastBooking(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "B123", booking.BookingID)
}

func TestMenuLabel(t *testing.T) {
	device := mocks.NewDeviceStore(t)
	rail := mocks.NewRailService(t)
	history := services.NewHistoryService(device, rail)
	ctx := context.Background()

	device.On("LastBooking", ctx).Return(nil, nil).Once()
	assert.Equal(t, "No previous booking", history.MenuLabel(ctx))

	device.On("LastBooking", ctx).Return(lastBookingFixture(), nil).Once()
	assert.Equal(t, "Chennai → Trichy | Pallavan Express", history.MenuLabel(ctx))
}

func TestInvoiceURL_RefusesWithoutBookingID(t *testing.T) {
	device := mocks.NewDeviceStore(t)
	rail := mocks.NewRailService(t)
	history := services.NewHistoryService(device, rail)
	ctx := context.Background()

	device.On("LastBookingID", ctx).Return("", nil).Once()
	_, err := history.InvoiceURL(ctx)
	assert.ErrorIs(t, err, services.ErrNoBooking)

	// A stringified undefined left by a broken writer is also a refusal.
	device.On("LastBookingID", ctx).Return("undefined", nil).Once()
	_, err = history.InvoiceURL(ctx)
	assert.ErrorIs(t, err, services.ErrNoBooking)
}

func TestInvoiceURL_BuildsLinkFromStoredID(t *testing.T) {
	device := mocks.NewDeviceStore(t)
	rail := mocks.NewRailService(t)
	history := services.NewHistoryService(device, rail)
	ctx := context.Background()

	device.On("LastBookingID", ctx).Return("B123", nil)
	rail.On("InvoiceURL", "B123").Return("http://127.0.0.1:8000/invoice/B123")

	link, err := history.InvoiceURL(ctx)
	assert.NoError(t, err)
	assert.Contains(t, link, "B123")
}

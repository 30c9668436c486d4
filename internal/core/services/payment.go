package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

// DefaultPaymentDelay is the simulated settlement wait before the booking is
// submitted. It stands in for a real authorization round-trip.
const DefaultPaymentDelay = 2800 * time.Millisecond

type PaymentRequest struct {
	Method     domain.PaymentMethod
	UPIID      string
	Bank       string
	TravelDate string
}

// PaymentProcessor models the two-phase payment: synchronous method
// validation, a cancellable settlement delay, then submission to the rail
// service. It is the sole writer of the last-completed-booking slot.
type PaymentProcessor struct {
	session *Session
	nav     *Navigator
	drafts  ports.DraftStore
	device  ports.DeviceStore
	rail    ports.RailService

	delay time.Duration
	now   func() time.Time

	mu         sync.Mutex
	processing bool
}

func NewPaymentProcessor(session *Session, nav *Navigator, drafts ports.DraftStore, device ports.DeviceStore, rail ports.RailService, delay time.Duration) *PaymentProcessor {
	return &PaymentProcessor{
		session: session,
		nav:     nav,
		drafts:  drafts,
		device:  device,
		rail:    rail,
		delay:   delay,
		now:     time.Now,
	}
}

// Processing reports whether a payment is in flight. While true the payment
// form is disabled and no other wizard transition may run.
func (p *PaymentProcessor) Processing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processing
}

func (p *PaymentProcessor) setProcessing(v bool) {
	p.mu.Lock()
	p.processing = v
	p.mu.Unlock()
}

// Pay runs the full payment. Validation errors return before any processing
// state is shown. Whatever branch settlement takes, the processing indicator
// is cleared and the session released before Pay returns.
func (p *PaymentProcessor) Pay(ctx context.Context, req PaymentRequest) error {
	switch req.Method {
	case domain.PaymentUPI:
		if strings.TrimSpace(req.UPIID) == "" {
			return validationErr("upi_id", "Please enter your UPI ID.")
		}
	case domain.PaymentNetbanking:
		if req.Bank == "" {
			return validationErr("bank", "Please select a bank.")
		}
	default:
		return validationErr("method", "Please select a payment method")
	}

	if !p.session.TryAcquire() {
		return ErrBusy
	}
	p.setProcessing(true)
	defer func() {
		p.setProcessing(false)
		p.session.Release()
	}()

	// Settlement stage one: the simulated wait. Cancelling the context stops
	// the timer without submitting anything.
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return p.settle(ctx, req)
}

// settle re-validates the draft after the wait, submits the booking and
// reconciles the outcome into navigation and storage.
func (p *PaymentProcessor) settle(ctx context.Context, req PaymentRequest) error {
	draft, err := p.drafts.Draft(ctx)
	if err != nil {
		return err
	}
	if !draft.HasTrain() {
		// The session expired during the wait. Repair from the search view.
		p.nav.Activate(ctx, domain.ViewBooking)
		return ErrSessionExpired
	}

	train := draft.SelectedTrain
	sub := ports.BookingSubmission{
		UserID:        p.session.UserID,
		TrainNo:       train.TrainNo,
		FromCity:      train.FromCity,
		ToCity:        train.ToCity,
		BookedDate:    p.now().Format("2006-01-02"),
		TravelDate:    req.TravelDate,
		TotalSeats:    draft.NumSeats,
		TotalPrice:    draft.TotalAmount,
		PaymentMethod: string(req.Method),
	}

	bookingID, err := p.rail.SubmitBooking(ctx, sub)
	if err == nil && bookingID == "" {
		err = errors.New("booking id missing in response")
	}
	if err != nil {
		// Back to seats, not payment: the failure may stem from a stale
		// total, so the seat count needs re-confirming but the payment
		// details do not.
		log.Printf("Booking submission failed: %v", err)
		p.nav.Activate(ctx, domain.ViewSeats)
		return fmt.Errorf("booking failed: %w", err)
	}

	if err := p.device.SetLastBookingID(ctx, bookingID); err != nil {
		log.Printf("Failed to persist booking id %s: %v", bookingID, err)
	}
	snapshot := &domain.CompletedBooking{
		BookingID:     bookingID,
		TrainNo:       train.TrainNo,
		TrainName:     train.TrainName,
		FromCity:      draft.FromCity,
		ToCity:        draft.ToCity,
		TicketType:    draft.TicketType,
		NumSeats:      draft.NumSeats,
		TotalAmount:   draft.TotalAmount,
		PaymentMethod: req.Method,
		TravelDate:    req.TravelDate,
		BookedDate:    sub.BookedDate,
	}
	if err := p.device.SetLastBooking(ctx, snapshot); err != nil {
		log.Printf("Failed to persist last booking: %v", err)
	}

	if err := p.drafts.ClearDraft(ctx); err != nil {
		log.Printf("Failed to clear draft after booking %s: %v", bookingID, err)
	}

	log.Printf("Booking %s saved", bookingID)
	p.nav.Activate(ctx, domain.ViewSuccess)
	return nil
}

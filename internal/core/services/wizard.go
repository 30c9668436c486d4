package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

// TrainSelection is the summary rendered after a train and coach are chosen.
type TrainSelection struct {
	Summary    string
	CoachLabel string
}

// SeatSummary is re-derived from the live draft every time the seats view is
// entered, whether forward from the train list or backward from payment.
type SeatSummary struct {
	TrainName    string
	TrainNo      string
	Route        string
	CoachLabel   string
	PricePerSeat int
	Total        int
}

// PaymentPrompt carries both the human-readable amount label and the
// machine-readable amount for the payment form.
type PaymentPrompt struct {
	AmountLabel string
	Amount      int
}

type RouteChip struct {
	From string
	To   string
}

// Wizard sequences city search, train/class selection and seat pricing,
// validating preconditions at each step and writing to the draft store.
type Wizard struct {
	session *Session
	nav     *Navigator
	drafts  ports.DraftStore
	rail    ports.RailService

	// current search result set, never persisted
	results []domain.Train
	summary *SeatSummary
}

func NewWizard(session *Session, nav *Navigator, drafts ports.DraftStore, rail ports.RailService) *Wizard {
	w := &Wizard{session: session, nav: nav, drafts: drafts, rail: rail}
	nav.OnEnter(w.onViewEnter)
	return w
}

// onViewEnter guards the views past train selection and refreshes the seat
// summary. A cleared draft behind a still-active seats or payment view
// redirects to the train list instead of rendering undefined data.
func (w *Wizard) onViewEnter(ctx context.Context, view domain.View) {
	if view != domain.ViewSeats && view != domain.ViewPayment {
		return
	}
	draft, _ := w.drafts.Draft(ctx)
	if !draft.HasTrain() {
		w.nav.Activate(ctx, domain.ViewTrainList)
		return
	}
	if view == domain.ViewSeats {
		w.summary = buildSeatSummary(draft)
	}
}

func buildSeatSummary(draft *domain.BookingDraft) *SeatSummary {
	train := draft.SelectedTrain
	seats := draft.NumSeats
	if seats < 1 {
		seats = 1
	}
	return &SeatSummary{
		TrainName:    train.TrainName,
		TrainNo:      train.TrainNo,
		Route:        fmt.Sprintf("%s → %s", train.FromCity, train.ToCity),
		CoachLabel:   draft.TicketType.CoachLabel(),
		PricePerSeat: draft.PricePerSeat,
		Total:        draft.PricePerSeat * seats,
	}
}

// LoadCities fetches the selector contents. On failure the caller renders
// placeholder-only selectors and surfaces the error.
func (w *Wizard) LoadCities(ctx context.Context) ([]string, error) {
	cities, err := w.rail.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}
	return cities, nil
}

// Search validates the city pair, queries the rail service and advances to
// the train list. Validation or query failure keeps the current view; no
// request is issued for an invalid pair.
func (w *Wizard) Search(ctx context.Context, fromCity, toCity string) ([]domain.Train, error) {
	if w.session.Busy() {
		return nil, ErrBusy
	}
	fromCity = strings.TrimSpace(fromCity)
	toCity = strings.TrimSpace(toCity)
	if fromCity == "" || toCity == "" {
		return nil, validationErr("city", "Please choose both cities.")
	}
	if fromCity == toCity {
		return nil, validationErr("city", "From and To must be different")
	}

	trains, err := w.rail.SearchTrains(ctx, fromCity, toCity)
	if err != nil {
		return nil, fmt.Errorf("failed to load trains: %w", err)
	}

	// An empty result set is a valid outcome: the train list renders an
	// explicit "no trains" state.
	w.results = trains
	w.nav.Activate(ctx, domain.ViewTrainList)
	return trains, nil
}

// Results is the train list of the most recent successful search.
func (w *Wizard) Results() []domain.Train {
	return w.results
}

// SelectTrain prices the chosen coach, overwrites the draft and advances to
// the seats view.
func (w *Wizard) SelectTrain(ctx context.Context, train domain.Train, ticketType domain.TicketType) (*TrainSelection, error) {
	if w.session.Busy() {
		return nil, ErrBusy
	}

	draft := &domain.BookingDraft{
		SelectedTrain: &train,
		TicketType:    ticketType,
		PricePerSeat:  train.PriceFor(ticketType),
		FromCity:      train.FromCity,
		ToCity:        train.ToCity,
	}
	if err := w.drafts.SetDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save booking draft: %w", err)
	}

	selection := &TrainSelection{
		Summary:    fmt.Sprintf("%s (%s) %s → %s", train.TrainName, train.TrainNo, train.FromCity, train.ToCity),
		CoachLabel: ticketType.CoachLabel(),
	}
	w.nav.Activate(ctx, domain.ViewSeats)
	return selection, nil
}

// SeatCount coerces raw seat input to a positive count. Empty, zero, negative
// and unparseable input all coerce to 1, never to an error.
func SeatCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// SeatTotal is the running total recomputed on every input change.
func (w *Wizard) SeatTotal(ctx context.Context, raw string) int {
	draft, _ := w.drafts.Draft(ctx)
	if draft == nil {
		return 0
	}
	return draft.PricePerSeat * SeatCount(raw)
}

// SeatSummary is the summary shown on the seats view, as of its last entry.
func (w *Wizard) SeatSummary() *SeatSummary {
	return w.summary
}

// ConfirmSeats writes the seat count and total into the draft and advances to
// payment. A draft without a selected train redirects to the train list.
func (w *Wizard) ConfirmSeats(ctx context.Context, raw string) (*PaymentPrompt, error) {
	if w.session.Busy() {
		return nil, ErrBusy
	}

	draft, err := w.drafts.Draft(ctx)
	if err != nil {
		return nil, err
	}
	if !draft.HasTrain() {
		w.nav.Activate(ctx, domain.ViewTrainList)
		return nil, ErrSessionExpired
	}

	seats := SeatCount(raw)
	draft.NumSeats = seats
	draft.TotalAmount = draft.PricePerSeat * seats
	if err := w.drafts.SetDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save booking draft: %w", err)
	}

	prompt := &PaymentPrompt{
		AmountLabel: fmt.Sprintf("Amount to pay: ₹%d", draft.TotalAmount),
		Amount:      draft.TotalAmount,
	}
	w.nav.Activate(ctx, domain.ViewPayment)
	return prompt, nil
}

// Restart clears the draft and returns to the search view ("book again").
func (w *Wizard) Restart(ctx context.Context) error {
	if w.session.Busy() {
		return ErrBusy
	}
	if err := w.drafts.ClearDraft(ctx); err != nil {
		return err
	}
	w.nav.Activate(ctx, domain.ViewBooking)
	return nil
}

// PopularRoutes are the preset chips that pre-fill the search form.
func PopularRoutes() []RouteChip {
	return []RouteChip{
		{From: "Chennai", To: "Madurai"},
		{From: "Chennai", To: "Coimbatore"},
		{From: "Chennai", To: "Trichy"},
	}
}

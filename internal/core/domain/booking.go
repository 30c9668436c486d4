package domain

type TicketType string

const (
	TicketAC    TicketType = "AC"
	TicketNonAC TicketType = "NON_AC"
)

func (t TicketType) CoachLabel() string {
	if t == TicketAC {
		return "AC Coach"
	}
	return "Non-AC Coach"
}

type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "UPI"
	PaymentNetbanking PaymentMethod = "NETBANKING"
)

// BookingDraft is the in-progress booking for the current session. Exactly one
// draft exists at a time; selecting a train overwrites it, a successful
// submission clears it.
type BookingDraft struct {
	SelectedTrain *Train     `json:"selectedTrain"`
	TicketType    TicketType `json:"ticketType"`
	PricePerSeat  int        `json:"pricePerSeat"`
	FromCity      string     `json:"from_city"`
	ToCity        string     `json:"to_city"`
	NumSeats      int        `json:"numSeats,omitempty"`
	TotalAmount   int        `json:"totalAmount,omitempty"`
}

// HasTrain reports whether the draft is far enough along for the seat and
// payment views. Views past train selection must never render without this.
func (d *BookingDraft) HasTrain() bool {
	return d != nil && d.SelectedTrain != nil
}

// CompletedBooking is the immutable snapshot taken at successful submission.
// One is retained per device, overwritten on each new success.
type CompletedBooking struct {
	BookingID     string        `json:"booking_id"`
	TrainNo       string        `json:"train_no"`
	TrainName     string        `json:"train_name"`
	FromCity      string        `json:"from_city"`
	ToCity        string        `json:"to_city"`
	TicketType    TicketType    `json:"ticketType"`
	NumSeats      int           `json:"numSeats"`
	TotalAmount   int           `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TravelDate    string        `json:"travel_date"`
	BookedDate    string        `json:"booked_date"`
}

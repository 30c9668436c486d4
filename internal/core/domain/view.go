package domain

// View is one of the fixed, mutually exclusive screens of the booking flow.
type View string

const (
	ViewSplash    View = "splash"
	ViewLanding   View = "landing"
	ViewRegister  View = "register"
	ViewBooking   View = "booking"
	ViewTrainList View = "trainList"
	ViewSeats     View = "seats"
	ViewPayment   View = "payment"
	ViewSuccess   View = "success"
)

var knownViews = map[View]bool{
	ViewSplash:    true,
	ViewLanding:   true,
	ViewRegister:  true,
	ViewBooking:   true,
	ViewTrainList: true,
	ViewSeats:     true,
	ViewPayment:   true,
	ViewSuccess:   true,
}

func (v View) Known() bool {
	return knownViews[v]
}

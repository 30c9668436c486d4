package ports

import (
	"context"
	"errors"

	"github.com/anbuvel/railbook/internal/core/domain"
)

// DraftStore is the session-scoped slot for the in-progress booking. Reads are
// defensive: a missing or corrupted draft comes back as (nil, nil), never as a
// parse error.
type DraftStore interface {
	Draft(ctx context.Context) (*domain.BookingDraft, error)
	SetDraft(ctx context.Context, draft *domain.BookingDraft) error
	ClearDraft(ctx context.Context) error
}

// DeviceStore persists state that outlives the session: the append-only
// account list and the single last-completed-booking slot. The same degrade
// rule applies, corrupted blobs read as empty.
type DeviceStore interface {
	Accounts(ctx context.Context) ([]domain.UserAccount, error)
	AppendAccount(ctx context.Context, account domain.UserAccount) error
	LastBooking(ctx context.Context) (*domain.CompletedBooking, error)
	SetLastBooking(ctx context.Context, booking *domain.CompletedBooking) error
	LastBookingID(ctx context.Context) (string, error)
	SetLastBookingID(ctx context.Context, id string) error
}

// ErrAccountRejected means the rail service answered the registration request
// but did not create the account (for example a duplicate email).
var ErrAccountRejected = errors.New("account rejected by rail service")

type LoginResult struct {
	AccessToken string
	TokenType   string
	UserID      int64
	UserName    string
}

// BookingSubmission is the payload of POST /bookings. Dates are wire-formatted
// as YYYY-MM-DD strings.
type BookingSubmission struct {
	UserID        int64  `json:"user_id"`
	TrainNo       string `json:"train_no"`
	FromCity      string `json:"from_city"`
	ToCity        string `json:"to_city"`
	BookedDate    string `json:"booked_date"`
	TravelDate    string `json:"travel_date"`
	TotalSeats    int    `json:"total_seats"`
	TotalPrice    int    `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
}

// RailService is the remote booking service, consumed as an opaque
// request/response contract.
type RailService interface {
	Cities(ctx context.Context) ([]string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CreateAccount(ctx context.Context, account domain.UserAccount) error
	SearchTrains(ctx context.Context, fromCity, toCity string) ([]domain.Train, error)
	SubmitBooking(ctx context.Context, sub BookingSubmission) (string, error)
	InvoiceURL(bookingID string) string
}

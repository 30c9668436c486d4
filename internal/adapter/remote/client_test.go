package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anbuvel/railbook/internal/adapter/remote"
	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

func TestCities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cities", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"Chennai", "Madurai", "Trichy"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	cities, err := client.Cities(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Madurai", "Trichy"}, cities)
}

func TestCities_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	_, err := client.Cities(context.Background())

	assert.ErrorContains(t, err, "status 500")
}

func TestLogin_MapsUserAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "anbu@example.com", req["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "bearer",
			"user":         map[string]any{"id": 7, "name": "Anbu", "email": "anbu@example.com"},
		})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	result, err := client.Login(context.Background(), "anbu@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "tok", result.AccessToken)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, "Anbu", result.UserName)
}

func TestLogin_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	_, err := client.Login(context.Background(), "anbu@example.com", "wrong")

	assert.ErrorContains(t, err, "status 401")
}

func TestCreateAccount_SuccessNeedsMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create_ac", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	err := client.CreateAccount(context.Background(), domain.UserAccount{Name: "Anbu"})

	assert.NoError(t, err)
}

func TestCreateAccount_DuplicateEmailRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	err := client.CreateAccount(context.Background(), domain.UserAccount{Name: "Anbu"})

	assert.ErrorIs(t, err, ports.ErrAccountRejected)
	assert.ErrorContains(t, err, "Email already registered")
}

func TestCreateAccount_TwoHundredWithoutMessageRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	err := client.CreateAccount(context.Background(), domain.UserAccount{Name: "Anbu"})

	assert.ErrorIs(t, err, ports.ErrAccountRejected)
}

func TestSearchTrains_ForwardsQueryAndDecodesWireNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trains", r.URL.Path)
		assert.Equal(t, "Chennai", r.URL.Query().Get("from_city"))
		assert.Equal(t, "Trichy", r.URL.Query().Get("to_city"))

		json.NewEncoder(w).Encode([]map[string]any{{
			"id":            1,
			"train_no":      "12605",
			"train_name":    "Pallavan Express",
			"from_":         "Chennai",
			"to_":           "Trichy",
			"no_of_seats":   120,
			"ac_price":      500,
			"non_ac_price":  220,
			"departuretime": "07:15",
			"image_url":     "",
		}})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	trains, err := client.SearchTrains(context.Background(), "Chennai", "Trichy")

	assert.NoError(t, err)
	if assert.Len(t, trains, 1) {
		assert.Equal(t, "12605", trains[0].TrainNo)
		assert.Equal(t, "Chennai", trains[0].FromCity)
		assert.Equal(t, "Trichy", trains[0].ToCity)
		assert.Equal(t, 500, trains[0].ACPrice)
		assert.Equal(t, "07:15", trains[0].DepartureTime)
	}
}

func TestSearchTrains_EmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	trains, err := client.SearchTrains(context.Background(), "Chennai", "Salem")

	assert.NoError(t, err)
	assert.Empty(t, trains)
}

func TestSubmitBooking_NumericIDStringified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)

		var sub ports.BookingSubmission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "12605", sub.TrainNo)
		assert.Equal(t, 1500, sub.TotalPrice)

		json.NewEncoder(w).Encode(map[string]any{"booking_id": 41, "message": "Booking & payment saved"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	id, err := client.SubmitBooking(context.Background(), ports.BookingSubmission{TrainNo: "12605", TotalPrice: 1500})

	assert.NoError(t, err)
	assert.Equal(t, "41", id)
}

func TestSubmitBooking_StringIDAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"booking_id": "B123"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	id, err := client.SubmitBooking(context.Background(), ports.BookingSubmission{})

	assert.NoError(t, err)
	assert.Equal(t, "B123", id)
}

func TestSubmitBooking_MissingIDIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "saved"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	_, err := client.SubmitBooking(context.Background(), ports.BookingSubmission{})

	assert.ErrorContains(t, err, "booking id missing")
}

func TestSubmitBooking_NonTwoHundredIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "db unavailable"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	_, err := client.SubmitBooking(context.Background(), ports.BookingSubmission{})

	assert.ErrorContains(t, err, "status 500")
}

func TestInvoiceURL(t *testing.T) {
	client := remote.NewClient("http://127.0.0.1:8000/")

	assert.Equal(t, "http://127.0.0.1:8000/invoice/B123", client.InvoiceURL("B123"))
}

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

// Client is the HTTP adapter for the rail booking service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	if err := c.getJSON(ctx, "/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := c.postJSON(ctx, "/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		UserID:      resp.User.ID,
		UserName:    resp.User.Name,
	}, nil
}

// CreateAccount posts the registration. The service signals success by the
// presence of a message field in the body; anything else, including a 2xx
// without it, is a rejection.
func (c *Client) CreateAccount(ctx context.Context, account domain.UserAccount) error {
	body, err := json.Marshal(account)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create_ac", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Message == "" {
		if out.Detail != "" {
			return fmt.Errorf("%w: %s", ports.ErrAccountRejected, out.Detail)
		}
		return fmt.Errorf("%w: status %d", ports.ErrAccountRejected, resp.StatusCode)
	}
	return nil
}

func (c *Client) SearchTrains(ctx context.Context, fromCity, toCity string) ([]domain.Train, error) {
	query := url.Values{}
	query.Set("from_city", fromCity)
	query.Set("to_city", toCity)

	var trains []domain.Train
	if err := c.getJSON(ctx, "/trains", query, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// SubmitBooking posts the finished booking and returns the assigned booking
// id. The service returns the id as a number; a string is accepted too.
func (c *Client) SubmitBooking(ctx context.Context, sub ports.BookingSubmission) (string, error) {
	var resp struct {
		BookingID any    `json:"booking_id"`
		Message   string `json:"message"`
	}
	if err := c.postJSON(ctx, "/bookings", sub, &resp); err != nil {
		return "", err
	}

	id := stringifyID(resp.BookingID)
	if id == "" || id == "undefined" {
		return "", fmt.Errorf("booking id missing in response")
	}
	return id, nil
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// InvoiceURL is opened as a direct download target, never parsed here.
func (c *Client) InvoiceURL(bookingID string) string {
	return c.baseURL + "/invoice/" + url.PathEscape(bookingID)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: malformed response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

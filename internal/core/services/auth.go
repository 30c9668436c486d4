package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
)

// DefaultTabSwitchDelay is the pause between a successful registration and
// the switch to the login tab.
const DefaultTabSwitchDelay = 2 * time.Second

// AuthService handles login, account creation and the city-list bootstrap of
// the landing flow.
type AuthService struct {
	session *Session
	nav     *Navigator
	device  ports.DeviceStore
	rail    ports.RailService

	tabSwitchDelay time.Duration
}

func NewAuthService(session *Session, nav *Navigator, device ports.DeviceStore, rail ports.RailService, tabSwitchDelay time.Duration) *AuthService {
	return &AuthService{
		session:        session,
		nav:            nav,
		device:         device,
		rail:           rail,
		tabSwitchDelay: tabSwitchDelay,
	}
}

// Login authenticates against the rail service and advances to the booking
// view. Any failure surfaces as the same generic message; no detail leaks.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	result, err := a.rail.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login failed for %s: %v", email, err)
		return ErrInvalidCredentials
	}

	a.session.Token = result.AccessToken
	a.session.UserID = resolveUserID(result)
	a.nav.Activate(ctx, domain.ViewBooking)
	return nil
}

// resolveUserID prefers the user object of the login response, then the JWT
// subject claim, then the service's default user.
func resolveUserID(result *ports.LoginResult) int64 {
	if result.UserID > 0 {
		return result.UserID
	}
	if result.AccessToken != "" {
		var claims jwt.RegisteredClaims
		if _, _, err := jwt.NewParser().ParseUnverified(result.AccessToken, &claims); err == nil {
			if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil && id > 0 {
				return id
			}
		}
	}
	return 1
}

// Register creates an account. On success the account is appended to the
// device-scoped list and, after a short fixed delay, the landing view opens on
// the login tab.
func (a *AuthService) Register(ctx context.Context, account domain.UserAccount) error {
	account.Name = strings.TrimSpace(account.Name)
	account.Phone = strings.TrimSpace(account.Phone)
	account.Email = strings.TrimSpace(account.Email)
	if account.Name == "" || account.Phone == "" || account.Email == "" || account.Password == "" {
		return validationErr("form", "Please fill all fields.")
	}

	if err := a.rail.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, ports.ErrAccountRejected) {
			return errors.New("account creation failed")
		}
		return fmt.Errorf("server error: %w", err)
	}

	if err := a.device.AppendAccount(ctx, account); err != nil {
		log.Printf("Failed to store account for %s: %v", account.Email, err)
	}

	timer := time.NewTimer(a.tabSwitchDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
	}
	a.nav.SetAuthTab(TabLogin)
	a.nav.Activate(ctx, domain.ViewLanding)
	return nil
}

// Logout closes the sidebar and returns to the landing view.
func (a *AuthService) Logout(ctx context.Context) {
	a.nav.CloseSidebar()
	a.nav.Activate(ctx, domain.ViewLanding)
}

package services

import (
	"context"

	"github.com/anbuvel/railbook/internal/core/domain"
)

type AuthTab string

const (
	TabLogin  AuthTab = "login"
	TabCreate AuthTab = "create"
)

// Chrome is the global controls whose visibility is a pure function of the
// active view.
type Chrome struct {
	BackVisible      bool
	HamburgerVisible bool
	SidebarOpen      bool
}

// EntryHook runs after a view becomes active. Hooks that redirect stop the
// remaining hooks for the superseded view.
type EntryHook func(ctx context.Context, view domain.View)

// backTargets is deliberately not a history stack: Success goes back to
// Booking, not Payment, so a completed transaction cannot be re-entered.
var backTargets = map[domain.View]domain.View{
	domain.ViewRegister:  domain.ViewSplash,
	domain.ViewLanding:   domain.ViewSplash,
	domain.ViewTrainList: domain.ViewBooking,
	domain.ViewSeats:     domain.ViewTrainList,
	domain.ViewPayment:   domain.ViewSeats,
	domain.ViewSuccess:   domain.ViewBooking,
}

// Back button: only from the train list onward.
var backVisible = map[domain.View]bool{
	domain.ViewTrainList: true,
	domain.ViewSeats:     true,
	domain.ViewPayment:   true,
	domain.ViewSuccess:   true,
}

// Hamburger: only after login.
var hamburgerVisible = map[domain.View]bool{
	domain.ViewBooking:   true,
	domain.ViewTrainList: true,
	domain.ViewSeats:     true,
	domain.ViewPayment:   true,
	domain.ViewSuccess:   true,
}

// Navigator owns the single active view and its chrome. It is a pure state
// machine over the view enum; it touches no network and no storage.
type Navigator struct {
	active  domain.View
	chrome  Chrome
	authTab AuthTab
	hooks   []EntryHook
}

func NewNavigator() *Navigator {
	n := &Navigator{active: domain.ViewSplash, authTab: TabLogin}
	n.refreshChrome()
	return n
}

// OnEnter registers a view-entry hook. Hooks run on every activation, in
// registration order.
func (n *Navigator) OnEnter(hook EntryHook) {
	n.hooks = append(n.hooks, hook)
}

// Activate deactivates every other view, activates the given one and
// recomputes the chrome. An unrecognized view falls back to Splash.
func (n *Navigator) Activate(ctx context.Context, view domain.View) {
	if !view.Known() {
		view = domain.ViewSplash
	}
	n.active = view
	n.refreshChrome()
	for _, hook := range n.hooks {
		hook(ctx, view)
		if n.active != view {
			return
		}
	}
}

// Back activates the fixed back target of the active view.
func (n *Navigator) Back(ctx context.Context) {
	n.Activate(ctx, BackTarget(n.active))
}

// BackTarget is total: any view without an explicit mapping goes to Splash.
func BackTarget(view domain.View) domain.View {
	if target, ok := backTargets[view]; ok {
		return target
	}
	return domain.ViewSplash
}

func (n *Navigator) refreshChrome() {
	n.chrome.BackVisible = backVisible[n.active]
	n.chrome.HamburgerVisible = hamburgerVisible[n.active]
	if !n.chrome.HamburgerVisible {
		// Hiding the hamburger closes any open side panel with it.
		n.chrome.SidebarOpen = false
	}
}

func (n *Navigator) Active() domain.View {
	return n.active
}

func (n *Navigator) Chrome() Chrome {
	return n.chrome
}

func (n *Navigator) OpenSidebar() bool {
	if !n.chrome.HamburgerVisible {
		return false
	}
	n.chrome.SidebarOpen = true
	return true
}

func (n *Navigator) CloseSidebar() {
	n.chrome.SidebarOpen = false
}

func (n *Navigator) SetAuthTab(tab AuthTab) {
	n.authTab = tab
}

func (n *Navigator) AuthTab() AuthTab {
	return n.authTab
}

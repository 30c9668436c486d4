package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/anbuvel/railbook/internal/adapter/remote"
	"github.com/anbuvel/railbook/internal/adapter/storage"
	"github.com/anbuvel/railbook/internal/core/domain"
	"github.com/anbuvel/railbook/internal/core/ports"
	"github.com/anbuvel/railbook/internal/core/services"
	"github.com/anbuvel/railbook/internal/platform/database"
)

func loadEnv(filepath string) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Println("No .env file found, using OS environment.")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v\n", err)
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func newDeviceStore(ctx context.Context) (ports.DeviceStore, func()) {
	if getenv("DEVICE_STORE", "redis") == "postgres" {
		cfg := database.Config{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getenv("DB_NAME", "railbook"),
		}
		db, err := database.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}
		store := storage.NewSQLDeviceStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare device_state table: %v", err)
		}
		return store, func() { db.Close() }
	}

	addr := fmt.Sprintf("%s:%s", getenv("REDIS_HOST", "localhost"), getenv("REDIS_PORT", "6379"))
	log.Printf("Connecting to Redis at %s...", addr)

	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")
	return storage.NewRedisDeviceStore(rdb), func() { rdb.Close() }
}

func paymentDelay() time.Duration {
	raw := os.Getenv("PAYMENT_DELAY_MS")
	if raw == "" {
		return services.DefaultPaymentDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return services.DefaultPaymentDelay
	}
	return time.Duration(ms) * time.Millisecond
}

type app struct {
	session   *services.Session
	nav       *services.Navigator
	wizard    *services.Wizard
	auth      *services.AuthService
	processor *services.PaymentProcessor
	history   *services.HistoryService

	in *bufio.Scanner
}

func main() {
	loadEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rail := remote.NewClient(getenv("RAIL_API_BASE", "http://127.0.0.1:8000"))
	device, closeDevice := newDeviceStore(ctx)
	defer closeDevice()

	session := services.NewSession()
	nav := services.NewNavigator()
	drafts := storage.NewSessionStore()

	a := &app{
		session:   session,
		nav:       nav,
		wizard:    services.NewWizard(session, nav, drafts, rail),
		auth:      services.NewAuthService(session, nav, device, rail, services.DefaultTabSwitchDelay),
		processor: services.NewPaymentProcessor(session, nav, drafts, device, rail, paymentDelay()),
		history:   services.NewHistoryService(device, rail),
		in:        bufio.NewScanner(os.Stdin),
	}

	log.Printf("Session %s started", session.ID)
	a.run(ctx)
	log.Println("Session ended.")
}

func (a *app) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if !a.step(ctx) {
			return
		}
	}
}

// step renders the active view, reads one round of input and feeds it to the
// services. Returns false on quit or closed input.
func (a *app) step(ctx context.Context) bool {
	chrome := a.nav.Chrome()
	fmt.Printf("\n[%s]", a.nav.Active())
	if chrome.BackVisible {
		fmt.Print("  (b = back)")
	}
	if chrome.HamburgerVisible {
		fmt.Print("  (m = menu)")
	}
	fmt.Println("  (q = quit)")

	switch a.nav.Active() {
	case domain.ViewSplash:
		return a.splash(ctx)
	case domain.ViewLanding:
		return a.landing(ctx)
	case domain.ViewRegister:
		return a.register(ctx)
	case domain.ViewBooking:
		return a.booking(ctx)
	case domain.ViewTrainList:
		return a.trainList(ctx)
	case domain.ViewSeats:
		return a.seats(ctx)
	case domain.ViewPayment:
		return a.payment(ctx)
	case domain.ViewSuccess:
		return a.success(ctx)
	}
	return true
}

// chrome handles the inputs that exist on every view. The bool says whether
// the input was consumed.
func (a *app) chrome(ctx context.Context, input string) (bool, bool) {
	switch input {
	case "q":
		return true, false
	case "b":
		if a.nav.Chrome().BackVisible {
			a.nav.Back(ctx)
			return true, true
		}
	case "m":
		if a.nav.OpenSidebar() {
			a.sidebar(ctx)
			return true, true
		}
	}
	return false, true
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) splash(ctx context.Context) bool {
	input, ok := a.prompt("1) Login  2) Create account > ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, input); consumed || !cont {
		return cont
	}
	switch input {
	case "1":
		a.nav.SetAuthTab(services.TabLogin)
		a.nav.Activate(ctx, domain.ViewLanding)
	case "2":
		a.nav.Activate(ctx, domain.ViewRegister)
	}
	return true
}

func (a *app) landing(ctx context.Context) bool {
	if a.nav.AuthTab() == services.TabCreate {
		a.nav.Activate(ctx, domain.ViewRegister)
		return true
	}
	email, ok := a.prompt("Email (or q/b/m): ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, email); consumed || !cont {
		return cont
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		return false
	}
	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Println("Invalid email or password")
	}
	return true
}

func (a *app) register(ctx context.Context) bool {
	name, ok := a.prompt("Name: ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, name); consumed || !cont {
		return cont
	}
	phone, ok := a.prompt("Phone: ")
	if !ok {
		return false
	}
	email, ok := a.prompt("Email: ")
	if !ok {
		return false
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		return false
	}

	account := domain.UserAccount{Name: name, Phone: phone, Email: email, Password: password}
	if err := a.auth.Register(ctx, account); err != nil {
		fmt.Println(err)
		return true
	}
	fmt.Println("Your account was created successfully!")
	return true
}

func (a *app) booking(ctx context.Context) bool {
	cities, err := a.wizard.LoadCities(ctx)
	if err != nil {
		fmt.Println("Failed to load cities. Check backend.")
	} else {
		fmt.Printf("Cities: %s\n", strings.Join(cities, ", "))
	}
	for i, chip := range services.PopularRoutes() {
		fmt.Printf("  %d) %s → %s\n", i+1, chip.From, chip.To)
	}

	from, ok := a.prompt("From: ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, from); consumed || !cont {
		return cont
	}
	to, ok := a.prompt("To: ")
	if !ok {
		return false
	}

	// Route chip shortcut: a bare number on the From prompt.
	if n, err := strconv.Atoi(from); err == nil {
		chips := services.PopularRoutes()
		if n >= 1 && n <= len(chips) {
			from, to = chips[n-1].From, chips[n-1].To
		}
	}

	if _, err := a.wizard.Search(ctx, from, to); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Message)
		} else {
			fmt.Println("Failed to load trains")
		}
	}
	return true
}

func (a *app) trainList(ctx context.Context) bool {
	trains := a.wizard.Results()
	if len(trains) == 0 {
		fmt.Println("No trains found")
	}
	for i, t := range trains {
		fmt.Printf("%d) %s (%s)  %s → %s  dep %s  seats %d  AC ₹%d  Non-AC ₹%d\n",
			i+1, t.TrainName, t.TrainNo, t.FromCity, t.ToCity, t.DepartureTime,
			t.SeatsAvailable, t.ACPrice, t.NonACPrice)
	}

	input, ok := a.prompt("Train number + coach (e.g. \"1 ac\"): ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, input); consumed || !cont {
		return cont
	}

	fields := strings.Fields(input)
	if len(fields) != 2 {
		return true
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil || idx < 1 || idx > len(trains) {
		return true
	}
	ticketType := domain.TicketNonAC
	if strings.EqualFold(fields[1], "ac") {
		ticketType = domain.TicketAC
	}

	selection, err := a.wizard.SelectTrain(ctx, trains[idx-1], ticketType)
	if err != nil {
		fmt.Println(err)
		return true
	}
	fmt.Printf("%s — %s\n", selection.Summary, selection.CoachLabel)
	return true
}

func (a *app) seats(ctx context.Context) bool {
	if summary := a.wizard.SeatSummary(); summary != nil {
		fmt.Printf("%s (%s)  %s  %s  ₹%d per seat\n",
			summary.TrainName, summary.TrainNo, summary.Route, summary.CoachLabel, summary.PricePerSeat)
	}

	input, ok := a.prompt("Seats: ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, input); consumed || !cont {
		return cont
	}

	fmt.Printf("Total: ₹%d\n", a.wizard.SeatTotal(ctx, input))
	prompt, err := a.wizard.ConfirmSeats(ctx, input)
	if err != nil {
		fmt.Println(err)
		return true
	}
	fmt.Println(prompt.AmountLabel)
	return true
}

func (a *app) payment(ctx context.Context) bool {
	input, ok := a.prompt("Method (1 = UPI, 2 = Netbanking): ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, input); consumed || !cont {
		return cont
	}

	req := services.PaymentRequest{}
	switch input {
	case "1":
		req.Method = domain.PaymentUPI
		if req.UPIID, ok = a.prompt("UPI ID: "); !ok {
			return false
		}
	case "2":
		req.Method = domain.PaymentNetbanking
		if req.Bank, ok = a.prompt("Bank: "); !ok {
			return false
		}
	default:
		return true
	}
	if req.TravelDate, ok = a.prompt("Travel date (YYYY-MM-DD): "); !ok {
		return false
	}

	fmt.Println("Processing...")
	if err := a.processor.Pay(ctx, req); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Message)
		} else if errors.Is(err, services.ErrSessionExpired) {
			fmt.Println("Booking session expired. Please select train again.")
		} else {
			fmt.Println("Booking failed. Please confirm your seats and try again.")
		}
	}
	return true
}

func (a *app) success(ctx context.Context) bool {
	fmt.Println("Booking confirmed!")
	input, ok := a.prompt("1) Download invoice  2) Book again > ")
	if !ok {
		return false
	}
	if consumed, cont := a.chrome(ctx, input); consumed || !cont {
		return cont
	}
	switch input {
	case "1":
		link, err := a.history.InvoiceURL(ctx)
		if err != nil {
			fmt.Println("Booking not completed yet")
			return true
		}
		fmt.Printf("Invoice: %s\n", link)
	case "2":
		if err := a.wizard.Restart(ctx); err != nil {
			fmt.Println(err)
		}
	}
	return true
}

func (a *app) sidebar(ctx context.Context) {
	defer a.nav.CloseSidebar()
	fmt.Printf("Last booking: %s\n", a.history.MenuLabel(ctx))

	input, ok := a.prompt("1) History  2) Invoice  3) Logout  (enter = close) > ")
	if !ok {
		return
	}
	switch input {
	case "1":
		booking, err := a.history.LastBooking(ctx)
		if err != nil {
			fmt.Println("No previous booking found.")
			return
		}
		fmt.Printf("From: %s\nTo: %s\nTrain: %s\nSeats: %d\nAmount: ₹%d\n",
			booking.FromCity, booking.ToCity, booking.TrainName, booking.NumSeats, booking.TotalAmount)
	case "2":
		link, err := a.history.InvoiceURL(ctx)
		if err != nil {
			fmt.Println("Booking not completed yet")
			return
		}
		fmt.Printf("Invoice: %s\n", link)
	case "3":
		a.auth.Logout(ctx)
	}
}

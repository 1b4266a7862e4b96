// Terminal storefront: browse the menu, build an order with customizations,
// sign in, and check out against the café API. With no API configured it runs
// in demo mode on the built-in menu.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/storefront"
)

type kioskConfig struct {
	APIBaseURL string `envconfig:"API_BASE_URL" default:""`
	Verbose    bool   `envconfig:"KIOSK_VERBOSE" default:"false"`
}

type kiosk struct {
	catalog *storefront.Catalog
	cart    *storefront.Cart
	session *storefront.Session
	client  *storefront.Client
	out     *bufio.Writer
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	var cfg kioskConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	tokens, err := storefront.NewFileTokenStore()
	if err != nil {
		log.Fatal("Failed to locate token store:", err)
	}

	client := storefront.NewClient(cfg.APIBaseURL, tokens)
	catalog := storefront.NewCatalog(client, logger)
	session := storefront.NewSession(client, tokens, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go catalog.Run(ctx)
	session.Restore(ctx)

	k := &kiosk{
		catalog: catalog,
		cart:    storefront.NewCart(),
		session: session,
		client:  client,
		out:     bufio.NewWriter(os.Stdout),
	}

	if !client.Configured() {
		k.printf("No API configured; running in demo mode.\n")
	}
	if session.Authenticated() {
		k.printf("Welcome back, %s.\n", session.User().Name)
	}
	k.printf("Type 'help' for commands.\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		k.printf("> ")
		k.out.Flush()
		if !scanner.Scan() {
			return
		}
		if !k.handle(ctx, strings.Fields(strings.TrimSpace(scanner.Text()))) {
			return
		}
	}
}

func (k *kiosk) printf(format string, args ...interface{}) {
	fmt.Fprintf(k.out, format, args...)
}

// handle runs one command; returns false to quit.
func (k *kiosk) handle(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "quit", "exit":
		return false
	case "help":
		k.printHelp()
	case "menu":
		k.catalog.WakeUp()
		k.printMenu(strings.Join(args[1:], " "))
	case "add":
		k.add(args[1:])
	case "cart":
		k.printCart()
	case "inc", "dec":
		k.adjust(args)
	case "edit":
		k.edit(args[1:])
	case "rm":
		k.remove(args[1:])
	case "clear":
		k.cart.Clear()
		k.printf("Cart cleared.\n")
	case "checkout":
		k.checkout(ctx)
	case "login":
		k.login(ctx, args[1:])
	case "signup":
		k.signup(ctx, args[1:])
	case "logout":
		k.session.SignOut()
		k.printf("Signed out.\n")
	case "orders":
		k.orders(ctx)
	case "contact":
		k.contact(ctx, args[1:])
	default:
		k.printf("Unknown command %q. Type 'help'.\n", args[0])
	}
	return true
}

func (k *kiosk) printHelp() {
	k.printf(`Commands:
  menu [query]                      list items (refreshes the catalog)
  add <item#> [hot|cold] [nosugar|less|normal|extra] [regular|almond|oat|soy]
  cart                              show the cart
  inc <line#> / dec <line#>         adjust quantity
  edit <line#> [options...]         change a line's options
  rm <line#>                        remove a line
  clear                             empty the cart
  checkout                          place the order (sign in first)
  login <email> <password>
  signup <name> <email> <password>
  logout
  orders                            order history
  contact <name> <email> <message...>
  quit
`)
}

func (k *kiosk) printMenu(query string) {
	items := k.catalog.Items()
	query = strings.ToLower(strings.TrimSpace(query))
	shown := 0
	for i, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		k.printf("%3d. %-22s ₹%-6d %s\n", i+1, item.Name, storefront.BaseINR(item.Price), item.Category)
		shown++
	}
	if shown == 0 {
		k.printf("No items match.\n")
	}
}

func (k *kiosk) add(args []string) {
	if len(args) == 0 {
		k.printf("Usage: add <item#> [options...]\n")
		return
	}
	items := k.catalog.Items()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(items) {
		k.printf("No such item. Run 'menu' to list items.\n")
		return
	}
	opts := parseOptions(args[1:], domain.DefaultOptions())
	item := items[n-1]
	k.cart.Add(item, opts)
	k.printf("Added %s (%s / %s / %s) — ₹%d\n",
		item.Name, opts.Temperature, opts.Sweetness, opts.Milk,
		storefront.PriceOf(item.Price, &opts))
}

func (k *kiosk) printCart() {
	lines := k.cart.Lines()
	if len(lines) == 0 {
		k.printf("Cart is empty.\n")
		return
	}
	for i, l := range lines {
		k.printf("%3d. %-22s x%-3d ₹%-6d (%s / %s / %s)\n",
			i+1, l.Name, l.Quantity, l.UnitPriceINR*int64(l.Quantity),
			l.Options.Temperature, l.Options.Sweetness, l.Options.Milk)
	}
	count, total := k.cart.Totals()
	k.printf("Total: %d item(s), ₹%d\n", count, total)
}

func (k *kiosk) lineIndex(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > k.cart.Len() {
		return 0, false
	}
	return n - 1, true
}

func (k *kiosk) adjust(args []string) {
	idx, ok := k.lineIndex(args[1:])
	if !ok {
		k.printf("Usage: %s <line#>\n", args[0])
		return
	}
	delta := 1
	if args[0] == "dec" {
		delta = -1
	}
	k.cart.AdjustQuantity(idx, delta)
	k.printCart()
}

func (k *kiosk) edit(args []string) {
	idx, ok := k.lineIndex(args)
	if !ok {
		k.printf("Usage: edit <line#> [options...]\n")
		return
	}
	current := k.cart.Lines()[idx].Options
	k.cart.EditOptions(idx, parseOptions(args[1:], current))
	k.printCart()
}

func (k *kiosk) remove(args []string) {
	idx, ok := k.lineIndex(args)
	if !ok {
		k.printf("Usage: rm <line#>\n")
		return
	}
	k.cart.Remove(idx)
	k.printCart()
}

func (k *kiosk) checkout(ctx context.Context) {
	if k.client.Configured() && !k.session.Authenticated() {
		k.printf("Please login before checking out.\n")
		return
	}
	receipt, err := k.client.PlaceOrder(ctx, k.cart)
	if err != nil {
		if k.session.HandleAuthFailure(err) {
			k.printf("Session expired. Please login again.\n")
			return
		}
		k.printf("Failed to place order. %v\n", err)
		return
	}
	if receipt.Simulated {
		k.printf("Order placed (demo)! ID: %s\n", receipt.OrderID)
		return
	}
	k.printf("Order placed! ID: %s\n", receipt.OrderID)
}

func (k *kiosk) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		k.printf("Usage: login <email> <password>\n")
		return
	}
	if err := k.session.SignIn(ctx, args[0], args[1]); err != nil {
		k.printf("Login failed: %v\n", err)
		return
	}
	k.printf("Welcome, %s.\n", k.session.User().Name)
}

func (k *kiosk) signup(ctx context.Context, args []string) {
	if len(args) != 3 {
		k.printf("Usage: signup <name> <email> <password>\n")
		return
	}
	if err := k.session.SignUp(ctx, args[0], args[1], args[2]); err != nil {
		k.printf("Signup failed: %v\n", err)
		return
	}
	k.printf("Account created. Welcome, %s.\n", k.session.User().Name)
}

func (k *kiosk) orders(ctx context.Context) {
	if !k.session.Authenticated() {
		k.printf("Please login to view your orders.\n")
		return
	}
	orders, err := k.client.FetchOrders(ctx)
	if err != nil {
		if k.session.HandleAuthFailure(err) {
			k.printf("Session expired. Please login again.\n")
			return
		}
		k.printf("Failed to load your orders. Please try again. (%v)\n", err)
		return
	}
	history := storefront.ReconcileOrders(orders, k.catalog)
	if len(history) == 0 {
		k.printf("You haven't placed any orders yet.\n")
		return
	}
	for _, order := range history {
		k.printf("Order #%s — %s — ₹%d\n",
			shortID(order.ID), order.CreatedAt.Format("02 Jan 2006 15:04"), order.AmountINR)
		for _, line := range order.Lines {
			k.printf("    %-22s x%-3d ₹%d", line.Name, line.Quantity, line.LineINR)
			if line.Options != nil {
				k.printf("  (%s / %s / %s, ₹%d + ₹%d add-ons)",
					line.Options.Temperature, line.Options.Sweetness, line.Options.Milk,
					line.BaseINR, line.AddonINR)
			}
			k.printf("\n")
		}
	}
}

func (k *kiosk) contact(ctx context.Context, args []string) {
	if len(args) < 3 {
		k.printf("Usage: contact <name> <email> <message...>\n")
		return
	}
	resp, err := k.client.SubmitContact(ctx, domain.ContactRequest{
		Name:    args[0],
		Email:   args[1],
		Message: strings.Join(args[2:], " "),
	})
	if err != nil {
		k.printf("Failed to send message: %v\n", err)
		return
	}
	k.printf("%s (ref %s)\n", resp.Message, shortID(resp.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

// parseOptions overlays recognized option words onto base. Unrecognized words
// are ignored.
func parseOptions(words []string, base domain.OptionSelection) domain.OptionSelection {
	for _, w := range words {
		switch strings.ToLower(w) {
		case "hot":
			base.Temperature = domain.TemperatureHot
		case "cold":
			base.Temperature = domain.TemperatureCold
		case "nosugar":
			base.Sweetness = domain.SweetnessNone
		case "less":
			base.Sweetness = domain.SweetnessLess
		case "normal":
			base.Sweetness = domain.SweetnessNorm
		case "extra":
			base.Sweetness = domain.SweetnessExtra
		case "regular":
			base.Milk = domain.MilkRegular
		case "almond":
			base.Milk = domain.MilkAlmond
		case "oat":
			base.Milk = domain.MilkOat
		case "soy":
			base.Milk = domain.MilkSoy
		}
	}
	return base
}

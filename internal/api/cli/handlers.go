package cliapi

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"food-delivery/internal/domain"
	"food-delivery/internal/service"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type Handler struct {
	Accounts service.AccountServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Notifier *service.Notifier
}

func NewHandler(accounts service.AccountServiceInterface, catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, notifier *service.Notifier) *Handler {
	return &Handler{Accounts: accounts, Catalog: catalog, Orders: orders, Notifier: notifier}
}

func (h *Handler) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "register",
			Usage: "create a regular account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "first-name"},
				&cli.StringFlag{Name: "last-name"},
				&cli.StringFlag{Name: "birth-date", Usage: "optional, free form"},
				&cli.StringFlag{Name: "email"},
				&cli.StringFlag{Name: "login"},
				&cli.StringFlag{Name: "password"},
				&cli.StringFlag{Name: "repeat-password"},
				&cli.StringFlag{Name: "address", Usage: "delivery address"},
			},
			Action: h.register,
		},
		{
			Name:  "restaurants",
			Usage: "list restaurants",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "sort", Value: string(service.SortByName), Usage: "name or rating"},
			},
			Action: h.listRestaurants,
		},
		{
			Name:      "search",
			Usage:     "find restaurants and dishes by name",
			ArgsUsage: "<query>",
			Action:    h.search,
		},
		{
			Name:      "menu",
			Usage:     "show a restaurant menu grouped by category",
			ArgsUsage: "<restaurant id>",
			Action:    h.menu,
		},
		{
			Name:  "order",
			Usage: "sign in, fill the cart and check out",
			Flags: append([]cli.Flag{
				&cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Usage: "restaurant:item, repeatable", Required: true},
				&cli.StringFlag{Name: "payment", Usage: "\"cash on delivery\" (cash) or \"bank card\" (card)"},
			}, credentialFlags()...),
			Action: h.order,
		},
		{
			Name:  "orders",
			Usage: "list your orders, or every order with --all",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{Name: "all", Usage: "administrators only"},
			}, credentialFlags()...),
			Action: h.listOrders,
		},
		{
			Name:  "receipt",
			Usage: "write the QR receipt of an order as PNG",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "order", Required: true},
				&cli.StringFlag{Name: "out", Usage: "defaults to <order>.png"},
			},
			Action: h.receipt,
		},
	}
}

func (h *Handler) register(c *cli.Context) error {
	message, err := h.Accounts.Register(c.Context, domain.Registration{
		FirstName:      c.String("first-name"),
		LastName:       c.String("last-name"),
		BirthDate:      c.String("birth-date"),
		Email:          c.String("email"),
		Login:          c.String("login"),
		Password:       c.String("password"),
		RepeatPassword: c.String("repeat-password"),
		Address:        c.String("address"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, message)
	return nil
}

func (h *Handler) listRestaurants(c *cli.Context) error {
	key, err := service.ParseSortKey(c.String("sort"))
	if err != nil {
		return err
	}
	restaurants, err := h.Catalog.List(c.Context, key)
	if err != nil {
		return err
	}
	for _, r := range restaurants {
		fmt.Fprintf(c.App.Writer, "%d. %s (%.1f)\n", r.ID, r.Name, r.DisplayRating())
		if r.Description != "" {
			fmt.Fprintf(c.App.Writer, "   %s\n", r.Description)
		}
	}
	return nil
}

func (h *Handler) search(c *cli.Context) error {
	w := c.App.Writer
	sub := h.Notifier.Attach(service.ListenerFunc(func(results []domain.SearchResult) {
		printResults(w, results)
	}))
	defer h.Notifier.Detach(sub)

	_, err := h.Catalog.SearchAndPublish(c.Context, strings.Join(c.Args().Slice(), " "))
	return err
}

func (h *Handler) menu(c *cli.Context) error {
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("restaurant id must be a number: %q", c.Args().First())
	}
	restaurant, err := h.Catalog.Restaurant(c.Context, id)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s (%.1f)\n", restaurant.Name, restaurant.DisplayRating())
	for _, section := range service.MenuByCategory(*restaurant) {
		fmt.Fprintf(w, "\n== %s ==\n", section.Category)
		for _, item := range section.Items {
			fmt.Fprintf(w, "  %d. %s  %s\n", item.ID, item.Name, price(item.Price))
			if item.Description != "" {
				fmt.Fprintf(w, "      %s\n", item.Description)
			}
		}
	}
	return nil
}

func (h *Handler) order(c *cli.Context) error {
	session := service.NewSession(h.Accounts, h.Catalog, h.Orders)
	if err := login(c, session); err != nil {
		return err
	}

	for _, ref := range c.StringSlice("item") {
		restaurantID, itemID, err := parseItemRef(ref)
		if err != nil {
			return err
		}
		line, err := session.Select(c.Context, restaurantID, itemID)
		if err != nil {
			return fmt.Errorf("item %s: %w", ref, err)
		}
		fmt.Fprintf(c.App.Writer, "added %s from %s  %s\n", line.Name, line.Restaurant, price(line.Price))
	}
	fmt.Fprintf(c.App.Writer, "cart total %s\n", domain.FormatAmount(session.Cart().Total()))

	order, err := session.Checkout(c.Context, paymentLabel(c.String("payment")))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "order %s placed: %d items, total %s, %s, %s\n",
		order.ID, len(order.Items), domain.FormatAmount(order.Total()), order.PaymentMethod, order.Status)
	return nil
}

func (h *Handler) listOrders(c *cli.Context) error {
	session := service.NewSession(h.Accounts, h.Catalog, h.Orders)
	if err := login(c, session); err != nil {
		return err
	}

	var (
		orders []domain.Order
		err    error
	)
	if c.Bool("all") {
		orders, err = h.Orders.All(c.Context, session.Account())
	} else {
		orders, err = h.Orders.History(c.Context, session.Account())
	}
	if err != nil {
		return err
	}

	w := c.App.Writer
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders")
		return nil
	}
	for _, order := range orders {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			order.ID, order.Date.Format("2006-01-02 15:04"), order.User, domain.FormatAmount(order.Total()), order.Status)
		for _, line := range order.Items {
			fmt.Fprintf(w, "    %s (%s)  %s\n", line.Name, line.Restaurant, price(line.Price))
		}
	}
	return nil
}

func (h *Handler) receipt(c *cli.Context) error {
	orderID := c.String("order")
	png, err := h.Orders.Receipt(c.Context, orderID)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = orderID + ".png"
	}
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "receipt written to %s\n", out)
	return nil
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "login", Aliases: []string{"l"}, Required: true},
		&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
	}
}

func login(c *cli.Context, session *service.Session) error {
	account, err := session.Login(c.Context, c.String("login"), c.String("password"))
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidCredentials
	}
	return nil
}

func printResults(w io.Writer, results []domain.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "nothing found")
		return
	}
	for _, r := range results {
		switch r.Kind {
		case domain.KindRestaurant:
			fmt.Fprintf(w, "[restaurant] %s (%.1f) -> menu %d\n", r.Name, r.Rating, r.TargetRestaurant())
		default:
			fmt.Fprintf(w, "[dish] %s  %s at %s -> menu %d\n", r.Name, price(r.Price), r.RestaurantName, r.TargetRestaurant())
		}
	}
}

// parseItemRef reads "restaurant:item" ids.
func parseItemRef(ref string) (int, int, error) {
	left, right, ok := strings.Cut(ref, ":")
	if !ok {
		return 0, 0, fmt.Errorf("item %q must look like restaurant:item", ref)
	}
	restaurantID, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("item %q: bad restaurant id", ref)
	}
	itemID, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("item %q: bad item id", ref)
	}
	return restaurantID, itemID, nil
}

func paymentLabel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return domain.PaymentCashOnDelivery
	case "card":
		return domain.PaymentBankCard
	default:
		return s
	}
}

func price(v float64) string {
	return domain.FormatAmount(decimal.NewFromFloat(v))
}

// ExitCode maps command errors to process exit codes.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case service.IsValidation(err):
		return 2
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, service.ErrNotAuthenticated), errors.Is(err, service.ErrForbidden):
		return 3
	case errors.Is(err, service.ErrRestaurantNotFound), errors.Is(err, service.ErrMenuItemNotFound), errors.Is(err, service.ErrOrderNotFound):
		return 4
	default:
		return 1
	}
}

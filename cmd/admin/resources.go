package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
)

var resourceCommands = map[string]map[string]command{
	"salons": {
		"list":    {usage: "[--status --city list flags]", run: salonsList},
		"get":     {usage: "<id>", run: salonsGet},
		"create":  {usage: "--name --owner --phone --address --city [--image path]...", run: salonsCreate},
		"approve": {usage: "<id>", run: salonsStatus(model.SalonStatusApproved)},
		"reject":  {usage: "<id> --reason", run: salonsStatus(model.SalonStatusRejected)},
		"suspend": {usage: "<id> --reason", run: salonsStatus(model.SalonStatusSuspended)},
		"delete":  {usage: "<id>", run: salonsDelete},
	},
	"bookings": {
		"list":   {usage: "[--status --salon --user --from --to list flags]", run: bookingsList},
		"get":    {usage: "<id>", run: bookingsGet},
		"status": {usage: "<id> <pending|confirmed|completed|cancelled|no_show>", run: bookingsStatus},
		"cancel": {usage: "<id> --reason", run: bookingsCancel},
	},
	"users": {
		"list":       {usage: "[--role list flags]", run: usersList},
		"get":        {usage: "<id>", run: usersGet},
		"activate":   {usage: "<id>", run: usersActive(true)},
		"deactivate": {usage: "<id>", run: usersActive(false)},
		"delete":     {usage: "<id>", run: usersDelete},
		"profile":    {usage: "[--name --phone --avatar path]", run: usersProfile},
	},
	"products": {
		"list":   {usage: "[--category --low-stock list flags]", run: productsList},
		"get":    {usage: "<id>", run: productsGet},
		"create": {usage: "--name --category --price [--stock --image path]...", run: productsCreate},
		"stock":  {usage: "<id> <quantity>", run: productsStock},
		"delete": {usage: "<id>", run: productsDelete},
	},
	"services": {
		"list":   {usage: "[--category --salon list flags]", run: servicesList},
		"get":    {usage: "<id>", run: servicesGet},
		"delete": {usage: "<id>", run: servicesDelete},
	},
	"staff": {
		"list":   {usage: "[--salon list flags]", run: staffList},
		"get":    {usage: "<id>", run: staffGet},
		"create": {usage: "--name --phone --salon [--photo path]", run: staffCreate},
		"delete": {usage: "<id>", run: staffDelete},
	},
	"orders": {
		"list":   {usage: "[--status --payment list flags]", run: ordersList},
		"get":    {usage: "<id>", run: ordersGet},
		"status": {usage: "<id> <pending|processing|shipped|delivered|cancelled> [--tracking]", run: ordersStatus},
	},
	"offers": {
		"list":   {usage: "[--active list flags]", run: offersList},
		"get":    {usage: "<id>", run: offersGet},
		"toggle": {usage: "<id>", run: offersToggle},
		"delete": {usage: "<id>", run: offersDelete},
	},
	"addresses": {
		"list":   {usage: "<userId>", run: addressesList},
		"delete": {usage: "<id>", run: addressesDelete},
	},
	"analytics": {
		"overview":   {usage: "", run: analyticsOverview},
		"revenue":    {usage: "[--period daily|weekly|monthly|yearly --from --to]", run: analyticsRevenue},
		"top-salons": {usage: "[--limit n]", run: analyticsTopSalons},
	},
}

// ─── Shared helpers ─────────────────────────────────────────────────

func bindListFlags(fs *flag.FlagSet) *model.ListParams {
	p := &model.ListParams{}
	fs.IntVar(&p.Page, "page", 0, "page number")
	fs.IntVar(&p.Limit, "limit", 0, "page size")
	fs.StringVar(&p.Search, "search", "", "search text")
	fs.StringVar(&p.SortBy, "sort", "", "sort field")
	fs.Func("order", "asc or desc", func(v string) error {
		p.Order = model.SortOrder(v)
		return nil
	})
	return p
}

// fileList collects repeated file path flags.
type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

// openFiles opens every path for upload. The returned close func releases them.
func openFiles(paths []string) ([]apiclient.File, func(), error) {
	var files []apiclient.File
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", p, err)
		}
		opened = append(opened, f)
		files = append(files, apiclient.File{Name: filepath.Base(p), Content: f})
	}
	return files, closeAll, nil
}

func oneID(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s", errUsage, usage)
	}
	return args[0], nil
}

// byID wraps a single-record call taking only an id.
func byID[T any](usage string, call func(a *app) func(context.Context, string) (*T, error)) func(context.Context, *app, []string) error {
	return func(ctx context.Context, a *app, args []string) error {
		id, err := oneID(args, usage)
		if err != nil {
			return err
		}
		v, err := call(a)(ctx, id)
		if err != nil {
			return err
		}
		return renderJSON(a.out, v)
	}
}

// deleteByID wraps a delete call taking only an id.
func deleteByID(usage string, call func(a *app) func(context.Context, string) (*model.MessageResponse, error)) func(context.Context, *app, []string) error {
	return func(ctx context.Context, a *app, args []string) error {
		id, err := oneID(args, usage)
		if err != nil {
			return err
		}
		resp, err := call(a)(ctx, id)
		if err != nil {
			return err
		}
		printMessage(a.out, resp, "Deleted "+id+".")
		return nil
	}
}

// ─── Salons ─────────────────────────────────────────────────────────

func salonsList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "salons list")
	params := model.SalonListParams{}
	lp := bindListFlags(fs)
	fs.Func("status", "pending|approved|rejected|suspended", func(v string) error {
		params.Status = model.SalonStatus(v)
		return nil
	})
	fs.StringVar(&params.City, "city", "", "city")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Salons.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, s := range list.Items {
		rows = append(rows, []string{s.ID, s.Name, s.City, string(s.Status), strconv.FormatFloat(s.Rating, 'f', 1, 64)})
	}
	renderTable(a.out, []string{"ID", "NAME", "CITY", "STATUS", "RATING"}, rows, list.Pagination)
	return nil
}

var salonsGet = byID("salons get <id>", func(a *app) func(context.Context, string) (*model.Salon, error) {
	return a.svc.Salons.Get
})

var salonsDelete = deleteByID("salons delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Salons.Delete
})

func salonsCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "salons create")
	req := model.CreateSalonRequest{}
	fs.StringVar(&req.Name, "name", "", "salon name")
	fs.StringVar(&req.Description, "description", "", "description")
	fs.StringVar(&req.OwnerID, "owner", "", "owner user ID")
	fs.StringVar(&req.Email, "email", "", "contact email")
	fs.StringVar(&req.Phone, "phone", "", "contact phone")
	fs.StringVar(&req.Address, "address", "", "street address")
	fs.StringVar(&req.City, "city", "", "city")
	var images fileList
	fs.Var(&images, "image", "image file (repeatable)")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	files, closeFiles, err := openFiles(images)
	if err != nil {
		return err
	}
	defer closeFiles()

	salon, err := a.svc.Salons.Create(ctx, req, files...)
	if err != nil {
		return err
	}
	return renderJSON(a.out, salon)
}

func salonsStatus(status model.SalonStatus) func(context.Context, *app, []string) error {
	return func(ctx context.Context, a *app, args []string) error {
		fs := newFlagSet(a, "salons "+string(status))
		reason := fs.String("reason", "", "reason shown to the owner")
		pos, err := parseFlags(fs, args)
		if err != nil {
			return err
		}
		id, err := oneID(pos, "salons <approve|reject|suspend> <id> [--reason]")
		if err != nil {
			return err
		}

		salon, err := a.svc.Salons.UpdateStatus(ctx, id, model.UpdateSalonStatusRequest{Status: status, Reason: *reason})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s is now %s\n", salon.Name, salon.Status)
		return nil
	}
}

// ─── Bookings ───────────────────────────────────────────────────────

func bookingsList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "bookings list")
	params := model.BookingListParams{}
	lp := bindListFlags(fs)
	fs.Func("status", "booking status", func(v string) error {
		params.Status = model.BookingStatus(v)
		return nil
	})
	fs.StringVar(&params.SalonID, "salon", "", "salon ID")
	fs.StringVar(&params.UserID, "user", "", "customer ID")
	fs.StringVar(&params.DateFrom, "from", "", "YYYY-MM-DD")
	fs.StringVar(&params.DateTo, "to", "", "YYYY-MM-DD")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Bookings.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, b := range list.Items {
		rows = append(rows, []string{b.ID, b.Date + " " + b.StartTime, b.SalonID, string(b.Status), money(b.TotalAmount)})
	}
	renderTable(a.out, []string{"ID", "WHEN", "SALON", "STATUS", "TOTAL"}, rows, list.Pagination)
	return nil
}

var bookingsGet = byID("bookings get <id>", func(a *app) func(context.Context, string) (*model.Booking, error) {
	return a.svc.Bookings.Get
})

func bookingsStatus(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: bookings status <id> <status>", errUsage)
	}
	b, err := a.svc.Bookings.UpdateStatus(ctx, args[0], model.UpdateBookingStatusRequest{Status: model.BookingStatus(args[1])})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking %s is now %s\n", b.ID, b.Status)
	return nil
}

func bookingsCancel(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "bookings cancel")
	reason := fs.String("reason", "", "cancellation reason")
	pos, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	id, err := oneID(pos, "bookings cancel <id> --reason")
	if err != nil {
		return err
	}
	b, err := a.svc.Bookings.Cancel(ctx, id, model.CancelBookingRequest{Reason: *reason})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking %s is now %s\n", b.ID, b.Status)
	return nil
}

// ─── Users ──────────────────────────────────────────────────────────

func usersList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "users list")
	params := model.UserListParams{}
	lp := bindListFlags(fs)
	fs.Func("role", "admin|customer|salon_owner|staff", func(v string) error {
		params.Role = model.Role(v)
		return nil
	})
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Users.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, u := range list.Items {
		rows = append(rows, []string{u.ID, u.Name, u.Email, string(u.Role), strconv.FormatBool(u.IsActive)})
	}
	renderTable(a.out, []string{"ID", "NAME", "EMAIL", "ROLE", "ACTIVE"}, rows, list.Pagination)
	return nil
}

var usersGet = byID("users get <id>", func(a *app) func(context.Context, string) (*model.User, error) {
	return a.svc.Users.Get
})

var usersDelete = deleteByID("users delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Users.Delete
})

func usersActive(active bool) func(context.Context, *app, []string) error {
	return func(ctx context.Context, a *app, args []string) error {
		id, err := oneID(args, "users <activate|deactivate> <id>")
		if err != nil {
			return err
		}
		u, err := a.svc.Users.Update(ctx, id, model.UpdateUserRequest{IsActive: &active})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s active=%t\n", u.Email, u.IsActive)
		return nil
	}
}

func usersProfile(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "users profile")
	req := model.UpdateProfileRequest{}
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	avatarPath := fs.String("avatar", "", "avatar image file")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	if req.Name == "" && req.Phone == "" && *avatarPath == "" {
		u, err := a.svc.Users.Profile(ctx)
		if err != nil {
			return err
		}
		return renderJSON(a.out, u)
	}

	var avatar *apiclient.File
	if *avatarPath != "" {
		files, closeFiles, err := openFiles([]string{*avatarPath})
		if err != nil {
			return err
		}
		defer closeFiles()
		avatar = &files[0]
	}
	u, err := a.svc.Users.UpdateProfile(ctx, req, avatar)
	if err != nil {
		return err
	}
	return renderJSON(a.out, u)
}

// ─── Products ───────────────────────────────────────────────────────

func productsList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "products list")
	params := model.ProductListParams{}
	lp := bindListFlags(fs)
	fs.StringVar(&params.Category, "category", "", "category")
	fs.BoolVar(&params.LowStock, "low-stock", false, "only products low on stock")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Products.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, p := range list.Items {
		rows = append(rows, []string{p.ID, p.Name, p.Category, money(p.Price), strconv.Itoa(p.Stock)})
	}
	renderTable(a.out, []string{"ID", "NAME", "CATEGORY", "PRICE", "STOCK"}, rows, list.Pagination)
	return nil
}

var productsGet = byID("products get <id>", func(a *app) func(context.Context, string) (*model.Product, error) {
	return a.svc.Products.Get
})

var productsDelete = deleteByID("products delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Products.Delete
})

func productsCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "products create")
	req := model.CreateProductRequest{}
	fs.StringVar(&req.Name, "name", "", "product name")
	fs.StringVar(&req.Description, "description", "", "description")
	fs.StringVar(&req.Category, "category", "", "category")
	fs.StringVar(&req.Brand, "brand", "", "brand")
	fs.Float64Var(&req.Price, "price", 0, "price")
	fs.Float64Var(&req.DiscountPrice, "discount-price", 0, "discounted price")
	fs.IntVar(&req.Stock, "stock", 0, "initial stock")
	fs.StringVar(&req.SalonID, "salon", "", "owning salon ID")
	var images fileList
	fs.Var(&images, "image", "image file (repeatable)")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	files, closeFiles, err := openFiles(images)
	if err != nil {
		return err
	}
	defer closeFiles()

	p, err := a.svc.Products.Create(ctx, req, files...)
	if err != nil {
		return err
	}
	return renderJSON(a.out, p)
}

func productsStock(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: products stock <id> <quantity>", errUsage)
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: quantity must be a whole number", errUsage)
	}
	p, err := a.svc.Products.UpdateStock(ctx, args[0], model.UpdateStockRequest{Stock: qty})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s stock=%d\n", p.Name, p.Stock)
	return nil
}

// ─── Services ───────────────────────────────────────────────────────

func servicesList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "services list")
	params := model.ServiceListParams{}
	lp := bindListFlags(fs)
	fs.StringVar(&params.Category, "category", "", "category")
	fs.StringVar(&params.SalonID, "salon", "", "salon ID")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Catalog.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, s := range list.Items {
		rows = append(rows, []string{s.ID, s.Name, s.SalonID, money(s.Price), strconv.Itoa(s.Duration) + "m"})
	}
	renderTable(a.out, []string{"ID", "NAME", "SALON", "PRICE", "DURATION"}, rows, list.Pagination)
	return nil
}

var servicesGet = byID("services get <id>", func(a *app) func(context.Context, string) (*model.Service, error) {
	return a.svc.Catalog.Get
})

var servicesDelete = deleteByID("services delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Catalog.Delete
})

// ─── Staff ──────────────────────────────────────────────────────────

func staffList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "staff list")
	params := model.StaffListParams{}
	lp := bindListFlags(fs)
	fs.StringVar(&params.SalonID, "salon", "", "salon ID")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Staff.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, s := range list.Items {
		rows = append(rows, []string{s.ID, s.Name, s.Specialization, s.SalonID, strconv.FormatBool(s.IsActive)})
	}
	renderTable(a.out, []string{"ID", "NAME", "SPECIALIZATION", "SALON", "ACTIVE"}, rows, list.Pagination)
	return nil
}

var staffGet = byID("staff get <id>", func(a *app) func(context.Context, string) (*model.Staff, error) {
	return a.svc.Staff.Get
})

var staffDelete = deleteByID("staff delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Staff.Delete
})

func staffCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "staff create")
	req := model.CreateStaffRequest{}
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Phone, "phone", "", "phone")
	fs.StringVar(&req.Specialization, "specialization", "", "specialization")
	fs.StringVar(&req.SalonID, "salon", "", "salon ID")
	photoPath := fs.String("photo", "", "photo file")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	var photo *apiclient.File
	if *photoPath != "" {
		files, closeFiles, err := openFiles([]string{*photoPath})
		if err != nil {
			return err
		}
		defer closeFiles()
		photo = &files[0]
	}

	s, err := a.svc.Staff.Create(ctx, req, photo)
	if err != nil {
		return err
	}
	return renderJSON(a.out, s)
}

// ─── Orders ─────────────────────────────────────────────────────────

func ordersList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "orders list")
	params := model.OrderListParams{}
	lp := bindListFlags(fs)
	fs.Func("status", "order status", func(v string) error {
		params.Status = model.OrderStatus(v)
		return nil
	})
	fs.Func("payment", "payment status", func(v string) error {
		params.PaymentStatus = model.PaymentStatus(v)
		return nil
	})
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Orders.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []string{o.ID, o.UserID, strconv.Itoa(len(o.Items)), money(o.TotalAmount), string(o.Status)})
	}
	renderTable(a.out, []string{"ID", "CUSTOMER", "ITEMS", "TOTAL", "STATUS"}, rows, list.Pagination)
	return nil
}

var ordersGet = byID("orders get <id>", func(a *app) func(context.Context, string) (*model.Order, error) {
	return a.svc.Orders.Get
})

func ordersStatus(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "orders status")
	tracking := fs.String("tracking", "", "shipment tracking number")
	pos, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 2 {
		return fmt.Errorf("%w: orders status <id> <status> [--tracking]", errUsage)
	}
	o, err := a.svc.Orders.UpdateStatus(ctx, pos[0], model.UpdateOrderStatusRequest{
		Status:         model.OrderStatus(pos[1]),
		TrackingNumber: *tracking,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order %s is now %s\n", o.ID, o.Status)
	return nil
}

// ─── Offers ─────────────────────────────────────────────────────────

func offersList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "offers list")
	params := model.OfferListParams{}
	lp := bindListFlags(fs)
	fs.Func("active", "true or false", func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		params.IsActive = &b
		return nil
	})
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	params.ListParams = *lp

	list, err := a.svc.Offers.List(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list.Items))
	for _, o := range list.Items {
		rows = append(rows, []string{o.ID, o.Code, o.Title, discount(o), strconv.FormatBool(o.IsActive)})
	}
	renderTable(a.out, []string{"ID", "CODE", "TITLE", "DISCOUNT", "ACTIVE"}, rows, list.Pagination)
	return nil
}

var offersGet = byID("offers get <id>", func(a *app) func(context.Context, string) (*model.Offer, error) {
	return a.svc.Offers.Get
})

var offersDelete = deleteByID("offers delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Offers.Delete
})

func offersToggle(ctx context.Context, a *app, args []string) error {
	id, err := oneID(args, "offers toggle <id>")
	if err != nil {
		return err
	}
	o, err := a.svc.Offers.Toggle(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s active=%t\n", o.Code, o.IsActive)
	return nil
}

// ─── Addresses ──────────────────────────────────────────────────────

func addressesList(ctx context.Context, a *app, args []string) error {
	userID, err := oneID(args, "addresses list <userId>")
	if err != nil {
		return err
	}
	addrs, err := a.svc.Addresses.List(ctx, userID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(addrs))
	for _, ad := range addrs {
		rows = append(rows, []string{ad.ID, ad.Label, ad.Line1, ad.City, strconv.FormatBool(ad.IsDefault)})
	}
	renderTable(a.out, []string{"ID", "LABEL", "LINE 1", "CITY", "DEFAULT"}, rows, nil)
	return nil
}

var addressesDelete = deleteByID("addresses delete <id>", func(a *app) func(context.Context, string) (*model.MessageResponse, error) {
	return a.svc.Addresses.Delete
})

// ─── Analytics ──────────────────────────────────────────────────────

func analyticsOverview(ctx context.Context, a *app, _ []string) error {
	o, err := a.svc.Analytics.Overview(ctx)
	if err != nil {
		return err
	}
	return renderJSON(a.out, o)
}

func analyticsRevenue(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "analytics revenue")
	params := model.RevenueParams{}
	fs.Func("period", "daily|weekly|monthly|yearly", func(v string) error {
		params.Period = model.RevenuePeriod(v)
		return nil
	})
	fs.StringVar(&params.From, "from", "", "YYYY-MM-DD")
	fs.StringVar(&params.To, "to", "", "YYYY-MM-DD")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	points, err := a.svc.Analytics.Revenue(ctx, params)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Label, money(p.Revenue), strconv.Itoa(p.Bookings), strconv.Itoa(p.Orders)})
	}
	renderTable(a.out, []string{"PERIOD", "REVENUE", "BOOKINGS", "ORDERS"}, rows, nil)
	return nil
}

func analyticsTopSalons(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "analytics top-salons")
	limit := fs.Int("limit", 10, "number of salons")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	salons, err := a.svc.Analytics.TopSalons(ctx, *limit)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(salons))
	for i, s := range salons {
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Name, strconv.Itoa(s.Bookings), money(s.Revenue)})
	}
	renderTable(a.out, []string{"#", "SALON", "BOOKINGS", "REVENUE"}, rows, nil)
	return nil
}

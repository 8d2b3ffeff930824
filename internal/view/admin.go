package view

import (
	"strconv"
	"strings"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
)

// Empty-state messages.
const (
	NoUsers          = "No users found"
	NoOrders         = "No orders found"
	NoAddresses      = "No addresses found"
	NoRecentProducts = "No recent products"
	NoRecentUsers    = "No recent users"
	NoOrderItems     = "No items in this order"
)

// Users renders the admin user list.
func (r *Renderer) Users(res listing.Result[domain.User]) string {
	if res.Empty() {
		return r.emptyList(res.Total, res.Query, NoUsers)
	}
	rows := make([][]string, 0, len(res.Items))
	for _, u := range res.Items {
		rows = append(rows, []string{u.ID.String(), u.FullName(), u.Email, u.Phone, dash(u.CreatedAt)})
	}
	return r.table([]string{"ID", "Name", "Email", "Phone", "Joined"}, rows) +
		"\n" + r.styles.Muted.Render(countLine(len(res.Items), res.Total, "user"))
}

// Orders renders the admin order list.
func (r *Renderer) Orders(res listing.Result[domain.Order]) string {
	if res.Empty() {
		return r.emptyList(res.Total, res.Query, NoOrders)
	}
	rows := make([][]string, 0, len(res.Items))
	for _, o := range res.Items {
		rows = append(rows, []string{
			o.ID.String(),
			o.UserName,
			dash(o.ItemSummary()),
			r.Money(o.Total()),
			dash(o.PaymentMethod),
			o.Status.Label(),
			dash(o.CreatedAt),
		})
	}
	return r.table([]string{"ID", "Customer", "Items", "Total", "Payment", "Status", "Placed"}, rows) +
		"\n" + r.styles.Muted.Render(countLine(len(res.Items), res.Total, "order"))
}

// Dashboard renders the admin statistics.
func (r *Renderer) Dashboard(s domain.DashboardStats) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Dashboard") + "\n")
	b.WriteString(r.field("Total products", strconv.Itoa(s.TotalProducts)) + "\n")
	b.WriteString(r.field("Total users", strconv.Itoa(s.TotalUsers)) + "\n")
	b.WriteString(r.field("Total orders", strconv.Itoa(s.TotalOrders)) + "\n")
	b.WriteString(r.field("Total revenue", r.Money(domain.PriceFromFloat(s.TotalRevenue))) + "\n")
	b.WriteString(r.field("Revenue this month", r.Money(domain.PriceFromFloat(s.MonthlyRevenue))) + "\n")

	b.WriteString("\n" + r.styles.Heading.Render("Recent products") + "\n")
	if len(s.RecentProducts) == 0 {
		b.WriteString(r.empty(NoRecentProducts))
	} else {
		rows := make([][]string, 0, len(s.RecentProducts))
		for _, p := range s.RecentProducts {
			rows = append(rows, []string{p.ID.String(), p.Title, r.Money(domain.PriceFromFloat(p.Price))})
		}
		b.WriteString(r.table([]string{"ID", "Title", "Price"}, rows))
	}

	b.WriteString("\n\n" + r.styles.Heading.Render("Recent users") + "\n")
	if len(s.RecentUsers) == 0 {
		b.WriteString(r.empty(NoRecentUsers))
	} else {
		rows := make([][]string, 0, len(s.RecentUsers))
		for _, u := range s.RecentUsers {
			rows = append(rows, []string{u.ID.String(), u.Name, u.Email})
		}
		b.WriteString(r.table([]string{"ID", "Name", "Email"}, rows))
	}
	return b.String()
}

// UserDetail renders the admin user modal.
func (r *Renderer) UserDetail(u domain.User, addresses []domain.Address, orders []domain.Order) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(u.FullName()) + "\n")
	b.WriteString(r.field("Email", u.Email) + "\n")
	b.WriteString(r.field("Phone", dash(u.Phone)) + "\n")
	b.WriteString(r.field("Gender", dash(u.Gender)) + "\n")
	b.WriteString(r.field("Date of birth", dash(u.DateOfBirth)) + "\n")
	b.WriteString(r.field("Member since", dash(u.CreatedAt)) + "\n")

	b.WriteString("\n" + r.styles.Heading.Render("Addresses") + "\n")
	if len(addresses) == 0 {
		b.WriteString(r.empty(NoAddresses))
	} else {
		rows := make([][]string, 0, len(addresses))
		for _, a := range addresses {
			def := ""
			if a.IsDefault {
				def = "default"
			}
			rows = append(rows, []string{a.DisplayName(), a.Line(), dash(a.Phone), def})
		}
		b.WriteString(r.table([]string{"Name", "Address", "Phone", ""}, rows))
	}

	b.WriteString("\n\n" + r.styles.Heading.Render("Recent orders") + "\n")
	if len(orders) == 0 {
		b.WriteString(r.empty(NoOrders))
	} else {
		rows := make([][]string, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, []string{o.ID.String(), r.Money(o.Total()), o.Status.Label(), dash(o.CreatedAt)})
		}
		b.WriteString(r.table([]string{"ID", "Total", "Status", "Placed"}, rows))
	}
	return b.String()
}

// OrderDetail renders the admin order modal.
func (r *Renderer) OrderDetail(o domain.Order) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Order #"+o.ID.String()) + "\n")
	b.WriteString(r.field("Customer", dash(o.UserName)) + "\n")
	b.WriteString(r.field("Email", dash(o.UserEmail)) + "\n")
	b.WriteString(r.field("Status", o.Status.Label()) + "\n")
	b.WriteString(r.field("Payment", dash(o.PaymentMethod)) + "\n")
	b.WriteString(r.field("Total", r.Money(o.Total())) + "\n")
	b.WriteString(r.field("Placed", dash(o.CreatedAt)) + "\n")
	b.WriteString(r.field("Ship to", dash(o.ShippingAddress)) + "\n\n")

	if len(o.Items) == 0 {
		b.WriteString(r.empty(NoOrderItems))
		return b.String()
	}
	rows := make([][]string, 0, len(o.Items))
	for _, it := range o.Items {
		rows = append(rows, []string{it.ProductTitle, strconv.Itoa(it.Quantity), r.Money(domain.PriceFromFloat(it.Price))})
	}
	b.WriteString(r.table([]string{"Item", "Qty", "Price"}, rows))
	return b.String()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

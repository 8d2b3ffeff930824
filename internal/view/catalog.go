package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
)

// Empty-state messages.
const (
	NoProducts        = "No products found"
	NoRelatedProducts = "No related products available."
	NoMatches         = "No results match the current filter."
)

// Products renders a product list, admin or storefront.
func (r *Renderer) Products(res listing.Result[domain.Product]) string {
	if res.Empty() {
		return r.emptyList(res.Total, res.Query, NoProducts)
	}

	rows := make([][]string, 0, len(res.Items))
	for _, p := range res.Items {
		rows = append(rows, []string{
			p.ID.String(),
			p.Title,
			p.CategoryOrDefault(),
			p.CanonicalGender().Label(),
			r.Money(p.UnitPrice()),
		})
	}
	return r.table([]string{"ID", "Title", "Category", "Gender", "Price"}, rows) +
		"\n" + r.styles.Muted.Render(countLine(len(res.Items), res.Total, "product"))
}

// ProductDetail renders one product with its related products.
func (r *Renderer) ProductDetail(p domain.Product, related []domain.Product) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(r.field("Price", r.Money(p.UnitPrice())) + "\n")
	b.WriteString(r.field("Category", p.CategoryOrDefault()+" · "+p.CanonicalGender().Label()) + "\n")
	if p.Volume != "" {
		b.WriteString(r.field("Volume", p.Volume) + "\n")
	}
	if p.Longevity != "" {
		b.WriteString(r.field("Longevity", p.Longevity) + "\n")
	}
	if p.ImageURL != "" {
		b.WriteString(r.field("Image", p.ImageURL) + "\n")
	}
	if p.Description != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(72).Render(p.Description) + "\n")
	}

	b.WriteString("\n" + r.styles.Heading.Render("You may also like") + "\n")
	b.WriteString(r.Related(related))
	return b.String()
}

// Related renders the related products section.
func (r *Renderer) Related(related []domain.Product) string {
	if len(related) == 0 {
		return r.empty(NoRelatedProducts)
	}
	rows := make([][]string, 0, len(related))
	for _, p := range related {
		rows = append(rows, []string{p.ID.String(), p.Title, r.Money(p.UnitPrice())})
	}
	return r.table([]string{"ID", "Title", "Price"}, rows)
}

func (r *Renderer) emptyList(total int, q listing.Query, none string) string {
	if total > 0 && !q.IsZero() {
		msg := NoMatches
		if s := strings.TrimSpace(q.Search); s != "" {
			msg = fmt.Sprintf("No results for %q.", s)
		}
		return r.empty(msg)
	}
	return r.empty(none)
}

func countLine(shown, total int, noun string) string {
	if shown == total {
		return fmt.Sprintf("%d %s", total, plural(total, noun))
	}
	return fmt.Sprintf("%d of %d %s", shown, total, plural(total, noun))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

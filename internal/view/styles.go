// Package view renders storefront and admin screens as text. Every renderer
// is a pure function of its input, and every collection has an explicit empty
// state instead of a blank region.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Areeb006/FAJR/internal/domain"
)

// Brand palette.
var (
	Gold      = lipgloss.Color("#C9A227")
	Ink       = lipgloss.Color("#1B1B1F")
	Muted     = lipgloss.Color("#8A8A8A")
	Danger    = lipgloss.Color("#E53935")
	Positive  = lipgloss.Color("#43A047")
	BorderCol = lipgloss.Color("#5C5C66")
)

// Styles holds the lipgloss styles used by the renderers.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Empty   lipgloss.Style
	Label   lipgloss.Style
	Total   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns the storefront styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Muted: lipgloss.NewStyle().
			Foreground(Muted),
		Empty: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(Muted).
			Width(22),
		Total: lipgloss.NewStyle().
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(Positive).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Foreground(BorderCol),
	}
}

// Renderer turns domain values into text.
type Renderer struct {
	styles Styles
	symbol string
}

// NewRenderer creates a renderer. An empty symbol falls back to ₹.
func NewRenderer(styles Styles, currencySymbol string) *Renderer {
	if currencySymbol == "" {
		currencySymbol = domain.DefaultCurrencySymbol
	}
	return &Renderer{styles: styles, symbol: currencySymbol}
}

// Money formats an amount with the configured symbol.
func (r *Renderer) Money(amount int64) string {
	return domain.FormatAmount(r.symbol, amount)
}

// Styles exposes the renderer's styles.
func (r *Renderer) Styles() Styles { return r.styles }

func (r *Renderer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		})
	return t.String()
}

func (r *Renderer) empty(msg string) string {
	return r.styles.Empty.Render(msg)
}

func (r *Renderer) field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.styles.Label.Render(label), value)
}

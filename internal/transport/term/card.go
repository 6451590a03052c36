// Package term draws a card in the terminal. It is a preview renderer only;
// all decisions come from the card's Presentation and StyleParams.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
)

// DefaultWidth is the inner width of a rendered card, in cells.
const DefaultWidth = 36

// Renderer renders cards with a fixed inner width.
type Renderer struct {
	width int
}

func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{width: width}
}

// Render returns the boxed card.
func (r *Renderer) Render(card *dto.CardDTO) string {
	s := card.Style
	lines := make([]string, 0, 5)

	if s.Badge != nil {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Badge.Foreground)).
			Background(lipgloss.Color(s.Badge.Background)).
			Bold(s.Badge.FontWeight >= 700).
			Padding(0, 1).
			Render(s.Badge.Label)
		lines = append(lines, lipgloss.PlaceHorizontal(r.width, lipgloss.Right, badge))
	}

	name := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.NameColor)).
		Bold(s.NameWeight >= 600).
		Render(card.Name)

	colorInfo := lipgloss.NewStyle().Foreground(lipgloss.Color(s.ColorInfoColor))

	if p := card.Presentation; p != nil {
		price := lipgloss.NewStyle().Strikethrough(s.PriceStrikethrough)
		if s.PriceColor != "" {
			price = price.Foreground(lipgloss.Color(s.PriceColor))
		}
		lines = append(lines, r.row(name, price.Render(p.FormattedPrice)))

		sale := ""
		if p.FormattedSalePrice != nil {
			sale = lipgloss.NewStyle().
				Foreground(lipgloss.Color(s.SalePriceColor)).
				Bold(s.SalePriceWeight >= 600).
				Render(*p.FormattedSalePrice)
		}
		lines = append(lines, r.row(colorInfo.Render(p.ColorLabel), sale))
	} else {
		lines = append(lines, name)
	}

	lines = append(lines, lipgloss.NewStyle().Faint(true).Render(card.Href))
	if card.Failed() {
		lines = append(lines, colorInfo.Render("! "+card.Error))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(r.width + 2).
		Render(strings.Join(lines, "\n"))
}

// row places left and right at opposite ends of the card.
func (r *Renderer) row(left, right string) string {
	gap := r.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

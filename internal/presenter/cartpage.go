package presenter

import (
	"github.com/shopspring/decimal"

	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/pkg/money"
)

// Row is one rendered cart table line.
type Row struct {
	ProductID    string `json:"product_id"`
	Image        string `json:"image"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineSubtotal string `json:"line_subtotal"`
}

// SummaryBlock is the subtotal box beside the cart table.
type SummaryBlock struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// EmptyState replaces the table body when the cart holds nothing.
type EmptyState struct {
	Heading  string `json:"heading"`
	Message  string `json:"message"`
	CTALabel string `json:"cta_label"`
	CTALink  string `json:"cta_link"`
}

// CartPageView is the full cart page view-model.
type CartPageView struct {
	Rows       []Row         `json:"rows"`
	Empty      *EmptyState   `json:"empty,omitempty"`
	Summary    *SummaryBlock `json:"summary,omitempty"`
	TotalItems int           `json:"total_items"`
}

// BuildCartPage projects a cart snapshot into the cart page view-model. The
// summary block is omitted entirely for an empty cart.
func BuildCartPage(snap *cart.Snapshot) CartPageView {
	if snap == nil || len(snap.Items) == 0 {
		return CartPageView{
			Rows: []Row{},
			Empty: &EmptyState{
				Heading:  "Your cart is empty",
				Message:  "Add some products to get started!",
				CTALabel: "Continue Shopping",
				CTALink:  "shop.html",
			},
		}
	}

	rows := make([]Row, 0, len(snap.Items))
	for _, item := range snap.Items {
		unit := money.ParsePrice(item.Price)
		line := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		rows = append(rows, Row{
			ProductID:    item.ID,
			Image:        item.Image,
			Name:         item.Name,
			UnitPrice:    item.Price,
			Quantity:     item.Quantity,
			LineSubtotal: money.Format(line),
		})
	}

	return CartPageView{
		Rows:       rows,
		TotalItems: snap.TotalItems,
		Summary: &SummaryBlock{
			Subtotal: snap.Total,
			Shipping: "Free",
			Total:    snap.Total,
		},
	}
}

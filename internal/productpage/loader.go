package productpage

import (
	"fmt"
	"strings"

	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
)

// State names the detail view's lifecycle phases.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateLoaded  State = "loaded"
)

// relatedCount is the fixed size of the related-products panel.
const relatedCount = 4

// galleryCount is the number of small gallery tiles under the main image.
const galleryCount = 4

// fadeOutDelayMillis is the navigation transition hint pages apply before
// following a tile link.
const fadeOutDelayMillis = 300

// GalleryTile links a small image under the main photo to another product.
type GalleryTile struct {
	ProductID string `json:"product_id"`
	Image     string `json:"image"`
	Alt       string `json:"alt"`
}

// RelatedCard is one entry in the related-products panel.
type RelatedCard struct {
	ProductID       string `json:"product_id"`
	Brand           string `json:"brand"`
	Name            string `json:"name"`
	OriginalPrice   string `json:"original_price"`
	DiscountedPrice string `json:"discounted_price"`
	Thumbnail       string `json:"thumbnail"`
}

// DetailView is the fully-resolved product page.
type DetailView struct {
	State       State         `json:"state"`
	PageTitle   string        `json:"page_title"`
	Breadcrumb  string        `json:"breadcrumb"`
	Name        string        `json:"name"`
	Price       string        `json:"price"`
	Description string        `json:"description"`
	Brand       string        `json:"brand"`
	Category    string        `json:"category"`
	StockLabel  string        `json:"stock_label"`
	MainImage   string        `json:"main_image"`
	Features    []string      `json:"features"`
	Gallery     []GalleryTile `json:"gallery"`
	Related     []RelatedCard `json:"related"`
	FadeOutMs   int           `json:"fade_out_ms"`
}

// Loader resolves detail views against the catalog.
type Loader struct {
	catalog *catalog.Catalog
}

// NewLoader builds a product page loader.
func NewLoader(cat *catalog.Catalog) (*Loader, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &Loader{catalog: cat}, nil
}

// Load resolves the page for the given query id. A blank or unknown id ends
// in the error state, reported as a NotFound coded error for the transport
// layer to map onto the page's error display.
func (l *Loader) Load(id string) (*DetailView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product id missing")
	}

	product, err := l.catalog.ByID(id)
	if err != nil {
		return nil, err
	}

	stock := "Out of Stock"
	if product.InStock {
		stock = "In Stock"
	}

	view := &DetailView{
		State:       StateLoaded,
		PageTitle:   product.Name + " - Baked Bounty",
		Breadcrumb:  "home / shop / " + strings.ToLower(product.Name),
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		StockLabel:  stock,
		MainImage:   product.Thumbnail(),
		Features:    product.Features,
		Gallery:     l.gallery(product),
		Related:     l.related(product),
		FadeOutMs:   fadeOutDelayMillis,
	}
	return view, nil
}

// gallery picks other products' primary thumbnails for the small-image
// strip. The strip deliberately previews the rest of the shop rather than
// alternate shots of the viewed product.
func (l *Loader) gallery(current catalog.Product) []GalleryTile {
	tiles := []GalleryTile{}
	for _, p := range l.catalog.All() {
		if p.ID == current.ID {
			continue
		}
		tiles = append(tiles, GalleryTile{
			ProductID: p.ID,
			Image:     p.Thumbnail(),
			Alt:       p.Name,
		})
		if len(tiles) == galleryCount {
			break
		}
	}
	return tiles
}

// related fills the panel with same-category products first, then pads from
// the rest of the catalog up to the fixed count.
func (l *Loader) related(current catalog.Product) []RelatedCard {
	cards := []RelatedCard{}
	for _, p := range l.catalog.ByCategory(current.Category) {
		if p.ID == current.ID {
			continue
		}
		cards = append(cards, cardFor(p))
	}

	if len(cards) < relatedCount {
		for _, p := range l.catalog.All() {
			if p.ID == current.ID || p.Category == current.Category {
				continue
			}
			cards = append(cards, cardFor(p))
		}
	}

	if len(cards) > relatedCount {
		cards = cards[:relatedCount]
	}
	return cards
}

func cardFor(p catalog.Product) RelatedCard {
	return RelatedCard{
		ProductID:       p.ID,
		Brand:           p.Brand,
		Name:            p.Name,
		OriginalPrice:   p.OriginalPrice,
		DiscountedPrice: p.DiscountedPrice,
		Thumbnail:       p.Thumbnail(),
	}
}

package catalog

import (
	"math/rand"
	"sort"

	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
)

// Product is a single storefront catalog entry.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Price           string   `json:"price"`
	OriginalPrice   string   `json:"original_price"`
	DiscountedPrice string   `json:"discounted_price"`
	Images          []string `json:"images"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	InStock         bool     `json:"in_stock"`
	Features        []string `json:"features"`
}

// Thumbnail returns the product's primary image, or "" when it has none.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Catalog serves the fixed product set. All lookups are read-only, so a
// single instance is safe for concurrent use.
type Catalog struct {
	byID       map[string]Product
	byThumb    map[string]string
	orderedIDs []string
}

// New builds a catalog over the built-in product set.
func New() *Catalog {
	byID := make(map[string]Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return &Catalog{byID: byID, byThumb: thumbnailIndex, orderedIDs: ids}
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// All returns every product, ordered by id.
func (c *Catalog) All() []Product {
	out := make([]Product, 0, len(c.orderedIDs))
	for _, id := range c.orderedIDs {
		out = append(out, c.byID[id])
	}
	return out
}

// ByCategory returns the products in the given category, ordered by id.
func (c *Catalog) ByCategory(category string) []Product {
	out := []Product{}
	for _, id := range c.orderedIDs {
		if p := c.byID[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Random returns up to count products in shuffled order.
func (c *Catalog) Random(r *rand.Rand, count int) []Product {
	all := c.All()
	r.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	if count > len(all) {
		count = len(all)
	}
	if count < 0 {
		count = 0
	}
	return all[:count]
}

// ProductIDForThumbnail resolves a shop tile image path to the product it
// links to. Tiles are identified by their image, not by position.
func (c *Catalog) ProductIDForThumbnail(imagePath string) (string, error) {
	id, ok := c.byThumb[imagePath]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "no product mapped to image")
	}
	return id, nil
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.byID)
}

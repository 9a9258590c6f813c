package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	"github.com/BVKSH0/baked-bounty-backend/pkg/db/models"
	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/metrics"
	"github.com/BVKSH0/baked-bounty-backend/pkg/money"
)

// Item is a single cart line. Display fields are copied from the catalog at
// add time so the stored cart renders without further lookups.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Snapshot is the cart state returned after every read or mutation.
type Snapshot struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"total_items"`
	Total      string `json:"total"`
}

type productLoader interface {
	ByID(id string) (catalog.Product, error)
}

// Service exposes the visitor cart operations.
type Service interface {
	Load(ctx context.Context, visitorID string) (*Snapshot, error)
	AddItem(ctx context.Context, visitorID, productID string, quantity int) (*Snapshot, error)
	RemoveItem(ctx context.Context, visitorID, productID string) (*Snapshot, error)
	SetQuantity(ctx context.Context, visitorID, productID string, quantity int) (*Snapshot, error)
	Clear(ctx context.Context, visitorID string) (*Snapshot, error)
}

type service struct {
	repo    Repository
	catalog productLoader
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, cat productLoader, logg *logger.Logger, m *metrics.CartMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, catalog: cat, logg: logg, metrics: m}, nil
}

// Load returns the visitor's cart. A missing record or an unreadable payload
// both resolve to an empty cart rather than an error.
func (s *service) Load(ctx context.Context, visitorID string) (*Snapshot, error) {
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor id is required")
	}
	items, err := s.loadItems(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return snapshotOf(items), nil
}

// AddItem merges the product into the cart, creating the line or bumping its
// quantity, then persists the whole cart.
func (s *service) AddItem(ctx context.Context, visitorID, productID string, quantity int) (*Snapshot, error) {
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor id is required")
	}
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.catalog.ByID(productID)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{
			ID:       product.ID,
			Name:     product.Name,
			Brand:    product.Brand,
			Price:    product.Price,
			Image:    product.Thumbnail(),
			Quantity: quantity,
		})
	}

	if err := s.persist(ctx, "add", visitorID, items); err != nil {
		return nil, err
	}
	return snapshotOf(items), nil
}

// RemoveItem drops the product's line entirely.
func (s *service) RemoveItem(ctx context.Context, visitorID, productID string) (*Snapshot, error) {
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	items, err := s.loadItems(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.persist(ctx, "remove", visitorID, kept); err != nil {
		return nil, err
	}
	return snapshotOf(kept), nil
}

// SetQuantity replaces the line's quantity. Zero or negative removes the
// line. A product not in the cart is left untouched.
func (s *service) SetQuantity(ctx context.Context, visitorID, productID string, quantity int) (*Snapshot, error) {
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, visitorID, productID)
	}

	items, err := s.loadItems(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return snapshotOf(items), nil
	}

	if err := s.persist(ctx, "set_quantity", visitorID, items); err != nil {
		return nil, err
	}
	return snapshotOf(items), nil
}

// Clear empties the cart but keeps the record.
func (s *service) Clear(ctx context.Context, visitorID string) (*Snapshot, error) {
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "visitor id is required")
	}

	if err := s.persist(ctx, "clear", visitorID, []Item{}); err != nil {
		return nil, err
	}
	return snapshotOf([]Item{}), nil
}

func (s *service) loadItems(ctx context.Context, visitorID string) ([]Item, error) {
	record, err := s.repo.FindByVisitor(ctx, visitorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart record")
	}

	var items []Item
	if err := json.Unmarshal([]byte(record.Payload), &items); err != nil {
		// An unreadable payload must never block the storefront.
		s.logg.Warn(s.logg.WithVisitorID(ctx, visitorID), "discarding unreadable cart payload")
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *service) persist(ctx context.Context, command, visitorID string, items []Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		s.metrics.IncFailure(command)
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart payload")
	}

	start := time.Now()
	err = s.repo.Save(ctx, &models.CartRecord{
		VisitorID: visitorID,
		Payload:   string(payload),
	})
	s.metrics.ObservePersist(command, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(command)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart record")
	}
	s.metrics.IncCommand(command)
	return nil
}

func snapshotOf(items []Item) *Snapshot {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		price := money.ParsePrice(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return &Snapshot{
		Items:      items,
		TotalItems: count,
		Total:      money.Format(total),
	}
}

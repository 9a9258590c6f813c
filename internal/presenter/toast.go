package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
	"github.com/BVKSH0/baked-bounty-backend/pkg/redis"
)

// Toast is the transient "added to cart" confirmation. At most one exists
// per visitor; a new add replaces whatever is still showing.
type Toast struct {
	Message   string    `json:"message"`
	ProductID string    `json:"product_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier stores pending toasts with a TTL so they dismiss on their own.
type Notifier struct {
	store redis.ToastStore
	ttl   time.Duration
}

// NewNotifier builds a notifier over the provided toast store.
func NewNotifier(store redis.ToastStore, ttl time.Duration) (*Notifier, error) {
	if store == nil {
		return nil, fmt.Errorf("toast store required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("toast ttl must be positive")
	}
	return &Notifier{store: store, ttl: ttl}, nil
}

// NotifyAdded records the confirmation for the added product, replacing any
// pending toast for the visitor.
func (n *Notifier) NotifyAdded(ctx context.Context, visitorID, productID, productName string) (*Toast, error) {
	toast := Toast{
		Message:   fmt.Sprintf("Added %q to cart!", productName),
		ProductID: productID,
		ExpiresAt: time.Now().Add(n.ttl).UTC(),
	}
	payload, err := json.Marshal(toast)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding toast")
	}
	if err := n.store.Set(ctx, n.store.ToastKey(visitorID), payload, n.ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing toast")
	}
	return &toast, nil
}

// Pending returns the visitor's current toast, or nil once it has expired
// or was dismissed.
func (n *Notifier) Pending(ctx context.Context, visitorID string) (*Toast, error) {
	raw, err := n.store.Get(ctx, n.store.ToastKey(visitorID))
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading toast")
	}
	var toast Toast
	if err := json.Unmarshal([]byte(raw), &toast); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding toast")
	}
	return &toast, nil
}

// Dismiss drops the visitor's pending toast ahead of its TTL.
func (n *Notifier) Dismiss(ctx context.Context, visitorID string) error {
	if err := n.store.Del(ctx, n.store.ToastKey(visitorID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dismissing toast")
	}
	return nil
}

package presenter

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
)

func visibleAffordance(id string) Affordance {
	return Affordance{
		ID:         id,
		Attached:   true,
		Display:    "block",
		Visibility: "visible",
		Opacity:    1,
		Width:      24,
		Height:     24,
	}
}

func TestBadgePlanShowsCountOnVisibleAffordances(t *testing.T) {
	t.Parallel()

	hiddenMenu := visibleAffordance("mobile-cart")
	hiddenMenu.InHiddenMobileMenu = true

	decisions := BadgePlan(3, []Affordance{visibleAffordance("nav-cart"), hiddenMenu})
	if len(decisions) != 2 {
		t.Fatalf("decisions = %d", len(decisions))
	}
	if !decisions[0].Show || decisions[0].Count != 3 {
		t.Errorf("nav-cart = %+v", decisions[0])
	}
	if decisions[1].Show {
		t.Errorf("hidden mobile menu affordance should not show a badge")
	}
}

func TestBadgePlanZeroCountRemovesAllBadges(t *testing.T) {
	t.Parallel()

	decisions := BadgePlan(0, []Affordance{visibleAffordance("nav-cart")})
	if decisions[0].Show || decisions[0].Count != 0 {
		t.Errorf("decision = %+v, want badge removed", decisions[0])
	}
}

func TestAffordanceVisibilityRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Affordance)
		want   bool
	}{
		{"visible", func(a *Affordance) {}, true},
		{"detached", func(a *Affordance) { a.Attached = false }, false},
		{"display none", func(a *Affordance) { a.Display = "none" }, false},
		{"visibility hidden", func(a *Affordance) { a.Visibility = "hidden" }, false},
		{"zero opacity", func(a *Affordance) { a.Opacity = 0 }, false},
		{"zero size", func(a *Affordance) { a.Width = 0 }, false},
		{"footer", func(a *Affordance) { a.InFooter = true }, false},
		{"hidden mobile menu", func(a *Affordance) { a.InHiddenMobileMenu = true }, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := visibleAffordance("nav-cart")
			tc.mutate(&a)
			if got := a.Visible(); got != tc.want {
				t.Errorf("Visible() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildCartPageRows(t *testing.T) {
	t.Parallel()

	snap := &cart.Snapshot{
		Items: []cart.Item{
			{ID: "masako-seasoning", Name: "Masako Meat Seasoning", Price: "650৳", Image: "assets/Products/f1.png", Quantity: 3},
			{ID: "cream-cheese", Name: "Cream Cheese", Price: "650৳", Image: "assets/Products/f9.png", Quantity: 1},
		},
		TotalItems: 4,
		Total:      "2600৳",
	}

	view := BuildCartPage(snap)
	if len(view.Rows) != 2 {
		t.Fatalf("rows = %d", len(view.Rows))
	}
	if view.Rows[0].LineSubtotal != "1950৳" {
		t.Errorf("line subtotal = %q, want 1950৳", view.Rows[0].LineSubtotal)
	}
	if view.Empty != nil {
		t.Error("empty state present for non-empty cart")
	}
	if view.Summary == nil {
		t.Fatal("summary missing")
	}
	if view.Summary.Subtotal != "2600৳" || view.Summary.Total != "2600৳" {
		t.Errorf("summary = %+v", view.Summary)
	}
	if view.Summary.Shipping != "Free" {
		t.Errorf("shipping = %q", view.Summary.Shipping)
	}
}

func TestBuildCartPageEmptyState(t *testing.T) {
	t.Parallel()

	view := BuildCartPage(&cart.Snapshot{Items: []cart.Item{}, Total: "0৳"})
	if len(view.Rows) != 0 {
		t.Errorf("rows = %d", len(view.Rows))
	}
	if view.Summary != nil {
		t.Error("summary should be hidden for an empty cart")
	}
	if view.Empty == nil {
		t.Fatal("empty state missing")
	}
	if view.Empty.Heading != "Your cart is empty" || view.Empty.CTALabel != "Continue Shopping" {
		t.Errorf("empty state = %+v", view.Empty)
	}
}

type stubToastStore struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newStubToastStore() *stubToastStore {
	return &stubToastStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubToastStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, _ := value.([]byte)
	s.values[key] = string(b)
	s.ttls[key] = ttl
	return nil
}

func (s *stubToastStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (s *stubToastStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *stubToastStore) ToastKey(visitorID string) string {
	return "bb:toast:" + visitorID
}

func TestNotifyAddedReplacesPendingToast(t *testing.T) {
	t.Parallel()

	store := newStubToastStore()
	notifier, err := NewNotifier(store, 3*time.Second)
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	ctx := context.Background()

	if _, err := notifier.NotifyAdded(ctx, "v1", "coco-chips", "Coco Chips"); err != nil {
		t.Fatalf("NotifyAdded: %v", err)
	}
	if _, err := notifier.NotifyAdded(ctx, "v1", "boba-pearls", "Boba Pearls"); err != nil {
		t.Fatalf("NotifyAdded: %v", err)
	}

	toast, err := notifier.Pending(ctx, "v1")
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if toast == nil {
		t.Fatal("expected a pending toast")
	}
	if toast.ProductID != "boba-pearls" {
		t.Errorf("product = %q, want latest add", toast.ProductID)
	}
	if toast.Message != `Added "Boba Pearls" to cart!` {
		t.Errorf("message = %q", toast.Message)
	}
	if store.ttls[store.ToastKey("v1")] != 3*time.Second {
		t.Errorf("ttl = %v", store.ttls[store.ToastKey("v1")])
	}
}

func TestPendingAfterExpiryIsNil(t *testing.T) {
	t.Parallel()

	store := newStubToastStore()
	notifier, err := NewNotifier(store, 3*time.Second)
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	ctx := context.Background()

	toast, err := notifier.Pending(ctx, "v1")
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if toast != nil {
		t.Errorf("toast = %+v, want nil", toast)
	}
}

func TestDismissDropsToast(t *testing.T) {
	t.Parallel()

	store := newStubToastStore()
	notifier, err := NewNotifier(store, 3*time.Second)
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	ctx := context.Background()

	if _, err := notifier.NotifyAdded(ctx, "v1", "corn-syrup", "Corn Syrup"); err != nil {
		t.Fatalf("NotifyAdded: %v", err)
	}
	if err := notifier.Dismiss(ctx, "v1"); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	toast, err := notifier.Pending(ctx, "v1")
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if toast != nil {
		t.Error("toast survived dismissal")
	}
}

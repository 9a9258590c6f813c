package catalog

import (
	"math/rand"
	"testing"

	pkgerrors "github.com/BVKSH0/baked-bounty-backend/pkg/errors"
)

func TestByID(t *testing.T) {
	t.Parallel()

	c := New()

	p, err := c.ByID("masako-seasoning")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if p.Name != "Masako Meat Seasoning" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Brand != "Masako" {
		t.Errorf("brand = %q", p.Brand)
	}
	if p.Price != "650৳" {
		t.Errorf("price = %q", p.Price)
	}
	if len(p.Images) != 4 {
		t.Errorf("images = %d, want 4", len(p.Images))
	}
	if p.Thumbnail() != "assets/Products/f1.png" {
		t.Errorf("thumbnail = %q", p.Thumbnail())
	}
}

func TestByIDUnknown(t *testing.T) {
	t.Parallel()

	c := New()

	_, err := c.ByID("rainbow-sprinkles")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("code = %v, want NOT_FOUND", err)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	c := New()

	all := c.All()
	if len(all) != 12 {
		t.Fatalf("len = %d, want 12", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("not ordered by id: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
	// Every product has four gallery images and a price.
	for _, p := range all {
		if len(p.Images) != 4 {
			t.Errorf("%s: images = %d, want 4", p.ID, len(p.Images))
		}
		if p.Price == "" || p.OriginalPrice == "" || p.DiscountedPrice == "" {
			t.Errorf("%s: missing price fields", p.ID)
		}
		if !p.InStock {
			t.Errorf("%s: expected in stock", p.ID)
		}
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	c := New()

	baking := c.ByCategory("Baking Supplies")
	if len(baking) != 3 {
		t.Fatalf("baking supplies = %d, want 3", len(baking))
	}
	for _, p := range baking {
		if p.Category != "Baking Supplies" {
			t.Errorf("%s: category = %q", p.ID, p.Category)
		}
	}

	if got := c.ByCategory("Electronics"); len(got) != 0 {
		t.Errorf("unknown category returned %d products", len(got))
	}
}

func TestRandom(t *testing.T) {
	t.Parallel()

	c := New()
	r := rand.New(rand.NewSource(1))

	picks := c.Random(r, 4)
	if len(picks) != 4 {
		t.Fatalf("len = %d, want 4", len(picks))
	}
	seen := map[string]bool{}
	for _, p := range picks {
		if seen[p.ID] {
			t.Errorf("duplicate pick %q", p.ID)
		}
		seen[p.ID] = true
	}

	if got := c.Random(r, 50); len(got) != c.Len() {
		t.Errorf("oversized count returned %d", len(got))
	}
	if got := c.Random(r, -1); len(got) != 0 {
		t.Errorf("negative count returned %d", len(got))
	}
}

func TestProductIDForThumbnail(t *testing.T) {
	t.Parallel()

	c := New()

	cases := map[string]string{
		"assets/Products/f1.png":  "masako-seasoning",
		"assets/Products/f2.png":  "teriyaki-sauce",
		"assets/Products/f10.jpg": "boba-pearls",
		"assets/Products/f12.png": "flavoured-pastes",
	}
	for image, want := range cases {
		got, err := c.ProductIDForThumbnail(image)
		if err != nil {
			t.Fatalf("%s: %v", image, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", image, got, want)
		}
	}

	if _, err := c.ProductIDForThumbnail("assets/Products/f99.png"); err == nil {
		t.Error("expected error for unmapped image")
	}
}

func TestEveryThumbnailResolvesToCatalogProduct(t *testing.T) {
	t.Parallel()

	c := New()

	for image, id := range thumbnailIndex {
		p, err := c.ByID(id)
		if err != nil {
			t.Fatalf("%s maps to unknown product %q", image, id)
		}
		if p.ID != id {
			t.Errorf("%s: resolved %q", image, p.ID)
		}
	}
}

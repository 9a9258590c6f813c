package slider

import (
	"testing"
)

func newController(t *testing.T, cards, width int) *Controller {
	t.Helper()
	c, err := New(cards, width, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestBreakpoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width int
		want  int
	}{
		{320, 1},
		{768, 1},
		{769, 2},
		{1024, 2},
		{1025, 3},
		{1920, 3},
	}
	for _, tc := range cases {
		c := newController(t, 6, tc.width)
		if got := c.View().CardsPerView; got != tc.want {
			t.Errorf("width %d: cards per view = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestNextClampsAtLastPage(t *testing.T) {
	t.Parallel()

	// 6 cards at 3 per view = 2 pages.
	c := newController(t, 6, 1400)

	v := c.Next()
	if v.Index != 1 || v.CanNext {
		t.Errorf("after next: %+v", v)
	}
	v = c.Next()
	if v.Index != 1 {
		t.Errorf("next past end moved to %d, want clamp at 1", v.Index)
	}
}

func TestPrevClampsAtFirstPage(t *testing.T) {
	t.Parallel()

	c := newController(t, 6, 1400)

	v := c.Prev()
	if v.Index != 0 || v.CanPrev {
		t.Errorf("prev at start: %+v", v)
	}
}

func TestAutoAdvanceWraps(t *testing.T) {
	t.Parallel()

	c := newController(t, 6, 1400)

	c.autoAdvance()
	if got := c.View().Index; got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	c.autoAdvance()
	if got := c.View().Index; got != 0 {
		t.Errorf("index = %d, want wrap to 0", got)
	}
}

func TestGoToClamps(t *testing.T) {
	t.Parallel()

	c := newController(t, 9, 1400) // 3 pages

	if v := c.GoTo(2); v.Index != 2 {
		t.Errorf("GoTo(2) = %d", v.Index)
	}
	if v := c.GoTo(99); v.Index != 2 {
		t.Errorf("GoTo(99) = %d, want clamp to 2", v.Index)
	}
	if v := c.GoTo(-4); v.Index != 0 {
		t.Errorf("GoTo(-4) = %d, want 0", v.Index)
	}
}

func TestSwipeThreshold(t *testing.T) {
	t.Parallel()

	c := newController(t, 6, 1400)

	if v := c.Swipe(-30); v.Index != 0 {
		t.Errorf("sub-threshold swipe moved to %d", v.Index)
	}
	if v := c.Swipe(-50); v.Index != 1 {
		t.Errorf("left swipe = %d, want 1", v.Index)
	}
	if v := c.Swipe(80); v.Index != 0 {
		t.Errorf("right swipe = %d, want 0", v.Index)
	}
}

func TestResizeResetsOnBreakpointChange(t *testing.T) {
	t.Parallel()

	c := newController(t, 6, 1400)
	c.Next()

	v := c.Resize(700)
	if v.CardsPerView != 1 {
		t.Errorf("cards per view = %d, want 1", v.CardsPerView)
	}
	if v.Index != 0 {
		t.Errorf("index = %d, want reset to 0", v.Index)
	}
	if v.Pages != 6 || len(v.Dots) != 6 {
		t.Errorf("pages = %d dots = %d, want 6 each", v.Pages, len(v.Dots))
	}

	// Same breakpoint keeps position.
	c.Next()
	v = c.Resize(640)
	if v.Index != 1 {
		t.Errorf("index = %d, want unchanged 1", v.Index)
	}
}

func TestViewWindow(t *testing.T) {
	t.Parallel()

	c := newController(t, 7, 1400) // 3 pages of 3, last partial

	v := c.GoTo(2)
	if v.WindowStart != 6 || v.WindowEnd != 7 {
		t.Errorf("window = [%d,%d), want [6,7)", v.WindowStart, v.WindowEnd)
	}

	v = c.GoTo(0)
	if v.WindowStart != 0 || v.WindowEnd != 3 {
		t.Errorf("window = [%d,%d), want [0,3)", v.WindowStart, v.WindowEnd)
	}
	if !v.Dots[0] || v.Dots[1] || v.Dots[2] {
		t.Errorf("dots = %v", v.Dots)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	c, err := New(6, 1400, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Close()
	c.Close()
}

func TestNewRejectsEmptyDeck(t *testing.T) {
	t.Parallel()

	if _, err := New(0, 1400, 0); err == nil {
		t.Fatal("expected error for zero cards")
	}
}

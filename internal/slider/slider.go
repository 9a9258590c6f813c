package slider

import (
	"fmt"
	"sync"
	"time"
)

// Breakpoints for cards shown per view.
const (
	mobileMaxWidth = 768
	tabletMaxWidth = 1024
)

// View is a snapshot of the slider for rendering.
type View struct {
	Index        int    `json:"index"`
	Pages        int    `json:"pages"`
	CardsPerView int    `json:"cards_per_view"`
	WindowStart  int    `json:"window_start"`
	WindowEnd    int    `json:"window_end"`
	Dots         []bool `json:"dots"`
	CanPrev      bool   `json:"can_prev"`
	CanNext      bool   `json:"can_next"`
}

// Controller cycles a fixed card set through a paged viewport. Manual
// navigation clamps at the ends; the auto-advance tick wraps back to the
// first page. Safe for use from handlers and the ticker goroutine.
type Controller struct {
	mu             sync.Mutex
	cardCount      int
	cardsPerView   int
	index          int
	swipeThreshold int

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Option tweaks controller construction.
type Option func(*Controller)

// WithSwipeThreshold overrides the minimum swipe distance.
func WithSwipeThreshold(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.swipeThreshold = px
		}
	}
}

// New builds a controller for cardCount cards at the given viewport width.
// A positive autoAdvance starts the wrap-around ticker.
func New(cardCount, viewportWidth int, autoAdvance time.Duration, opts ...Option) (*Controller, error) {
	if cardCount < 1 {
		return nil, fmt.Errorf("card count must be positive")
	}
	c := &Controller{
		cardCount:      cardCount,
		cardsPerView:   cardsPerViewFor(viewportWidth),
		swipeThreshold: 50,
		done:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if autoAdvance > 0 {
		c.ticker = time.NewTicker(autoAdvance)
		go c.run()
	}
	return c, nil
}

func cardsPerViewFor(width int) int {
	switch {
	case width <= mobileMaxWidth:
		return 1
	case width <= tabletMaxWidth:
		return 2
	default:
		return 3
	}
}

func (c *Controller) run() {
	for {
		select {
		case <-c.done:
			return
		case <-c.ticker.C:
			c.autoAdvance()
		}
	}
}

// autoAdvance wraps from the last page back to the first.
func (c *Controller) autoAdvance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index >= c.pagesLocked()-1 {
		c.index = 0
	} else {
		c.index++
	}
}

func (c *Controller) pagesLocked() int {
	pages := (c.cardCount + c.cardsPerView - 1) / c.cardsPerView
	if pages < 1 {
		pages = 1
	}
	return pages
}

// resetTickerLocked restarts the auto-advance window after manual
// interaction.
func (c *Controller) resetTickerLocked(interval time.Duration) {
	if c.ticker != nil && interval > 0 {
		c.ticker.Reset(interval)
	}
}

// Next advances one page, clamped at the last page.
func (c *Controller) Next() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index < c.pagesLocked()-1 {
		c.index++
	}
	return c.viewLocked()
}

// Prev steps back one page, clamped at the first page.
func (c *Controller) Prev() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index > 0 {
		c.index--
	}
	return c.viewLocked()
}

// GoTo jumps to the dot's page. Out-of-range indices clamp.
func (c *Controller) GoTo(page int) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 0 {
		page = 0
	}
	if max := c.pagesLocked() - 1; page > max {
		page = max
	}
	c.index = page
	return c.viewLocked()
}

// Swipe maps a horizontal drag to page navigation. Positive deltaX is a
// rightward drag (previous page); below the threshold nothing moves.
func (c *Controller) Swipe(deltaX int) View {
	if deltaX <= -c.swipeThreshold {
		return c.Next()
	}
	if deltaX >= c.swipeThreshold {
		return c.Prev()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Resize recomputes the cards-per-view breakpoint. A breakpoint change
// rebuilds the dot row and resets to the first page.
func (c *Controller) Resize(viewportWidth int) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	if next := cardsPerViewFor(viewportWidth); next != c.cardsPerView {
		c.cardsPerView = next
		c.index = 0
	}
	return c.viewLocked()
}

// ResetTimer restarts the auto-advance countdown, mirroring the pause a
// manual interaction buys on the page.
func (c *Controller) ResetTimer(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetTickerLocked(interval)
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	pages := c.pagesLocked()
	dots := make([]bool, pages)
	dots[c.index] = true

	start := c.index * c.cardsPerView
	end := start + c.cardsPerView
	if end > c.cardCount {
		end = c.cardCount
	}

	return View{
		Index:        c.index,
		Pages:        pages,
		CardsPerView: c.cardsPerView,
		WindowStart:  start,
		WindowEnd:    end,
		Dots:         dots,
		CanPrev:      c.index > 0,
		CanNext:      c.index < pages-1,
	}
}

// Close stops the auto-advance goroutine. Safe to call more than once.
func (c *Controller) Close() {
	c.once.Do(func() {
		close(c.done)
		if c.ticker != nil {
			c.ticker.Stop()
		}
	})
}

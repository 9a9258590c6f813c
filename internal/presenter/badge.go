package presenter

// Affordance describes one cart-navigation element as the page reports it.
// Visibility depends on the viewport, so pages re-submit descriptors on
// resize.
type Affordance struct {
	ID                 string  `json:"id" validate:"required"`
	Attached           bool    `json:"attached"`
	Display            string  `json:"display"`
	Visibility         string  `json:"visibility"`
	Opacity            float64 `json:"opacity"`
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	InFooter           bool    `json:"in_footer"`
	InHiddenMobileMenu bool    `json:"in_hidden_mobile_menu"`
}

// Visible reports whether the affordance should carry a badge at all.
func (a Affordance) Visible() bool {
	if !a.Attached {
		return false
	}
	if a.Display == "none" || a.Visibility == "hidden" || a.Opacity == 0 {
		return false
	}
	if a.Width <= 0 || a.Height <= 0 {
		return false
	}
	if a.InFooter || a.InHiddenMobileMenu {
		return false
	}
	return true
}

// BadgeDecision tells the page what to do with one affordance's badge.
type BadgeDecision struct {
	AffordanceID string `json:"affordance_id"`
	Show         bool   `json:"show"`
	Count        int    `json:"count"`
}

// BadgePlan maps the cart's line count onto the reported affordances. A zero
// count removes every badge regardless of visibility.
func BadgePlan(count int, affordances []Affordance) []BadgeDecision {
	decisions := make([]BadgeDecision, 0, len(affordances))
	for _, a := range affordances {
		show := count > 0 && a.Visible()
		d := BadgeDecision{AffordanceID: a.ID, Show: show}
		if show {
			d.Count = count
		}
		decisions = append(decisions, d)
	}
	return decisions
}

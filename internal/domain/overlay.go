package domain

import "time"

// EventOverlay is a date-level annotation for private events and special
// pricing. Overlays are independent of unit-level status: they annotate
// the date itself and are never touched by cell status changes.
type EventOverlay struct {
	Date             time.Time // date only, normalized to midnight UTC
	Name             *string
	Price            *float64
	IsPrivateEvent   bool
	IsSpecialPricing bool
	CreatedAt        time.Time
	CreatedBy        int64
}

// HasName returns true if the overlay carries a non-empty event name
func (o *EventOverlay) HasName() bool {
	return o.Name != nil && *o.Name != ""
}

// HasPrice returns true if the overlay carries a positive price
func (o *EventOverlay) HasPrice() bool {
	return o.Price != nil && *o.Price > 0
}

// IsEmpty returns true if the overlay carries no payload: no name, no
// positive price and the private flag unset. The special-pricing flag
// alone does not count as payload, it is meaningless without a price.
func (o *EventOverlay) IsEmpty() bool {
	return !o.HasName() && !o.HasPrice() && !o.IsPrivateEvent
}

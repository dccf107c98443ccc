package shop

import (
	"fmt"
	"strconv"

	"github.com/m3rciful/furnibot/internal/catalog"
	"github.com/m3rciful/furnibot/internal/render"
)

// Event is a parsed callback action. Parsing happens once at the
// transport boundary; the engine only sees valid events.
type Event interface {
	isEvent()
}

// FilterChosen selects a room category from the filter keyboard.
type FilterChosen struct {
	Room catalog.Room
}

// ProductChosen selects a product to add to the cart.
type ProductChosen struct {
	ID int64
}

// QuantityChosen picks a quantity for the pending product selection.
type QuantityChosen struct {
	N int
}

func (FilterChosen) isEvent()   {}
func (ProductChosen) isEvent()  {}
func (QuantityChosen) isEvent() {}

// ParseCallback decodes a callback key and payload into an Event.
// Unknown keys and malformed payloads yield an error; callers drop
// those updates silently.
func ParseCallback(kind, payload string) (Event, error) {
	switch kind {
	case render.CallbackFilter:
		room, ok := catalog.ParseRoom(payload)
		if !ok {
			return nil, fmt.Errorf("unknown room %q", payload)
		}
		return FilterChosen{Room: room}, nil
	case render.CallbackItem:
		id, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad product id %q", payload)
		}
		return ProductChosen{ID: id}, nil
	case render.CallbackQuantity:
		n, err := strconv.Atoi(payload)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad quantity %q", payload)
		}
		return QuantityChosen{N: n}, nil
	default:
		return nil, fmt.Errorf("unknown callback %q", kind)
	}
}

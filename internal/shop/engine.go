// Package shop implements the conversation flow of the furniture store:
// catalog browsing, room filters, and the add-to-cart/order cycle. The
// engine is transport-free; the telegram layer turns its replies into
// messages and keyboards.
package shop

import (
	"context"
	"errors"

	"github.com/m3rciful/furnibot/core/logger"
	"github.com/m3rciful/furnibot/internal/cart"
	"github.com/m3rciful/furnibot/internal/catalog"
	"github.com/m3rciful/furnibot/internal/render"
	"log/slog"
)

// ErrNoSelection is returned when a quantity arrives without a pending
// product selection, e.g. a stale keyboard pressed twice.
var ErrNoSelection = errors.New("no pending selection")

// Fetcher supplies the current product list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Product, error)
}

// Reply is one outgoing message: text plus an optional inline keyboard
// or reply menu.
type Reply struct {
	Text        string
	Inline      [][]render.Button
	Menu        [][]string
	MenuOneTime bool
}

// Engine drives the shop conversation over a live catalog and in-memory
// carts.
type Engine struct {
	catalog  Fetcher
	sessions *cart.Store
}

func NewEngine(fetcher Fetcher, sessions *cart.Store) *Engine {
	return &Engine{catalog: fetcher, sessions: sessions}
}

// Sessions exposes the session store for diagnostics.
func (e *Engine) Sessions() *cart.Store {
	return e.sessions
}

// Greet builds the welcome message with the one-time action menu.
func (e *Engine) Greet() Reply {
	return Reply{
		Text:        render.Greeting,
		Menu:        render.MenuRows(),
		MenuOneTime: true,
	}
}

// ShowCatalog fetches the assortment and renders the full listing. The
// header and the listing are separate messages, in order.
func (e *Engine) ShowCatalog(ctx context.Context) ([]Reply, error) {
	products, err := e.catalog.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return []Reply{
		{Text: render.CatalogHeader},
		{Text: render.Catalog(products)},
	}, nil
}

// FilterMenu builds the room filter keyboard. No fetch happens until a
// room is actually chosen.
func (e *Engine) FilterMenu() Reply {
	return Reply{
		Text:   render.FilterPrompt,
		Inline: render.FilterButtons(),
	}
}

// ApplyFilter fetches the catalog and renders one room's products.
func (e *Engine) ApplyFilter(ctx context.Context, room catalog.Room) (Reply, error) {
	products, err := e.catalog.Fetch(ctx)
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		Text: render.FilteredList(room, catalog.FilterByRoom(products, room)),
	}, nil
}

// BuildCart starts or resumes the add-to-cart flow: fetch the catalog,
// then offer a product picker. The session is touched only after a
// successful fetch, so a failed load never creates empty state.
func (e *Engine) BuildCart(ctx context.Context, userID int64) (Reply, error) {
	products, err := e.catalog.Fetch(ctx)
	if err != nil {
		return Reply{}, err
	}
	e.sessions.Touch(userID)
	return Reply{
		Text:   render.ProductPrompt,
		Inline: render.ProductButtons(products),
	}, nil
}

// ChooseProduct records the pending selection and asks for a quantity.
// Choosing again before picking a quantity replaces the pending product.
func (e *Engine) ChooseProduct(userID int64, productID int64) Reply {
	e.sessions.Update(userID, func(s *cart.Session) {
		s.Pending = &cart.Selection{ProductID: productID}
	})
	return Reply{
		Text:   render.QuantityPrompt,
		Inline: render.QuantityButtons(),
	}
}

// ChooseQuantity commits the pending selection as a cart line and
// re-offers the product picker for the next addition. The check-append-
// clear step is atomic per user; without a pending selection it returns
// ErrNoSelection and changes nothing.
func (e *Engine) ChooseQuantity(ctx context.Context, userID int64, quantity int) (Reply, error) {
	committed := false
	e.sessions.Update(userID, func(s *cart.Session) {
		if s.Pending == nil {
			return
		}
		s.Lines = append(s.Lines, cart.Line{ProductID: s.Pending.ProductID, Quantity: quantity})
		s.Pending = nil
		committed = true
	})
	if !committed {
		return Reply{}, ErrNoSelection
	}

	products, err := e.catalog.Fetch(ctx)
	if err != nil {
		// The line is already in the cart; only the follow-up picker
		// is lost.
		return Reply{}, err
	}
	return Reply{
		Text:   render.ProductPrompt,
		Inline: render.ProductButtons(products),
	}, nil
}

// CreateOrder renders the cart summary priced against the current
// catalog. An empty cart answers immediately without a fetch. Lines for
// products that vanished from the catalog are dropped from the summary.
func (e *Engine) CreateOrder(ctx context.Context, userID int64) (Reply, error) {
	snap := e.sessions.Snapshot(userID)
	if len(snap.Lines) == 0 {
		return Reply{Text: render.EmptyCart}, nil
	}

	products, err := e.catalog.Fetch(ctx)
	if err != nil {
		return Reply{}, err
	}

	text, skipped := render.OrderSummary(snap.Lines, products)
	if skipped > 0 {
		logger.Warn(ctx, logger.SVCShop, "order.lines_skipped",
			slog.Int64("user_id", userID),
			slog.Int("skipped", skipped),
		)
	}
	return Reply{Text: text}, nil
}

// Cancel clears the user's cart and pending selection.
func (e *Engine) Cancel(userID int64) Reply {
	e.sessions.ClearCart(userID)
	return Reply{Text: render.CartCleared}
}

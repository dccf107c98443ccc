package app

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/furnibot/core/logger"
	tgcallbacks "github.com/m3rciful/furnibot/core/telegram/callbacks"
	"github.com/m3rciful/furnibot/core/telegram/helpers"
	"github.com/m3rciful/furnibot/internal/shop"
	"log/slog"
)

// registerCallbacks binds the inline keyboard actions. Unknown callback
// keys and unmatched free text are contract no-ops; explicit fallback
// handlers make the drops visible in debug logs.
func (a *App) registerCallbacks() {
	_ = a.registry.RegisterCallback("filter", a.handleCallback)
	_ = a.registry.RegisterCallback("item", a.handleCallback)
	_ = a.registry.RegisterCallback("quantity", a.handleCallback)
	a.registry.SetCallbackNotFound(a.handleUnknownCallback)
	a.registry.SetTextFallback(a.handleUnknownText)
}

func (a *App) handleUnknownCallback(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	logger.Debug(ctx, logger.SVCShop, "callback.unknown",
		slog.String("cb_key", logger.SanitizeLimit(tgcallbacks.CallbackKey(c), 64)),
	)
	return nil
}

func (a *App) handleUnknownText(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	logger.Debug(ctx, logger.SVCShop, "text.unmatched",
		slog.String("payload", logger.SanitizeLimit(c.Text(), 64)),
	)
	return nil
}

// handleCallback parses the pressed button once and dispatches the
// resulting event. Malformed payloads are logged and dropped; the user
// already got the ack from the router.
func (a *App) handleCallback(c tele.Context) error {
	userID, ok := senderID(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)

	key := tgcallbacks.CallbackKey(c)
	payload := tgcallbacks.CallbackPayload(c)
	event, err := shop.ParseCallback(key, payload)
	if err != nil {
		logger.Debug(ctx, logger.SVCShop, "callback.dropped",
			slog.String("cb_key", key),
			slog.String("err", err.Error()),
		)
		return nil
	}

	switch ev := event.(type) {
	case shop.FilterChosen:
		reply, err := a.engine.ApplyFilter(ctx, ev.Room)
		if err != nil {
			return replyCatalogErr(c, err)
		}
		return sendReply(c, reply)

	case shop.ProductChosen:
		return sendReply(c, a.engine.ChooseProduct(userID, ev.ID))

	case shop.QuantityChosen:
		reply, err := a.engine.ChooseQuantity(ctx, userID, ev.N)
		if errors.Is(err, shop.ErrNoSelection) {
			// Stale quantity keyboard pressed again: nothing to commit.
			logger.Debug(ctx, logger.SVCShop, "callback.stale_quantity",
				slog.Int64("user_id", userID),
			)
			return nil
		}
		if err != nil {
			return replyCatalogErr(c, err)
		}
		return sendReply(c, reply)
	}
	return nil
}

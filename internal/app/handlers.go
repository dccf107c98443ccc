package app

import (
	"errors"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/furnibot/core/buildinfo"
	"github.com/m3rciful/furnibot/core/telegram/commands"
	"github.com/m3rciful/furnibot/core/telegram/helpers"
	"github.com/m3rciful/furnibot/core/telegram/keyboard"
	"github.com/m3rciful/furnibot/internal/catalog"
	"github.com/m3rciful/furnibot/internal/render"
	"github.com/m3rciful/furnibot/internal/shop"
)

// registerCommands binds the slash commands. Aliases carry the reply
// keyboard labels so menu taps route to the same handlers.
func (a *App) registerCommands() {
	a.registry.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Приветствие и меню действий",
	})
	a.registry.RegisterCommand("/items", commands.Command{
		Handler:     a.handleItems,
		Description: "Показать все товары",
		Aliases:     []string{"Показать все"},
	})
	a.registry.RegisterCommand("/filter", commands.Command{
		Handler:     a.handleFilter,
		Description: "Фильтр по комнатам",
		Aliases:     []string{"Фильтровать"},
	})
	a.registry.RegisterCommand("/additem", commands.Command{
		Handler:     a.handleAddItem,
		Description: "Добавить товар в корзину",
		Aliases:     []string{"Добавить в корзину"},
	})
	a.registry.RegisterCommand("/order", commands.Command{
		Handler:     a.handleOrder,
		Description: "Создать заказ",
		Aliases:     []string{"Создать заказ"},
	})
	a.registry.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Очистить корзину",
	})
	a.registry.RegisterCommand("/status", commands.Command{
		Handler:     a.handleStatus,
		Description: "Диагностика бота",
		AdminOnly:   true,
		Hidden:      true,
	})
}

// sendReply turns an engine reply into a Telegram message with the
// matching keyboard.
func sendReply(c tele.Context, r shop.Reply) error {
	switch {
	case len(r.Inline) > 0:
		return helpers.SendMarkup(c, r.Text, inlineMarkup(r.Inline))
	case len(r.Menu) > 0:
		markup := keyboard.ReplyButtons(r.Menu...)
		markup.OneTimeKeyboard = r.MenuOneTime
		return helpers.SendMarkup(c, r.Text, markup)
	default:
		return helpers.SendText(c, r.Text)
	}
}

func inlineMarkup(rows [][]render.Button) *tele.ReplyMarkup {
	converted := make([][]keyboard.InlineBtn, len(rows))
	for i, row := range rows {
		btns := make([]keyboard.InlineBtn, len(row))
		for j, b := range row {
			btns[j] = keyboard.InlineBtn{Text: b.Label, Unique: b.Kind, Data: b.Data}
		}
		converted[i] = btns
	}
	return keyboard.InlineButtonsRows(converted...)
}

// replyCatalogErr maps a failed catalog fetch to the user-facing error
// message; anything else propagates to the router summary.
func replyCatalogErr(c tele.Context, err error) error {
	if errors.Is(err, catalog.ErrUnavailable) {
		return helpers.SendText(c, render.LoadFailed)
	}
	return err
}

func senderID(c tele.Context) (int64, bool) {
	if s := c.Sender(); s != nil {
		return s.ID, true
	}
	return 0, false
}

func (a *App) handleStart(c tele.Context) error {
	return sendReply(c, a.engine.Greet())
}

func (a *App) handleItems(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	replies, err := a.engine.ShowCatalog(ctx)
	if err != nil {
		return replyCatalogErr(c, err)
	}
	// Header and listing ride one dispatcher job; separate jobs could be
	// delivered out of order by concurrent sender workers.
	texts := make([]string, len(replies))
	for i, r := range replies {
		texts[i] = r.Text
	}
	return helpers.SendTexts(c, texts...)
}

func (a *App) handleFilter(c tele.Context) error {
	return sendReply(c, a.engine.FilterMenu())
}

func (a *App) handleAddItem(c tele.Context) error {
	userID, ok := senderID(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)
	reply, err := a.engine.BuildCart(ctx, userID)
	if err != nil {
		return replyCatalogErr(c, err)
	}
	return sendReply(c, reply)
}

func (a *App) handleOrder(c tele.Context) error {
	userID, ok := senderID(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)
	reply, err := a.engine.CreateOrder(ctx, userID)
	if err != nil {
		return replyCatalogErr(c, err)
	}
	return sendReply(c, reply)
}

func (a *App) handleCancel(c tele.Context) error {
	userID, ok := senderID(c)
	if !ok {
		return nil
	}
	return sendReply(c, a.engine.Cancel(userID))
}

func (a *App) handleStatus(c tele.Context) error {
	text := fmt.Sprintf(
		"furnibot %s (%s)\nuptime: %s\nsessions: %d\nsend errors: %d",
		buildinfo.Version,
		buildinfo.Commit,
		time.Since(a.startedAt).Round(time.Second),
		a.engine.Sessions().Len(),
		a.dispatcher.ErrorCount(),
	)
	return helpers.SendText(c, text)
}

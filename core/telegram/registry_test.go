package telegram

import (
	"testing"

	"github.com/m3rciful/furnibot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestLookupCommandByAlias(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/items", commands.Command{
		Handler:     noop,
		Description: "show catalog",
		Aliases:     []string{"Показать все"},
	})

	key, _, ok := reg.LookupCommand("Показать все")
	if !ok {
		t.Fatal("alias lookup failed")
	}
	if key != "/items" {
		t.Fatalf("canonical key = %s", key)
	}

	if _, _, ok := reg.LookupCommand("/items"); !ok {
		t.Fatal("direct lookup failed")
	}
	if _, _, ok := reg.LookupCommand("items"); !ok {
		t.Fatal("slashless lookup failed")
	}
	if _, _, ok := reg.LookupCommand("что-то ещё"); ok {
		t.Fatal("unexpected match for free text")
	}
}

func TestRegisterCommandValidation(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("items", commands.Command{Handler: noop, Description: "no slash"})
	reg.RegisterCommand("/items", commands.Command{Description: "nil handler"})
	if len(reg.Commands()) != 0 {
		t.Fatalf("invalid registrations accepted: %d", len(reg.Commands()))
	}

	reg.RegisterCommand("/items", commands.Command{Handler: noop, Description: "ok"})
	reg.RegisterCommand("/items", commands.Command{Handler: noop, Description: "duplicate"})
	if len(reg.Commands()) != 1 {
		t.Fatalf("expected 1 command, got %d", len(reg.Commands()))
	}
}

func TestListCommandsHidesAdminAndHidden(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/items", commands.Command{Handler: noop, Description: "show"})
	reg.RegisterCommand("/status", commands.Command{Handler: noop, Description: "status", AdminOnly: true, Hidden: true})

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "/items" {
		t.Fatalf("unexpected visible commands: %+v", visible)
	}
	if all := reg.ListCommands(false); len(all) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(all))
	}
}

func TestRegisterCallback(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("item", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("item", noop); err == nil {
		t.Fatal("duplicate registration accepted")
	}
	if _, ok := reg.GetCallback("item"); !ok {
		t.Fatal("callback not found")
	}
	if keys := reg.ListCallbacks(); len(keys) != 1 || keys[0] != "item" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

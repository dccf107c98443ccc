// Package render builds the user-facing texts and keyboard layouts of the
// shop conversation. Builders are pure: no transport, no session access.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m3rciful/furnibot/internal/cart"
	"github.com/m3rciful/furnibot/internal/catalog"
)

// Callback keys shared with the transport layer.
const (
	CallbackFilter   = "filter"
	CallbackItem     = "item"
	CallbackQuantity = "quantity"
)

// Fixed replies.
const (
	CatalogHeader  = "Все товары"
	FilterPrompt   = "Выберите фильтр по комнатам"
	ProductPrompt  = "Выберите товар, чтобы добавить его в корзину."
	QuantityPrompt = "Введите количество товаров."
	EmptyCart      = "Ничего не выбрано"
	CartCleared    = "Ваша корзина была очищена"
	LoadFailed     = "Возникла ошибка при загрузке."
	Greeting       = "Здравствуйте! Я бот IkeaShop! Посетите наш сайт http://фурнитуре.рф/. Я готов вам помочь. Пожалуйста выберите действие:"
)

// The quantity picker offers 1 through 8.
const maxQuantity = 8

// Button is a transport-neutral inline button: Kind and Data form the
// callback payload, Label is what the user sees.
type Button struct {
	Label string
	Kind  string
	Data  string
}

// MenuRows is the persistent action menu shown after /start. Labels double
// as text commands.
func MenuRows() [][]string {
	return [][]string{
		{"Показать все", "Фильтровать"},
		{"Добавить в корзину", "Создать заказ"},
	}
}

// Catalog renders the full product listing. Items are numbered by their
// position in the list, starting from 1.
func Catalog(products []catalog.Product) string {
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "%d %s\n%s\n\n", i+1, p.Title, p.Description)
	}
	return b.String()
}

// FilterButtons returns one row with a button per room category.
func FilterButtons() [][]Button {
	row := make([]Button, 0, len(catalog.Rooms()))
	for _, room := range catalog.Rooms() {
		row = append(row, Button{Label: room.Label(), Kind: CallbackFilter, Data: room.Key()})
	}
	return [][]Button{row}
}

// FilteredList renders the titles of one room's products as a single line.
func FilteredList(room catalog.Room, products []catalog.Product) string {
	titles := make([]string, 0, len(products))
	for _, p := range products {
		titles = append(titles, p.Title)
	}
	return fmt.Sprintf("%s: %s", room.Label(), strings.Join(titles, ", "))
}

// ProductButtons returns one button per product, one per row, carrying the
// product id as callback data.
func ProductButtons(products []catalog.Product) [][]Button {
	rows := make([][]Button, 0, len(products))
	for _, p := range products {
		rows = append(rows, []Button{{
			Label: p.Title,
			Kind:  CallbackItem,
			Data:  strconv.FormatInt(p.ID, 10),
		}})
	}
	return rows
}

// QuantityButtons returns the quantity choices 1..8, one per row.
func QuantityButtons() [][]Button {
	rows := make([][]Button, 0, maxQuantity)
	for n := 1; n <= maxQuantity; n++ {
		label := strconv.Itoa(n)
		rows = append(rows, []Button{{Label: label, Kind: CallbackQuantity, Data: label}})
	}
	return rows
}

// OrderSummary renders the cart against a catalog snapshot. Lines whose
// product no longer exists are skipped and reported; the total covers only
// the rendered lines.
func OrderSummary(lines []cart.Line, products []catalog.Product) (string, int) {
	var b strings.Builder
	var total int64
	skipped := 0
	row := 0
	for _, line := range lines {
		p, ok := catalog.FindByID(products, line.ProductID)
		if !ok {
			skipped++
			continue
		}
		row++
		price := p.Price * int64(line.Quantity)
		fmt.Fprintf(&b, "%d %s Количество: %d Цена: %d \n", row, p.Title, line.Quantity, price)
		total += price
	}
	fmt.Fprintf(&b, "Цена итого: %d", total)
	return b.String(), skipped
}

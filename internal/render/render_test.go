package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/furnibot/internal/cart"
	"github.com/m3rciful/furnibot/internal/catalog"
)

var testProducts = []catalog.Product{
	{ID: 10, Title: "Стол", Description: "Кухонный стол", Price: 5000, Room: catalog.RoomKitchen},
	{ID: 20, Title: "Кровать", Description: "Двуспальная кровать", Price: 20000, Room: catalog.RoomBedroom},
	{ID: 30, Title: "Зеркало", Description: "Настенное зеркало", Price: 3000, Room: catalog.RoomBathroom},
}

func TestCatalogNumbersByPosition(t *testing.T) {
	got := Catalog(testProducts)
	want := "1 Стол\nКухонный стол\n\n" +
		"2 Кровать\nДвуспальная кровать\n\n" +
		"3 Зеркало\nНастенное зеркало\n\n"
	assert.Equal(t, want, got)
}

func TestCatalogEmpty(t *testing.T) {
	assert.Equal(t, "", Catalog(nil))
}

func TestFilterButtons(t *testing.T) {
	rows := FilterButtons()
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 3)
	assert.Equal(t, Button{Label: "Кухня", Kind: CallbackFilter, Data: "kitchen"}, rows[0][0])
	assert.Equal(t, Button{Label: "Спальня", Kind: CallbackFilter, Data: "bedroom"}, rows[0][1])
	assert.Equal(t, Button{Label: "Ванная", Kind: CallbackFilter, Data: "bathroom"}, rows[0][2])
}

func TestFilteredList(t *testing.T) {
	kitchen := catalog.FilterByRoom(testProducts, catalog.RoomKitchen)
	assert.Equal(t, "Кухня: Стол", FilteredList(catalog.RoomKitchen, kitchen))

	assert.Equal(t, "Ванная: ", FilteredList(catalog.RoomBathroom, nil))
}

func TestProductButtons(t *testing.T) {
	rows := ProductButtons(testProducts)
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Len(t, row, 1)
	}
	assert.Equal(t, Button{Label: "Стол", Kind: CallbackItem, Data: "10"}, rows[0][0])
	assert.Equal(t, Button{Label: "Зеркало", Kind: CallbackItem, Data: "30"}, rows[2][0])
}

func TestQuantityButtons(t *testing.T) {
	rows := QuantityButtons()
	require.Len(t, rows, 8)
	assert.Equal(t, Button{Label: "1", Kind: CallbackQuantity, Data: "1"}, rows[0][0])
	assert.Equal(t, Button{Label: "8", Kind: CallbackQuantity, Data: "8"}, rows[7][0])
}

func TestOrderSummary(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 10, Quantity: 2},
		{ProductID: 20, Quantity: 1},
	}
	text, skipped := OrderSummary(lines, testProducts)
	want := "1 Стол Количество: 2 Цена: 10000 \n" +
		"2 Кровать Количество: 1 Цена: 20000 \n" +
		"Цена итого: 30000"
	assert.Equal(t, want, text)
	assert.Zero(t, skipped)
}

func TestOrderSummarySkipsVanishedProducts(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 10, Quantity: 1},
		{ProductID: 999, Quantity: 3},
		{ProductID: 30, Quantity: 2},
	}
	text, skipped := OrderSummary(lines, testProducts)
	want := "1 Стол Количество: 1 Цена: 5000 \n" +
		"2 Зеркало Количество: 2 Цена: 6000 \n" +
		"Цена итого: 11000"
	assert.Equal(t, want, text)
	assert.Equal(t, 1, skipped)
}

func TestOrderSummaryDuplicateLines(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 10, Quantity: 1},
		{ProductID: 10, Quantity: 1},
	}
	text, skipped := OrderSummary(lines, testProducts)
	want := "1 Стол Количество: 1 Цена: 5000 \n" +
		"2 Стол Количество: 1 Цена: 5000 \n" +
		"Цена итого: 10000"
	assert.Equal(t, want, text)
	assert.Zero(t, skipped)
}

func TestMenuRows(t *testing.T) {
	rows := MenuRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Показать все", "Фильтровать"}, rows[0])
	assert.Equal(t, []string{"Добавить в корзину", "Создать заказ"}, rows[1])
}

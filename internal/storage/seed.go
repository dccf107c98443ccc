package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/furnibot/core/logger"
	"github.com/m3rciful/furnibot/internal/catalog"
	"log/slog"
)

var defaultProducts = []catalog.Product{
	{ID: 1, Title: "Стол", Description: "Кухонный стол из дуба", Price: 5000, Room: catalog.RoomKitchen},
	{ID: 2, Title: "Стул", Description: "Кухонный стул", Price: 1500, Room: catalog.RoomKitchen},
	{ID: 3, Title: "Кровать", Description: "Двуспальная кровать", Price: 20000, Room: catalog.RoomBedroom},
	{ID: 4, Title: "Шкаф", Description: "Платяной шкаф", Price: 15000, Room: catalog.RoomBedroom},
	{ID: 5, Title: "Зеркало", Description: "Настенное зеркало", Price: 3000, Room: catalog.RoomBathroom},
	{ID: 6, Title: "Полка", Description: "Полка для ванной", Price: 1200, Room: catalog.RoomBathroom},
}

// SeedProducts inserts the default assortment, skipping rows that already
// exist. It implements bootstrap.Seeder.
func SeedProducts(ctx context.Context, db *sqlx.DB) error {
	inserted := 0
	for _, p := range defaultProducts {
		res, err := db.ExecContext(ctx,
			`INSERT INTO products (id, title, description, price, room)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Title, p.Description, p.Price, p.Room)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	logger.SEED.LogAttrs(ctx, slog.LevelInfo, "products.seeded",
		slog.Int("inserted", inserted),
		slog.Int("total", len(defaultProducts)),
	)
	return nil
}

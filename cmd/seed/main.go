// Seeds the menu collection with the café's standard catalog. Idempotent:
// items are upserted by their slug id.
package main

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/repository"
	"github.com/chmanikanta24/cafe-storefront/pkg/config"
)

var seedItems = []domain.MenuItem{
	{Name: "Espresso", Price: 120, Category: "Beverage", Img: "https://picsum.photos/seed/espresso/400/300"},
	{Name: "Cappuccino", Price: 180, Category: "Beverage", Img: "https://picsum.photos/seed/cappuccino/400/300"},
	{Name: "Latte", Price: 200, Category: "Beverage", Img: "https://picsum.photos/seed/latte/400/300"},
	{Name: "Americano", Price: 150, Category: "Beverage", Img: "https://picsum.photos/seed/americano/400/300"},
	{Name: "Mocha", Price: 230, Category: "Beverage", Img: "https://picsum.photos/seed/mocha/400/300"},
	{Name: "Cold Brew", Price: 220, Category: "Beverage", Img: "https://picsum.photos/seed/coldbrew/400/300"},
	{Name: "Matcha Latte", Price: 250, Category: "Beverage", Img: "https://picsum.photos/seed/matcha/400/300"},
	{Name: "Butter Croissant", Price: 90, Category: "Bakery", Img: "https://picsum.photos/seed/croissant/400/300"},
	{Name: "Chocolate Chip Cookie", Price: 70, Category: "Bakery", Img: "https://picsum.photos/seed/cookie/400/300"},
	{Name: "Blueberry Muffin", Price: 100, Category: "Bakery", Img: "https://picsum.photos/seed/muffin/400/300"},
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	dashRuns     = regexp.MustCompile(`-+`)
)

func toSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return dashRuns.ReplaceAllString(s, "-")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.MongoURI == "" {
		logger.Fatal("MONGODB_URI not set. Create a .env with MONGODB_URI=...")
	}

	ctx := context.Background()
	db, err := repository.NewMongoDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Client().Disconnect(ctx)

	menuRepo := repository.NewMenuRepository(db, cfg.MenuCollection)

	seeded := 0
	for _, item := range seedItems {
		if item.ID == "" {
			item.ID = toSlug(item.Name)
		}
		if err := menuRepo.Upsert(ctx, item); err != nil {
			logger.Error("Seeding failed", zap.String("id", item.ID), zap.Error(err))
			continue
		}
		seeded++
	}

	logger.Info("Seeding completed",
		zap.Int("seeded", seeded),
		zap.Int("total", len(seedItems)))
}

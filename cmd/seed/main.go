// Command seed loads demo categories, products, users and orders so the
// dashboard and reports have data to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/models/m_category"
	"github.com/light-bringer/backoffice-service/internal/models/m_order"
	"github.com/light-bringer/backoffice-service/internal/models/m_order_item"
	"github.com/light-bringer/backoffice-service/internal/models/m_product"
	"github.com/light-bringer/backoffice-service/internal/models/m_user"
)

var database = flag.String("database",
	getEnvOrDefault("BACKOFFICE_SPANNER_DATABASE",
		"projects/test-project/instances/dev-instance/databases/backoffice-db"),
	"Fully qualified Spanner database path")

type seedProduct struct {
	name        string
	description string
	category    string
	priceCents  int64
	stock       int64
}

var seedCategories = []struct{ name, description string }{
	{"Electronics", "Phones, audio and accessories"},
	{"Books", "Fiction and technical titles"},
	{"Home", "Kitchen and household goods"},
}

var seedProducts = []seedProduct{
	{"Wireless Headphones", "Over-ear, noise cancelling", "Electronics", 12999, 42},
	{"USB-C Charger", "65W fast charger", "Electronics", 3499, 180},
	{"Mechanical Keyboard", "Tenkeyless, brown switches", "Electronics", 8999, 35},
	{"The Pragmatic Shelf", "Essays on software craft", "Books", 2999, 120},
	{"Distributed Systems Primer", "Consensus and replication", "Books", 4599, 64},
	{"Cast Iron Skillet", "26cm, pre-seasoned", "Home", 3999, 75},
	{"French Press", "0.6l borosilicate glass", "Home", 2499, 90},
	{"Desk Lamp", "Dimmable, warm white", "Home", 1999, 150},
}

var seedUsers = []struct{ email, name, role string }{
	{"admin@example.com", "Admin", "admin"},
	{"alice@example.com", "Alice Carter", "customer"},
	{"bob@example.com", "Bob Nguyen", "customer"},
	{"carol@example.com", "Carol Osei", "customer"},
}

var orderStatuses = []string{"pending", "paid", "paid", "shipped", "delivered"}

func main() {
	flag.Parse()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, *database)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding completed")
}

func seed(ctx context.Context, client *spanner.Client) error {
	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	categoryModel := m_category.NewModel()
	productModel := m_product.NewModel()
	userModel := m_user.NewModel()
	orderModel := m_order.NewModel()
	itemModel := m_order_item.NewModel()

	var muts []*spanner.Mutation

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		id := uuid.New().String()
		categoryIDs[c.name] = id
		muts = append(muts, categoryModel.InsertMut(&m_category.Data{
			CategoryID:  id,
			Name:        c.name,
			Description: c.description,
		}))
	}

	type seededProduct struct {
		id         string
		priceCents int64
	}
	products := make([]seededProduct, 0, len(seedProducts))
	for _, p := range seedProducts {
		id := uuid.New().String()
		products = append(products, seededProduct{id: id, priceCents: p.priceCents})
		muts = append(muts, productModel.InsertMut(&m_product.Data{
			ProductID:                id,
			Name:                     p.name,
			Description:              p.description,
			CategoryID:               categoryIDs[p.category],
			PriceNumerator:           p.priceCents,
			PriceDenominator:         100,
			BaselinePriceNumerator:   p.priceCents,
			BaselinePriceDenominator: 100,
			Stock:                    p.stock,
			CreatedAt:                now,
			UpdatedAt:                now,
		}))
	}

	var customerIDs []string
	for _, u := range seedUsers {
		id := uuid.New().String()
		if u.role == "customer" {
			customerIDs = append(customerIDs, id)
		}
		muts = append(muts, userModel.InsertMut(&m_user.Data{
			UserID:    id,
			Email:     u.email,
			Name:      u.name,
			Role:      u.role,
			CreatedAt: now,
		}))
	}

	for n := 0; n < 20; n++ {
		orderID := uuid.New().String()
		userID := customerIDs[rng.Intn(len(customerIDs))]
		createdAt := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)

		var totalCents int64
		itemCount := 1 + rng.Intn(3)
		for i := 0; i < itemCount; i++ {
			p := products[rng.Intn(len(products))]
			qty := int64(1 + rng.Intn(3))
			totalCents += p.priceCents * qty
			muts = append(muts, itemModel.InsertMut(&m_order_item.Data{
				OrderID:          orderID,
				ItemID:           fmt.Sprintf("%s-%d", orderID, i),
				ProductID:        p.id,
				Quantity:         qty,
				PriceNumerator:   p.priceCents,
				PriceDenominator: 100,
			}))
		}

		muts = append(muts, orderModel.InsertMut(&m_order.Data{
			OrderID:          orderID,
			UserID:           userID,
			TotalNumerator:   totalCents,
			TotalDenominator: 100,
			Status:           orderStatuses[rng.Intn(len(orderStatuses))],
			CreatedAt:        createdAt,
		}))
	}

	if _, err := client.Apply(ctx, muts); err != nil {
		return fmt.Errorf("failed to apply seed mutations: %w", err)
	}
	log.Printf("Seeded %d categories, %d products, %d users, 20 orders",
		len(seedCategories), len(seedProducts), len(seedUsers))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// cmd/seedadmin/main.go — registers a demo business with its admin user.
// Usage: go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/Saad200724/ZnPOS/internal/config"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/infra"
	"github.com/Saad200724/ZnPOS/internal/repository"
	"github.com/Saad200724/ZnPOS/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}

	seq := repository.NewSequencer(db)
	businesses := repository.NewBusinessRepository(db, seq)
	users := repository.NewUserRepository(db, seq)
	svc := service.NewBusinessService(businesses, users, cfg.BcryptCost)

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "1234")

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		BusinessName:  envOr("SEED_BUSINESS_NAME", "Demo Store"),
		Email:         envOr("SEED_BUSINESS_EMAIL", "demo@znpos.local"),
		TaxRate:       decimal.NewFromFloat(7.5),
		Currency:      envOr("SEED_CURRENCY", "USD"),
		AdminUsername: username,
		AdminEmail:    envOr("SEED_ADMIN_EMAIL", "admin@znpos.local"),
		AdminPassword: password,
	})
	if err != nil {
		log.Fatalf("register error: %v", err)
	}

	fmt.Printf("business %d created, admin '%s' with password '%s'\n",
		resp.BusinessID, username, password)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

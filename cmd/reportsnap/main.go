// cmd/reportsnap/main.go — prints a one-shot report snapshot for a business.
// Usage: go run ./cmd/reportsnap <businessID>
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/config"
	"github.com/Saad200724/ZnPOS/internal/infra"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
	"github.com/Saad200724/ZnPOS/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: reportsnap <businessID>")
	}
	businessID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("invalid business id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis connect error: %v", err)
	}

	seq := repository.NewSequencer(db)
	products := repository.NewProductRepository(db, seq)
	reports := repository.NewReportRepository(db)
	svc := service.NewReportService(reports, products, rdb,
		time.Duration(cfg.ReportCacheTTLSeconds)*time.Second)

	// Operational tool: read with a synthesized admin principal.
	p := &authz.Principal{
		UserID:     1,
		BusinessID: businessID,
		Role:       model.RoleAdmin,
	}

	stats, err := svc.DashboardStats(ctx, p)
	if err != nil {
		log.Fatalf("dashboard stats error: %v", err)
	}
	fmt.Printf("today: %s across %d transactions (avg %s)\n",
		stats.TodaySales, stats.TodayTransactions, stats.AverageSale)

	top, err := svc.TopProducts(ctx, p, 5)
	if err != nil {
		log.Fatalf("top products error: %v", err)
	}
	for i, t := range top {
		fmt.Printf("%d. %s — %d sold, revenue %s\n", i+1, t.Name, t.SoldCount, t.Revenue)
	}

	low, err := svc.LowStockProducts(ctx, p)
	if err != nil {
		log.Fatalf("low stock error: %v", err)
	}
	for _, prod := range low {
		fmt.Printf("low stock: %s (%d left, threshold %d)\n",
			prod.Name, prod.Stock, prod.LowStockThreshold)
	}
}

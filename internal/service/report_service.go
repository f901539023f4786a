package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

const defaultTopProductsLimit = 5

type ReportService interface {
	DashboardStats(ctx context.Context, p *authz.Principal) (*dto.DashboardStats, error)
	TopProducts(ctx context.Context, p *authz.Principal, limit int) ([]dto.TopProduct, error)
	LowStockProducts(ctx context.Context, p *authz.Principal) ([]model.Product, error)
}

type reportService struct {
	reports  repository.ReportRepository
	products repository.ProductRepository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
}

func NewReportService(reports repository.ReportRepository, products repository.ProductRepository, cache *redis.Client, cacheTTL time.Duration) ReportService {
	return &reportService{
		reports:  reports,
		products: products,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// DashboardStats summarizes today's completed sales, where "today" starts at
// local midnight. Results are cached per business for a short TTL; the cache
// is read-through and failures fall back to the store.
func (s *reportService) DashboardStats(ctx context.Context, p *authz.Principal) (*dto.DashboardStats, error) {
	if err := authz.RequirePermission(p, authz.CapabilityReports); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("znpos:dashboard:%d", p.BusinessID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var cached dto.DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := s.reports.SalesSince(ctx, p.BusinessID, startOfDay)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TodaySales:        decimal.NewFromFloat(summary.Total).StringFixed(2),
		TodayTransactions: summary.Count,
		AverageSale:       "0.00",
	}
	if summary.Count > 0 {
		avg := decimal.NewFromFloat(summary.Total).Div(decimal.NewFromInt(summary.Count))
		stats.AverageSale = avg.StringFixed(2)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("reports: dashboard cache write failed")
			}
		}
	}
	return stats, nil
}

func (s *reportService) TopProducts(ctx context.Context, p *authz.Principal, limit int) ([]dto.TopProduct, error) {
	if err := authz.RequirePermission(p, authz.CapabilityReports); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	rows, err := s.reports.TopProducts(ctx, p.BusinessID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TopProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TopProduct{
			ProductID: row.ProductID,
			Name:      row.Name,
			SoldCount: row.SoldCount,
			Revenue:   decimal.NewFromFloat(row.Revenue).StringFixed(2),
		})
	}
	return out, nil
}

func (s *reportService) LowStockProducts(ctx context.Context, p *authz.Principal) ([]model.Product, error) {
	if err := authz.RequirePermission(p, authz.CapabilityReports); err != nil {
		return nil, err
	}
	return s.products.ListLowStock(ctx, p.BusinessID)
}

package service

import (
	"context"

	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/money"
)

// DashboardService assembles the home screen: backend counters plus the
// locale-formatted revenue figures the cards render directly.
type DashboardService struct {
	locale money.Locale
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(locale money.Locale) *DashboardService {
	return &DashboardService{locale: locale}
}

// DashboardView is the home screen model.
type DashboardView struct {
	Stats   *entity.DashboardStats `json:"stats"`
	Revenue RevenueDisplay         `json:"revenue"`
}

// RevenueDisplay carries the formatted revenue figures.
type RevenueDisplay struct {
	Today string `json:"today"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Stats fetches the counters and formats the money figures.
func (s *DashboardService) Stats(ctx context.Context, sess *session.Session) (*DashboardView, error) {
	stats, err := sess.API.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Stats: stats,
		Revenue: RevenueDisplay{
			Today: s.locale.Format(money.FromFloat(stats.TodayRevenue)),
			Month: s.locale.Format(money.FromFloat(stats.MonthRevenue)),
			Year:  s.locale.Format(money.FromFloat(stats.YearRevenue)),
		},
	}, nil
}

// LowStock lists the products under their minimum stock, feeding the
// remediation panel.
func (s *DashboardService) LowStock(ctx context.Context, sess *session.Session) ([]entity.Product, error) {
	return sess.API.LowStockProducts(ctx)
}

// TopProducts lists the best sellers for the given period.
func (s *DashboardService) TopProducts(ctx context.Context, sess *session.Session, period string, limit int) ([]entity.TopProduct, error) {
	switch period {
	case "day", "week", "month", "year":
	default:
		period = "month"
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return sess.API.TopProducts(ctx, period, limit)
}

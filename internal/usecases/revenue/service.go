package revenue

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-sales-api/infrastructure/repository"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
	"github.com/vfg2006/inventory-sales-api/pkg/utils"
)

// Aggregator computa a receita total por janela de calendário. "Hoje" é a
// data corrente no fuso configurado da aplicação, no momento da requisição.
type Aggregator interface {
	Daily(ctx context.Context) (*domain.DailyRevenue, error)
	Weekly(ctx context.Context) (*domain.PeriodRevenue, error)
	Monthly(ctx context.Context, year, month int) (*domain.PeriodRevenue, error)
	Annual(ctx context.Context) (*domain.PeriodRevenue, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	location *time.Location

	// now é substituível em testes
	now func() time.Time
}

func NewService(saleRepo repository.SaleRepository, location *time.Location) *Service {
	return &Service{
		saleRepo: saleRepo,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) Daily(ctx context.Context) (*domain.DailyRevenue, error) {
	window := DailyWindow(s.today())

	total, err := s.sumWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	return &domain.DailyRevenue{
		Date:         window.Start,
		TotalRevenue: total,
	}, nil
}

func (s *Service) Weekly(ctx context.Context) (*domain.PeriodRevenue, error) {
	window := WeeklyWindow(s.today())
	return s.periodRevenue(ctx, window)
}

func (s *Service) Monthly(ctx context.Context, year, month int) (*domain.PeriodRevenue, error) {
	window, err := MonthlyWindow(year, month, s.location)
	if err != nil {
		return nil, err
	}
	return s.periodRevenue(ctx, window)
}

func (s *Service) Annual(ctx context.Context) (*domain.PeriodRevenue, error) {
	window := AnnualWindow(s.today())
	return s.periodRevenue(ctx, window)
}

func (s *Service) periodRevenue(ctx context.Context, window domain.RevenueWindow) (*domain.PeriodRevenue, error) {
	total, err := s.sumWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodRevenue{
		StartDate:    window.Start,
		EndDate:      window.End,
		TotalRevenue: total,
	}, nil
}

func (s *Service) sumWindow(ctx context.Context, window domain.RevenueWindow) (float64, error) {
	total, err := s.saleRepo.SumTotalPriceInRange(ctx, window.Start, window.End, false)
	if err != nil {
		return 0, errors.Wrap(err, "summing sales in window")
	}

	return utils.RoundWithTwoDecimalPlace(total), nil
}

func (s *Service) today() time.Time {
	return s.now().In(s.location)
}

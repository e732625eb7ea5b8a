package reporting

import (
	"time"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

type Reporter interface {
	DashboardStats() (*domain.DashboardStats, error)
}

type Service struct {
	backend *storage.Backend
	now     func() time.Time
}

func NewService(backend *storage.Backend) Reporter {
	return &Service{
		backend: backend,
		now:     time.Now,
	}
}

// DashboardStats calcula los agregados del dashboard bajo demanda. Las
// tres ventanas de ventas se calculan sobre el mismo snapshot, de modo
// que una venta de hoy aparece en las tres.
func (s *Service) DashboardStats() (*domain.DashboardStats, error) {
	sales, err := s.backend.Sales.ListSales(nil)
	if err != nil {
		return nil, err
	}

	stores, err := s.backend.Stores.ListStores()
	if err != nil {
		return nil, err
	}

	employees, err := s.backend.Employees.ListEmployees(nil)
	if err != nil {
		return nil, err
	}

	now := s.now()

	stats := &domain.DashboardStats{
		TodaySales:  SumToday(sales, now),
		WeekSales:   SumTrailingWeek(sales, now),
		MonthSales:  SumCurrentMonth(sales, now),
		TotalStores: len(stores),
		GeneratedAt: now,
	}

	for _, store := range stores {
		if store.IsActive {
			stats.ActiveStores++
		}
	}

	stats.TotalEmployees = len(employees)
	for _, employee := range employees {
		if employee.IsActive {
			stats.ActiveEmployees++
		}
	}

	return stats, nil
}

// Package objectives evalúa el avance de los objetivos de venta de
// cada tienda contra las ventas registradas en su ventana de fechas.
package objectives

import (
	"time"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

// Umbral de progreso a partir del cual un objetivo pasa de pendiente a
// en progreso.
const inProgressThreshold = 50

type Evaluator interface {
	Progress(storeID *int) ([]*domain.ObjectiveProgress, error)
}

type Service struct {
	backend *storage.Backend
}

func NewService(backend *storage.Backend) Evaluator {
	return &Service{
		backend: backend,
	}
}

// Progress evalúa todos los objetivos (o los de una tienda) contra el
// snapshot de ventas actual. Un objetivo cuya tienda ya no existe se
// evalúa igualmente con el nombre centinela.
func (s *Service) Progress(storeID *int) ([]*domain.ObjectiveProgress, error) {
	objectives, err := s.backend.Objectives.ListObjectives(storeID)
	if err != nil {
		return nil, err
	}

	sales, err := s.backend.Sales.ListSales(storeID)
	if err != nil {
		return nil, err
	}

	stores, err := s.backend.Stores.ListStores()
	if err != nil {
		return nil, err
	}

	storeNames := make(map[int]string, len(stores))
	for _, store := range stores {
		storeNames[store.ID] = store.Name
	}

	progress := make([]*domain.ObjectiveProgress, 0, len(objectives))
	for _, objective := range objectives {
		progress = append(progress, evaluate(objective, sales, storeNames))
	}

	return progress, nil
}

func evaluate(objective *domain.Objective, sales []*domain.Sale, storeNames map[int]string) *domain.ObjectiveProgress {
	current := sumInWindow(sales, objective.StoreID, objective.StartDate, objective.EndDate)

	target := utils.ParseAmount(objective.Target)

	var percentage float64
	if target > 0 {
		percentage = utils.RoundWithTwoDecimalPlace(current / target * 100)
	}

	name, ok := storeNames[objective.StoreID]
	if !ok {
		name = domain.UnknownStoreName
	}

	return &domain.ObjectiveProgress{
		Objective:    objective,
		StoreName:    name,
		CurrentSales: current,
		Progress:     percentage,
		Status:       statusFor(percentage),
	}
}

// sumInWindow suma las ventas de la tienda dentro de la ventana
// start..end, ambos extremos inclusive. Una ventana invertida no casa
// con ninguna venta y suma 0.
func sumInWindow(sales []*domain.Sale, storeID int, start, end time.Time) float64 {
	var total float64
	for _, sale := range sales {
		if sale.StoreID != storeID {
			continue
		}
		if sale.Date.Before(start) || sale.Date.After(end) {
			continue
		}
		total += utils.ParseAmount(sale.Amount)
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

func statusFor(percentage float64) string {
	switch {
	case percentage >= 100:
		return domain.ObjectiveStatusCompleted
	case percentage >= inProgressThreshold:
		return domain.ObjectiveStatusInProgress
	default:
		return domain.ObjectiveStatusPending
	}
}

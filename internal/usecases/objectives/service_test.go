package objectives

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage/mocks"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

var (
	windowStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
)

func objective(id, storeID int, target string) *domain.Objective {
	return &domain.Objective{
		ID:        id,
		StoreID:   storeID,
		Period:    domain.PeriodMensual,
		Target:    target,
		StartDate: windowStart,
		EndDate:   windowEnd,
	}
}

func newTestService(t *testing.T, objectives []*domain.Objective, sales []*domain.Sale, stores []*domain.Store) Evaluator {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	objectiveRepo := mocks.NewMockObjectiveRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	objectiveRepo.EXPECT().ListObjectives(nil).Return(objectives, nil)
	saleRepo.EXPECT().ListSales(nil).Return(sales, nil)
	storeRepo.EXPECT().ListStores().Return(stores, nil)

	return NewService(&storage.Backend{
		Stores:     storeRepo,
		Sales:      saleRepo,
		Objectives: objectiveRepo,
	})
}

func TestService_Progress(t *testing.T) {
	stores := []*domain.Store{{ID: 1, Name: "Centro"}}

	tests := []struct {
		name             string
		objective        *domain.Objective
		sales            []*domain.Sale
		expectedCurrent  float64
		expectedProgress float64
		expectedStatus   string
	}{
		{
			name:      "Mitad del objetivo queda en progreso",
			objective: objective(1, 1, "1000.00"),
			sales: []*domain.Sale{
				{StoreID: 1, Amount: "500.00", Date: windowStart.AddDate(0, 0, 10)},
			},
			expectedCurrent:  500,
			expectedProgress: 50,
			expectedStatus:   domain.ObjectiveStatusInProgress,
		},
		{
			name:      "Ventas iguales al objetivo lo completan",
			objective: objective(2, 1, "1000.00"),
			sales: []*domain.Sale{
				{StoreID: 1, Amount: "600.00", Date: windowStart},
				{StoreID: 1, Amount: "400.00", Date: windowEnd},
			},
			expectedCurrent:  1000,
			expectedProgress: 100,
			expectedStatus:   domain.ObjectiveStatusCompleted,
		},
		{
			name:             "Sin ventas en la ventana queda pendiente",
			objective:        objective(3, 1, "1000.00"),
			sales:            []*domain.Sale{{StoreID: 1, Amount: "900.00", Date: windowEnd.AddDate(0, 0, 1)}},
			expectedCurrent:  0,
			expectedProgress: 0,
			expectedStatus:   domain.ObjectiveStatusPending,
		},
		{
			name:      "Objetivo cero nunca divide",
			objective: objective(4, 1, "0"),
			sales: []*domain.Sale{
				{StoreID: 1, Amount: "500.00", Date: windowStart},
			},
			expectedCurrent:  500,
			expectedProgress: 0,
			expectedStatus:   domain.ObjectiveStatusPending,
		},
		{
			name:      "Las ventas de otras tiendas no cuentan",
			objective: objective(5, 1, "1000.00"),
			sales: []*domain.Sale{
				{StoreID: 2, Amount: "800.00", Date: windowStart},
				{StoreID: 1, Amount: "100.00", Date: windowStart},
			},
			expectedCurrent:  100,
			expectedProgress: 10,
			expectedStatus:   domain.ObjectiveStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, []*domain.Objective{tt.objective}, tt.sales, stores)

			result, err := service.Progress(nil)
			require.NoError(t, err)
			require.Len(t, result, 1)

			assert.Equal(t, "Centro", result[0].StoreName)
			assert.Equal(t, tt.expectedCurrent, result[0].CurrentSales)
			assert.Equal(t, tt.expectedProgress, result[0].Progress)
			assert.Equal(t, tt.expectedStatus, result[0].Status)
		})
	}
}

func TestService_Progress_TiendaDesconocida(t *testing.T) {
	// El objetivo apunta a una tienda que ya no existe
	service := newTestService(t,
		[]*domain.Objective{objective(1, 99, "1000.00")},
		[]*domain.Sale{},
		[]*domain.Store{{ID: 1, Name: "Centro"}},
	)

	result, err := service.Progress(nil)
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, domain.UnknownStoreName, result[0].StoreName)
	assert.Equal(t, domain.ObjectiveStatusPending, result[0].Status)
}

func TestService_Progress_VentanaInvertida(t *testing.T) {
	inverted := objective(1, 1, "1000.00")
	inverted.StartDate = windowEnd
	inverted.EndDate = windowStart

	service := newTestService(t,
		[]*domain.Objective{inverted},
		[]*domain.Sale{{StoreID: 1, Amount: "500.00", Date: windowStart.AddDate(0, 0, 10)}},
		[]*domain.Store{{ID: 1, Name: "Centro"}},
	)

	result, err := service.Progress(nil)
	require.NoError(t, err)
	require.Len(t, result, 1)

	// Una ventana invertida no casa con ninguna venta
	assert.Equal(t, 0.0, result[0].CurrentSales)
	assert.Equal(t, 0.0, result[0].Progress)
	assert.Equal(t, domain.ObjectiveStatusPending, result[0].Status)
}

func TestService_Progress_ProgresoSuperiorAlCien(t *testing.T) {
	service := newTestService(t,
		[]*domain.Objective{objective(1, 1, "100.00")},
		[]*domain.Sale{{StoreID: 1, Amount: "250.00", Date: windowStart}},
		[]*domain.Store{{ID: 1, Name: "Centro"}},
	)

	result, err := service.Progress(nil)
	require.NoError(t, err)
	require.Len(t, result, 1)

	// El porcentaje no se recorta a 100
	assert.Equal(t, 250.0, result[0].Progress)
	assert.Equal(t, domain.ObjectiveStatusCompleted, result[0].Status)
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage/mocks"
	"github.com/Bigyayos/TiendaControl/internal/api/handler/router"
	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/internal/usecases/authenticating"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
)

func TestLogin(t *testing.T) {
	verifier, err := authenticating.NewStaticVerifier(config.Auth{
		Username: "Supervisor",
		Password: "secreta123",
	})
	require.NoError(t, err)
	service := authenticating.NewService(verifier, &config.Config{SecretKey: "clave"})

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Credenciales correctas",
			body:           `{"username": "Supervisor", "password": "secreta123"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Credenciales incorrectas",
			body:           `{"username": "Supervisor", "password": "mala"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cuerpo ilegible",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(service)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp["token"])
			}
		})
	}
}

func TestStores_CRUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStoreRepository(ctrl)

	rt := router.New(router.WithRoutes(Stores(repo)...))

	t.Run("GET /v1/stores", func(t *testing.T) {
		repo.EXPECT().ListStores().Return([]*domain.Store{
			{ID: 1, Name: "Centro", Manager: "Ana"},
		}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Centro")
	})

	t.Run("POST /v1/stores crea con 201", func(t *testing.T) {
		repo.EXPECT().CreateStore(gomock.Any()).DoAndReturn(func(store *domain.Store) (*domain.Store, error) {
			// El gerente ausente recibe el valor por defecto
			assert.Equal(t, domain.UnassignedManager, store.Manager)
			store.ID = 7
			return store, nil
		})

		body := `{"name": "Norte", "address": "Av. Norte 22"}`
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/stores", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})

	t.Run("POST /v1/stores sin nombre devuelve 400", func(t *testing.T) {
		body := `{"address": "Av. Norte 22"}`
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/stores", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_002")
	})

	t.Run("GET /v1/stores/:id inexistente devuelve 404", func(t *testing.T) {
		repo.EXPECT().GetStoreByID(99).Return(nil, storage.ErrNotFound)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores/99", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RES_001")
	})

	t.Run("PUT /v1/stores/:id actualiza parcialmente", func(t *testing.T) {
		repo.EXPECT().UpdateStore(1, gomock.Any()).DoAndReturn(func(id int, req *domain.UpdateStoreRequest) (*domain.Store, error) {
			require.NotNil(t, req.Name)
			assert.Nil(t, req.Address)
			return &domain.Store{ID: 1, Name: *req.Name}, nil
		})

		body := `{"name": "Centro renovado"}`
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/stores/1", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DELETE /v1/stores/:id devuelve 204", func(t *testing.T) {
		repo.EXPECT().DeleteStore(1).Return(nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/stores/1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ID no numérico devuelve 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})
}

func TestSales_FiltroInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	rt := router.New(router.WithRoutes(Sales(repo)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales?storeId=cero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSales_CreateValidaFecha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	rt := router.New(router.WithRoutes(Sales(repo)...))

	t.Run("Fecha corta aceptada", func(t *testing.T) {
		repo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), sale.Date)
			sale.ID = 1
			return sale, nil
		})

		body := `{"storeId": 1, "amount": "150.00", "date": "2025-03-10"}`
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Fecha ilegible devuelve 400", func(t *testing.T) {
		body := `{"storeId": 1, "amount": "150.00", "date": "ayer"}`
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestObjectives_ProgressDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	objectiveRepo := mocks.NewMockObjectiveRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	evaluator := objectives.NewService(&storage.Backend{
		Stores:     storeRepo,
		Sales:      saleRepo,
		Objectives: objectiveRepo,
	})

	rt := router.New(router.WithRoutes(Objectives(objectiveRepo, evaluator)...))

	t.Run("GET /v1/objectives/progress evalúa objetivos", func(t *testing.T) {
		objectiveRepo.EXPECT().ListObjectives(nil).Return([]*domain.Objective{
			{ID: 1, StoreID: 1, Target: "1000.00",
				StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		}, nil)
		saleRepo.EXPECT().ListSales(nil).Return([]*domain.Sale{
			{StoreID: 1, Amount: "500.00", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)
		storeRepo.EXPECT().ListStores().Return([]*domain.Store{{ID: 1, Name: "Centro"}}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/objectives/progress", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ObjectiveStatusInProgress)
		assert.Contains(t, rec.Body.String(), "Centro")
	})

	t.Run("GET /v1/objectives/:id sigue resolviendo por id", func(t *testing.T) {
		objectiveRepo.EXPECT().GetObjectiveByID(5).Return(&domain.Objective{ID: 5, StoreID: 1}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/objectives/5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":5`)
	})
}

func TestUpdate_SinCampos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Ningún repositorio debe recibir la actualización vacía
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	objectiveRepo := mocks.NewMockObjectiveRepository(ctrl)

	evaluator := objectives.NewService(&storage.Backend{
		Stores:     storeRepo,
		Sales:      saleRepo,
		Objectives: objectiveRepo,
	})

	rt := router.New(
		router.WithRoutes(Stores(storeRepo)...),
		router.WithRoutes(Employees(employeeRepo)...),
		router.WithRoutes(Sales(saleRepo)...),
		router.WithRoutes(Objectives(objectiveRepo, evaluator)...),
	)

	paths := []string{
		"/v1/stores/1",
		"/v1/employees/1",
		"/v1/sales/1",
		"/v1/objectives/1",
	}

	for _, path := range paths {
		t.Run("PUT "+path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{}`)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_002")
		})
	}
}

func TestBackendNoConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStoreRepository(ctrl)
	repo.EXPECT().ListStores().Return(nil, storage.ErrNotConfigured)

	rt := router.New(router.WithRoutes(Stores(repo)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_003")
}

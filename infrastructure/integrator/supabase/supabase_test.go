package supabase

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestClient(t *testing.T, handler http.HandlerFunc) supabaseclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := supabaseclient.NewClient(config.Supabase{
		URL:     server.URL,
		AnonKey: "test-key",
	})
	require.NoError(t, err)

	return client
}

func TestStoreRepository_ListStores_NormalizaVariantes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/Tiendas", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		// Una fila en convención española, otra en inglesa y otra incompleta
		_, _ = w.Write([]byte(`[
			{"id": 1, "nombre": "Centro", "direccion": "Calle Mayor 1", "gerente": "Ana", "empleados": 8, "activa": true, "objetivo_mensual": "12500.00"},
			{"id": 2, "name": "Norte", "address": "Av. Norte 22", "manager": "Luis", "employees": 5, "is_active": false, "monthly_objective": 9000},
			{"id": 3, "nombre": "Sur"}
		]`))
	})

	stores, err := NewStoreRepository(client).ListStores()
	require.NoError(t, err)
	require.Len(t, stores, 3)

	assert.Equal(t, "Centro", stores[0].Name)
	assert.Equal(t, "Ana", stores[0].Manager)
	assert.Equal(t, "12500.00", stores[0].MonthlyObjective)

	assert.Equal(t, "Norte", stores[1].Name)
	assert.Equal(t, "Av. Norte 22", stores[1].Address)
	assert.Equal(t, 5, stores[1].Employees)
	assert.False(t, stores[1].IsActive)
	assert.Equal(t, "9000", stores[1].MonthlyObjective)

	// La fila incompleta recibe los valores por defecto
	assert.Equal(t, domain.UnassignedManager, stores[2].Manager)
	assert.True(t, stores[2].IsActive)
	assert.Equal(t, "0", stores[2].MonthlyObjective)
}

func TestStoreRepository_GetStoreByID_NoEncontrada(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.99", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	store, err := NewStoreRepository(client).GetStoreByID(99)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreRepository_UpdateStore_SoloCamposPresentes(t *testing.T) {
	name := "Centro renovado"
	active := false

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.1", r.URL.Query().Get("id"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "nombre": "Centro renovado", "activa": false}]`))
	})

	store, err := NewStoreRepository(client).UpdateStore(1, &domain.UpdateStoreRequest{
		Name:     &name,
		IsActive: &active,
	})
	require.NoError(t, err)

	assert.Equal(t, "Centro renovado", store.Name)
	assert.False(t, store.IsActive)
}

func TestStoreRepository_CreateStore_IdaYVuelta(t *testing.T) {
	var payload supabaseclient.Row

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &payload))

			// La representación vuelve en convención española
			_, _ = w.Write([]byte(`[{"id": 7, "nombre": "Centro", "direccion": "Calle Mayor 1", "gerente": "Ana", "empleados": 8, "activa": true, "objetivo_mensual": "12500.00"}]`))
		default:
			// La relectura llega con las columnas en inglés
			assert.Equal(t, "eq.7", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(`[{"id": 7, "name": "Centro", "address": "Calle Mayor 1", "manager": "Ana", "employees": 8, "is_active": true, "monthly_objective": "12500.00"}]`))
		}
	})

	repo := NewStoreRepository(client)

	created, err := repo.CreateStore(&domain.Store{
		Name:             "Centro",
		Address:          "Calle Mayor 1",
		Manager:          "Ana",
		Employees:        8,
		IsActive:         true,
		MonthlyObjective: "12500.00",
	})
	require.NoError(t, err)

	// La escritura emite siempre la convención española fija
	assert.Equal(t, "Centro", payload["nombre"])
	assert.Equal(t, "Calle Mayor 1", payload["direccion"])
	assert.Equal(t, "12500.00", payload["objetivo_mensual"])
	assert.NotContains(t, payload, "name")

	// Ambas convenciones de lectura producen la misma tienda canónica
	reread, err := repo.GetStoreByID(7)
	require.NoError(t, err)
	assert.Equal(t, created, reread)
}

func TestSaleRepository_ListSales_FiltraPorTienda(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/Ventas", r.URL.Path)
		assert.Equal(t, "eq.2", r.URL.Query().Get("tienda_id"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 10, "tienda_id": 2, "empleado_id": 7, "monto": "150.00", "fecha": "2025-03-10"},
			{"id": 9, "store_id": 2, "amount": 80.5, "date": "2025-03-09"}
		]`))
	})

	storeID := 2
	sales, err := NewSaleRepository(client).ListSales(&storeID)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.Equal(t, 2, sales[0].StoreID)
	require.NotNil(t, sales[0].EmployeeID)
	assert.Equal(t, 7, *sales[0].EmployeeID)
	assert.Equal(t, "150.00", sales[0].Amount)

	assert.Equal(t, 2, sales[1].StoreID)
	assert.Nil(t, sales[1].EmployeeID)
	assert.Equal(t, "80.5", sales[1].Amount)
}

func TestObjectiveRepository_ListObjectives_NormalizaColumnasHistoricas(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/Objetivos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		// La columna real del periodo es tipo; el monto objetivo llegó a
		// guardarse como objetivo y como target
		_, _ = w.Write([]byte(`[
			{"id": 1, "tienda_id": 2, "tipo": "semanal", "objetivo": "1000.00", "fecha_inicio": "2025-03-01", "fecha_fin": "2025-03-07"},
			{"id": 2, "store_id": 3, "period": "anual", "target": 5000.5}
		]`))
	})

	objectives, err := NewObjectiveRepository(client).ListObjectives(nil)
	require.NoError(t, err)
	require.Len(t, objectives, 2)

	assert.Equal(t, 2, objectives[0].StoreID)
	assert.Equal(t, "semanal", objectives[0].Period)
	assert.Equal(t, "1000.00", objectives[0].Target)

	assert.Equal(t, 3, objectives[1].StoreID)
	assert.Equal(t, "anual", objectives[1].Period)
	assert.Equal(t, "5000.5", objectives[1].Target)
}

func TestObjectiveRepository_CreateObjective_EscribeColumnaTipo(t *testing.T) {
	var payload supabaseclient.Row

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 5, "tienda_id": 2, "tipo": "semanal", "monto": "1000.00", "fecha_inicio": "2025-03-01", "fecha_fin": "2025-03-07"}]`))
	})

	created, err := NewObjectiveRepository(client).CreateObjective(&domain.Objective{
		StoreID:   2,
		Period:    domain.PeriodSemanal,
		Target:    "1000.00",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "semanal", payload["tipo"])
	assert.Equal(t, "1000.00", payload["monto"])
	assert.NotContains(t, payload, "periodo")

	assert.Equal(t, "semanal", created.Period)
	assert.Equal(t, "1000.00", created.Target)
}

func TestObjectiveRepository_DeleteObjective_NoEncontrado(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/v1/Objetivos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	err := NewObjectiveRepository(client).DeleteObjective(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewClient_SinConfiguracion(t *testing.T) {
	client, err := supabaseclient.NewClient(config.Supabase{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}

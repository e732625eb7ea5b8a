// Package supabaseclient implementa un cliente fino sobre la API
// PostgREST de Supabase con primitivas a nivel de tabla:
// select/insert/update/delete/eq/order.
package supabaseclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Row es una fila cruda tal como la devuelve PostgREST, antes de
// normalizar nombres de columnas.
type Row map[string]any

type Client interface {
	From(table string) *QueryBuilder
}

type SupabaseClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient construye el cliente. Devuelve storage.ErrNotConfigured si
// faltan el endpoint o la credencial: el proceso degrada a un estado
// visible de "no configurado" en lugar de fallar más adelante.
func NewClient(cfg config.Supabase) (Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, storage.ErrNotConfigured
	}

	return &SupabaseClient{
		baseURL:    strings.TrimRight(cfg.URL, "/") + "/rest/v1",
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{},
	}, nil
}

func (c *SupabaseClient) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client:  c,
		table:   table,
		filters: url.Values{},
	}
}

// QueryBuilder acumula filtros estilo PostgREST para una tabla.
type QueryBuilder struct {
	client  *SupabaseClient
	table   string
	filters url.Values
	order   string
}

// Eq añade un filtro de igualdad sobre una columna.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order define la columna y dirección de ordenación.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	q.order = fmt.Sprintf("%s.%s", column, direction)
	return q
}

// Select ejecuta un GET y devuelve las filas crudas.
func (q *QueryBuilder) Select() ([]Row, error) {
	params := q.params()
	params.Set("select", "*")

	return q.client.do(http.MethodGet, q.table, params, nil)
}

// Insert ejecuta un POST con el payload dado y devuelve la
// representación de las filas insertadas.
func (q *QueryBuilder) Insert(payload Row) ([]Row, error) {
	return q.client.do(http.MethodPost, q.table, q.params(), payload)
}

// Update ejecuta un PATCH sobre las filas que cumplan los filtros.
func (q *QueryBuilder) Update(payload Row) ([]Row, error) {
	return q.client.do(http.MethodPatch, q.table, q.params(), payload)
}

// Delete elimina las filas que cumplan los filtros y devuelve su
// representación, lo que permite distinguir un id inexistente.
func (q *QueryBuilder) Delete() ([]Row, error) {
	return q.client.do(http.MethodDelete, q.table, q.params(), nil)
}

func (q *QueryBuilder) params() url.Values {
	params := url.Values{}
	for key, values := range q.filters {
		for _, value := range values {
			params.Add(key, value)
		}
	}
	if q.order != "" {
		params.Set("order", q.order)
	}
	return params
}

func (c *SupabaseClient) do(method, table string, params url.Values, payload Row) ([]Row, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, table)
	if encoded := params.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error al serializar el payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Pedimos la representación para poder leer id/created_at
		// generados y detectar filtros que no casan con ninguna fila.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *SupabaseClient) handleResponse(resp *http.Response) ([]Row, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("supabase respondió %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	if len(data) == 0 {
		return []Row{}, nil
	}

	rows := make([]Row, 0)
	if err := json.Unmarshal(data, &rows); err != nil {
		// Algunas respuestas devuelven un objeto único en lugar de lista
		single := Row{}
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, fmt.Errorf("error al decodificar la respuesta de supabase: %w", err)
		}
		rows = append(rows, single)
	}

	return rows, nil
}

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FranCa26/InvenLink-24-7/internal/clock"
	"github.com/FranCa26/InvenLink-24-7/internal/config"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"
	"github.com/FranCa26/InvenLink-24-7/internal/service"
	"github.com/FranCa26/InvenLink-24-7/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	db     *gorm.DB
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:                     "test",
		FrontendDist:            t.TempDir(),
		CORSAllowedOrigin:       "*",
		JWTSecret:               "test-secret-key",
		JWTExpirationHours:      8,
		RateLimitPerMinute:      1000,
		LoginRateLimitPerMinute: 20,
	}
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	clk := clock.Fixed(time.Date(2026, 10, 14, 11, 0, 0, 0, loc), time.Sunday)

	seedUser(t, db, "admin", "admin123", model.RolAdmin)
	seedUser(t, db, "vendedor", "vend123", model.RolVendedor)

	return &testEnv{engine: New(testConfig(t), db, nil, clk), db: db}
}

func seedUser(t *testing.T, db *gorm.DB, username, password, rol string) {
	t.Helper()
	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repository.NewUsuarioRepository(db).Create(context.Background(), &model.Usuario{
		Username: username, Password: hash, Nombre: username, Rol: rol,
	}))
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func producto(codigo string, stock int, costo, venta float64) map[string]any {
	return map[string]any{
		"Cod_Producto": codigo, "Nombre": "Producto " + codigo, "Marca": "Acme", "Talle": "M",
		"Categoria": "Ropa", "Stock_Inicial": stock, "Stock_Actual": stock,
		"Prec_Costo": costo, "Prec_Venta": venta,
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestAuth_LoginAndVerificar(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "mala"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
	assert.Contains(t, w.Body.String(), "Contraseña incorrecta")

	w = env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := env.login(t, "admin", "admin123")
	w = env.do(t, http.MethodGet, "/api/auth/verificar", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var ver struct {
		Success bool `json:"success"`
		Usuario struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Rol      string `json:"rol"`
		} `json:"usuario"`
	}
	decode(t, w, &ver)
	assert.True(t, ver.Success)
	assert.Equal(t, int64(1), ver.Usuario.ID)
	assert.Equal(t, "admin", ver.Usuario.Username)
	assert.Equal(t, "admin", ver.Usuario.Rol)

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/auth/verificar", nil, "").Code)
}

func TestAuth_RegisterIsAdminOnly(t *testing.T) {
	env := setupTestEnv(t)
	nuevo := map[string]string{"username": "caja2", "password": "pw", "nombre": "Caja Dos"}

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/auth/register", nuevo, "").Code)

	vend := env.login(t, "vendedor", "vend123")
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPost, "/api/auth/register", nuevo, vend).Code)

	admin := env.login(t, "admin", "admin123")
	w := env.do(t, http.MethodPost, "/api/auth/register", nuevo, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "pw")

	w = env.do(t, http.MethodPost, "/api/auth/register", nuevo, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El nombre de usuario ya está en uso")

	env.login(t, "caja2", "pw")
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProductos_CreateFetchUpdate(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/productos", producto("A1", 3, 10, 13), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = env.do(t, http.MethodPost, "/api/productos", producto("A1", 3, 10, 13), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/productos/A1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var p map[string]any
	decode(t, w, &p)
	assert.Equal(t, "Disponible", p["Estado"])
	assert.Equal(t, float64(13), p["Prec_Venta"])

	upd := producto("A1", 0, 11, 15)
	delete(upd, "Cod_Producto")
	upd["Estado"] = "Disponible"
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPut, "/api/productos/A1", upd, "").Code)

	token := env.login(t, "vendedor", "vend123")
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/api/productos/A1", upd, token).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPut, "/api/productos/ZZ", upd, token).Code)

	decode(t, env.do(t, http.MethodGet, "/api/productos/A1", nil, ""), &p)
	assert.Equal(t, "Agotado", p["Estado"])

	w = env.do(t, http.MethodPut, "/api/productos/A1/stock", map[string]any{"cantidad": "4"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Stock actualizado correctamente","nuevoStock":4}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/productos/filter/name-category?filter=ROPA", nil, "")
	var list []map[string]any
	decode(t, w, &list)
	assert.Len(t, list, 1)
}

// ── Entradas y ventas ────────────────────────────────────────────────────────

func TestEntradaVentaFlow(t *testing.T) {
	env := setupTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/productos", producto("P1", 0, 0, 0), "").Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/productos", producto("P2", 0, 0, 20), "").Code)

	w := env.do(t, http.MethodPost, "/api/entradas", map[string]any{
		"entrada": map[string]any{"Numero_Factura": "A-0001"},
		"detalles": []map[string]any{
			{"Cod_Producto": "P1", "Cantidad": 3, "Precio_Unitario": 10},
			{"Cod_Producto": "P2", "Cantidad": 2, "Precio_Unitario": 5},
		},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var creada struct {
		IdEntrada string `json:"Id_Entrada"`
	}
	decode(t, w, &creada)
	assert.Equal(t, "1", creada.IdEntrada)

	var entrada map[string]any
	decode(t, env.do(t, http.MethodGet, "/api/entradas/1", nil, ""), &entrada)
	assert.Equal(t, float64(40), entrada["Total"])
	assert.Equal(t, "2026-10-14 11:00:00", entrada["Fecha"])

	var p1, p2 map[string]any
	decode(t, env.do(t, http.MethodGet, "/api/productos/P1", nil, ""), &p1)
	decode(t, env.do(t, http.MethodGet, "/api/productos/P2", nil, ""), &p2)
	assert.Equal(t, float64(3), p1["Stock_Actual"])
	assert.Equal(t, float64(13), p1["Prec_Venta"])
	assert.Equal(t, float64(2), p2["Stock_Actual"])
	assert.Equal(t, float64(20), p2["Prec_Venta"])

	// Entradas list needs a token
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/entradas", nil, "").Code)
	var entradas []map[string]any
	decode(t, env.do(t, http.MethodGet, "/api/entradas", nil, env.login(t, "vendedor", "vend123")), &entradas)
	require.Len(t, entradas, 1)

	w = env.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"venta":    map[string]any{"Cliente": "Mostrador"},
		"detalles": []map[string]any{{"Cod_Producto": "P1", "Cantidad": 4, "Precio_Unitario": 13}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Disponible: 3")

	w = env.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"venta":    map[string]any{"Cliente": "Mostrador"},
		"detalles": []map[string]any{{"Cod_Producto": "P1", "Cantidad": 2, "Precio_Unitario": 13}},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	decode(t, env.do(t, http.MethodGet, "/api/productos/P1", nil, ""), &p1)
	assert.Equal(t, float64(1), p1["Stock_Actual"])

	var resumen map[string]any
	decode(t, env.do(t, http.MethodGet, "/api/ventas/resumen", nil, ""), &resumen)
	assert.Equal(t, "26.00", resumen["ventasHoy"])

	decode(t, env.do(t, http.MethodGet, "/api/entradas/resumen/dashboard", nil, ""), &resumen)
	assert.Equal(t, float64(40), resumen["entradasMes"])

	var porProducto []map[string]any
	decode(t, env.do(t, http.MethodGet, "/api/ventas/producto/P1", nil, ""), &porProducto)
	require.Len(t, porProducto, 1)
	assert.Equal(t, "Mostrador", porProducto[0]["Nombre_Cliente"])
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/ventas/producto/ZZ", nil, "").Code)

	w = env.do(t, http.MethodGet, "/api/ventas/1/comprobante", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = env.do(t, http.MethodPost, "/api/entradas", map[string]any{
		"detalles": []map[string]any{{"Cod_Producto": "NOPE", "Cantidad": 1, "Precio_Unitario": 1}},
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ── Infrastructure routes ────────────────────────────────────────────────────

func TestInfrastructureRoutes(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"disabled","cache":"disabled"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/no-existe", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Ruta de API no encontrada")

	env.do(t, http.MethodGet, "/api/productos", nil, "")
	w = env.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `inventario_http_requests_total{method="GET",route="/api/productos",status="200"}`)
	assert.Contains(t, w.Body.String(), `go_sql_max_open_connections{db_name="inventario"}`)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/personal-finance/internal/core/assistant"
	"github.com/fintrack/personal-finance/internal/core/service"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/memory"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewStore()

	auth := service.NewAuthService(store, testSecret, time.Hour, log)
	ledger := service.NewLedgerService(store, auth, service.NewIDGenerator(), service.DefaultBudgetLimits(), log)
	settings := service.NewSettingsService(store, auth, log)
	auth.Subscribe(ledger)
	require.NoError(t, auth.Restore(context.Background()))

	return NewRouter(Dependencies{
		Auth:         auth,
		Ledger:       ledger,
		Assistant:    service.NewAssistantService(ledger, settings, assistant.New(assistant.DefaultRules()...), log),
		Settings:     settings,
		Store:        store,
		StoreBackend: "memory",
		JWTSecret:    testSecret,
		Logger:       log,
	})
}

func do(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func register(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/auth/register", "",
		`{"full_name":"Nguyễn Văn A","username":"`+username+`","password":"secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_FinanceFlow(t *testing.T) {
	e := newTestRouter(t)
	token := register(t, e, "vana")

	rec := do(t, e, http.MethodPost, "/v1/transactions", token,
		`{"type":"expense","amount":50000,"category":"food","date":"2024-05-01","note":"phở"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/v1/transactions", token,
		`{"type":"income","amount":2000000,"category":"salary"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/v1/summary", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode(t, rec)
	assert.Equal(t, "50.000 ₫", summary["total_expense_display"])
	assert.Equal(t, "1.950.000 ₫", summary["balance_display"])
	assert.Len(t, summary["recent"], 2)

	rec = do(t, e, http.MethodGet, "/v1/transactions?limit=1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "income", list[0]["type"], "newest first")

	rec = do(t, e, http.MethodPost, "/v1/assistant", token, `{"query":"Tổng chi tháng này?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	answer := decode(t, rec)
	assert.Equal(t, "total_expense", answer["intent"])
	assert.Contains(t, answer["answer"], "50.000")

	rec = do(t, e, http.MethodPost, "/v1/settings/private_mode/toggle", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["private_mode"])

	rec = do(t, e, http.MethodGet, "/v1/summary", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "******", decode(t, rec)["total_expense_display"])

	rec = do(t, e, http.MethodPost, "/auth/logout", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/summary", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgNotLoggedIn, decode(t, rec)["error"])
}

func TestRouter_LoginRestoresData(t *testing.T) {
	e := newTestRouter(t)
	token := register(t, e, "vana")

	rec := do(t, e, http.MethodPost, "/v1/transactions", token,
		`{"type":"expense","amount":2500000,"category":"food"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, http.StatusNoContent, do(t, e, http.MethodPost, "/auth/logout", token, "").Code)

	rec = do(t, e, http.MethodPost, "/auth/login", "", `{"username":"vana","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ = decode(t, rec)["token"].(string)

	rec = do(t, e, http.MethodGet, "/v1/challenge", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	ch := decode(t, rec)
	assert.Equal(t, true, ch["exceeded"])
	assert.Equal(t, "-500.000 ₫", ch["remaining_display"])
}

func TestRouter_AuthErrors(t *testing.T) {
	e := newTestRouter(t)
	register(t, e, "vana")

	rec := do(t, e, http.MethodPost, "/auth/register", "",
		`{"full_name":"Someone Else","username":"vana","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgDuplicateUser, decode(t, rec)["error"])

	rec = do(t, e, http.MethodPost, "/auth/login", "", `{"username":"vana","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgInvalidCredentials, decode(t, rec)["error"])

	rec = do(t, e, http.MethodPost, "/auth/register", "", `{"full_name":"","username":"x","password":"y"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgMissingFields, decode(t, rec)["error"])

	rec = do(t, e, http.MethodGet, "/v1/summary", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SessionMismatch(t *testing.T) {
	e := newTestRouter(t)
	first := register(t, e, "vana")
	register(t, e, "thib")

	rec := do(t, e, http.MethodGet, "/v1/transactions", first, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgSessionMismatch, decode(t, rec)["error"])
}

func TestRouter_PublicEndpoints(t *testing.T) {
	e := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/health/ready", "", "").Code)
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/v1/categories?type=income", "", "").Code)
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/metrics", "", "").Code)
}

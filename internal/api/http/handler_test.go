package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository"
	"tool-rental-pos/internal/service"
	"tool-rental-pos/internal/validation"
)

func TestMain(m *testing.M) {
	logger.InitializeWithWriter(io.Discard, "error", "text")
	os.Exit(m.Run())
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetTool(ctx context.Context, code string) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockCatalogService) ListToolCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	jackhammer := domain.ToolType{Name: "Jackhammer", DailyCharge: decimal.RequireFromString("2.99"), ChargePolicy: domain.ChargePolicy{WeekdayCharge: true}}
	chainsaw := domain.ToolType{Name: "Chainsaw", DailyCharge: decimal.RequireFromString("1.49"), ChargePolicy: domain.ChargePolicy{WeekdayCharge: true, HolidayCharge: true}}
	catalog, err := repository.NewCatalog([]domain.Tool{
		domain.NewTool("CHNS", "Stihl", chainsaw),
		domain.NewTool("JAKR", "Ridgid", jackhammer),
	})
	require.NoError(t, err)

	catalogSvc := service.NewCatalogService(catalog)
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(catalogSvc, service.NewCheckoutService(catalogSvc, validation.New())))
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Health(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHandler_Tools(t *testing.T) {
	router := newTestRouter(t)

	t.Run("List", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/tools", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []ToolResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "CHNS", resp[0].Code)
		assert.Equal(t, "1.49", resp[0].DailyCharge)
		assert.True(t, resp[0].HolidayCharge)
		assert.False(t, resp[0].WeekendCharge)
	})

	t.Run("Get lowercase code", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/tools/jakr", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ToolResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Ridgid", resp.Brand)
		assert.Equal(t, "Jackhammer", resp.Type)
	})

	t.Run("Unknown code", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/tools/NOPE", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Catalog failure", func(t *testing.T) {
		catalog := new(MockCatalogService)
		catalog.On("ListTools", mock.Anything).Return(nil, errors.New("db down"))
		r := mux.NewRouter()
		RegisterRoutes(r, NewHandler(catalog, nil))

		rec := serve(r, http.MethodGet, "/tools", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
		catalog.AssertExpectations(t)
	})
}

func TestHandler_Checkout(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Success", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/checkouts",
			`{"tool_code":"JAKR","checkout_date":"2015-07-02","rental_days":9,"discount_percent":0}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AgreementResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "JAKR", resp.ToolCode)
		assert.Equal(t, "2015-07-11", resp.DueDate)
		assert.Equal(t, 5, resp.ChargeDays)
		assert.Equal(t, "14.95", resp.PreDiscountCharge)
		assert.Equal(t, "0.00", resp.DiscountAmount)
		assert.Equal(t, "14.95", resp.FinalCharge)
		assert.True(t, strings.HasPrefix(resp.Rendered, "Tool code: JAKR\n"))
		assert.True(t, strings.HasSuffix(resp.Rendered, "Final charge: $14.95"))
	})

	t.Run("Discount rounding", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/checkouts",
			`{"tool_code":"CHNS","checkout_date":"2015-07-02","rental_days":5,"discount_percent":25}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AgreementResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1.12", resp.DiscountAmount)
		assert.Equal(t, "3.35", resp.FinalCharge)
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Discount over 100", `{"tool_code":"JAKR","checkout_date":"2015-09-03","rental_days":5,"discount_percent":101}`, http.StatusBadRequest},
		{"Zero rental days", `{"tool_code":"JAKR","checkout_date":"2015-09-03","rental_days":0}`, http.StatusBadRequest},
		{"Bad date", `{"tool_code":"JAKR","checkout_date":"07/02/15","rental_days":5}`, http.StatusBadRequest},
		{"Missing date", `{"tool_code":"JAKR","rental_days":5}`, http.StatusBadRequest},
		{"Unknown tool", `{"tool_code":"DRLB","checkout_date":"2015-09-03","rental_days":5}`, http.StatusNotFound},
		{"Malformed JSON", `{"tool_code":`, http.StatusBadRequest},
		{"Unknown field", `{"tool_code":"JAKR","checkout_date":"2015-09-03","rental_days":5,"coupon":"x"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/checkouts", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("Echoes caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("Generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

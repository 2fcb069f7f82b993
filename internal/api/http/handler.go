package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/printer"
	"tool-rental-pos/internal/service"
	"tool-rental-pos/internal/utils"
	"tool-rental-pos/internal/validation"
)

// Handler serves the catalog and checkout endpoints
type Handler struct {
	catalog  service.CatalogService
	checkout service.CheckoutService
}

func NewHandler(catalog service.CatalogService, checkout service.CheckoutService) *Handler {
	return &Handler{
		catalog:  catalog,
		checkout: checkout,
	}
}

// ToolResponse is a catalog entry as served over HTTP
type ToolResponse struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	DailyCharge   string `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

// CheckoutRequest is the POST /checkouts body. CheckoutDate is yyyy-mm-dd.
type CheckoutRequest struct {
	ToolCode        string `json:"tool_code"`
	CheckoutDate    string `json:"checkout_date"`
	RentalDays      int    `json:"rental_days"`
	DiscountPercent int    `json:"discount_percent"`
}

// AgreementResponse carries the agreement fields plus the clerk printout
type AgreementResponse struct {
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	DailyRentalCharge string `json:"daily_rental_charge"`
	ChargeDays        int    `json:"charge_days"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   int    `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
	Rendered          string `json:"rendered"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RegisterRoutes wires the handlers and middleware onto router
func RegisterRoutes(router *mux.Router, h *Handler) {
	router.Use(RequestID, Logging, Recoverer)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/tools", h.ListTools).Methods(http.MethodGet)
	router.HandleFunc("/tools/{code}", h.GetTool).Methods(http.MethodGet)
	router.HandleFunc("/checkouts", h.Checkout).Methods(http.MethodPost)
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListTools handles GET /tools
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalog.ListTools(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := make([]ToolResponse, 0, len(tools))
	for _, t := range tools {
		resp = append(resp, toToolResponse(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetTool handles GET /tools/{code}
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	tool, err := h.catalog.GetTool(r.Context(), code)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toToolResponse(*tool))
}

// Checkout handles POST /checkouts
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body CheckoutRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkoutDate, err := validation.ParseCheckoutDate(body.CheckoutDate)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	agreement, err := h.checkout.CheckoutRequest(r.Context(), domain.CheckoutRequest{
		ToolCode:        body.ToolCode,
		CheckoutDate:    checkoutDate,
		RentalDays:      body.RentalDays,
		DiscountPercent: body.DiscountPercent,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAgreementResponse(agreement))
}

func toToolResponse(t domain.Tool) ToolResponse {
	return ToolResponse{
		Code:          t.Code,
		Type:          t.Type,
		Brand:         t.Brand,
		DailyCharge:   t.DailyCharge.StringFixed(utils.CurrencyPlaces),
		WeekdayCharge: t.WeekdayCharge,
		WeekendCharge: t.WeekendCharge,
		HolidayCharge: t.HolidayCharge,
	}
}

func toAgreementResponse(a domain.RentalAgreement) AgreementResponse {
	return AgreementResponse{
		ToolCode:          a.ToolCode,
		ToolType:          a.ToolType,
		ToolBrand:         a.ToolBrand,
		RentalDays:        a.RentalDays,
		CheckoutDate:      a.CheckoutDate.Format(utils.DateLayout),
		DueDate:           a.DueDate.Format(utils.DateLayout),
		DailyRentalCharge: a.DailyRentalCharge.StringFixed(utils.CurrencyPlaces),
		ChargeDays:        a.ChargeDays,
		PreDiscountCharge: a.PreDiscountCharge.StringFixed(utils.CurrencyPlaces),
		DiscountPercent:   a.DiscountPercent,
		DiscountAmount:    a.DiscountAmount.StringFixed(utils.CurrencyPlaces),
		FinalCharge:       a.FinalCharge.StringFixed(utils.CurrencyPlaces),
		Rendered:          printer.RenderAgreement(a),
	}
}

// statusFor maps domain errors onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRentalDays),
		errors.Is(err, domain.ErrInvalidDiscountPercent),
		errors.Is(err, domain.ErrInvalidCheckoutDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrToolNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "request_id", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		respondError(w, status, "Internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

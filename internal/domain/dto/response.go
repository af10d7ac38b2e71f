package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (OptimizationResult for the optimize endpoint)
	Data      interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string       `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time    `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"quantity: must be non-negative"`
	// Details contains additional error details (optional)
	// Example: {"field": "error message"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// StoresResponse lists the supported stores.
// @Description Supported store listing
type StoresResponse struct {
	Stores []string `json:"stores"`
	Count  int      `json:"count" example:"3"`
} // @name StoresResponse

// CatalogItemResponse is one catalog entry in a listing response.
// @Description Catalog listing entry
type CatalogItemResponse struct {
	Store     string  `json:"store" example:"Walmart"`
	Name      string  `json:"name" example:"Whole Milk"`
	Brand     string  `json:"brand,omitempty" example:"Great Value"`
	Price     float64 `json:"price" example:"3.48"`
	Size      string  `json:"size" example:"1 gallon"`
	UnitPrice float64 `json:"unit_price" example:"3.48"`
	Category  string  `json:"category" example:"dairy"`
} // @name CatalogItemResponse

// ItemsResponse lists catalog entries.
// @Description Catalog listing
type ItemsResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Count int                   `json:"count" example:"45"`
} // @name ItemsResponse

// CouponSummaryResponse is one coupon in a listing response.
// @Description Coupon listing entry
type CouponSummaryResponse struct {
	ID          string  `json:"id" example:"mfr-barilla-1"`
	Type        string  `json:"type" example:"manufacturer"`
	Store       string  `json:"store" example:"any"`
	Description string  `json:"description" example:"$0.75 off 2 Barilla pasta"`
	Value       float64 `json:"value" example:"0.75"`
	ItemFilter  string  `json:"item_filter" example:"pasta"`
	Source      string  `json:"source" example:"coupons.com"`
} // @name CouponSummaryResponse

// CouponsResponse lists coupons.
// @Description Coupon listing
type CouponsResponse struct {
	Coupons []CouponSummaryResponse `json:"coupons"`
	Count   int                     `json:"count" example:"17"`
} // @name CouponsResponse

// CategoriesResponse lists the distinct product categories.
// @Description Category listing
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Count      int      `json:"count" example:"7"`
} // @name CategoriesResponse

// QuickOptimizeResponse is the condensed summary returned by the
// quick-optimize endpoint.
// @Description Condensed optimization summary
type QuickOptimizeResponse struct {
	GrandTotal        float64  `json:"grand_total" example:"10.87"`
	TotalSavings      float64  `json:"total_savings" example:"1.57"`
	SavingsPercentage float64  `json:"savings_percentage" example:"12.6"`
	StoresToVisit     []string `json:"stores_to_visit"`
	ActionSteps       []string `json:"action_steps"`
} // @name QuickOptimizeResponse

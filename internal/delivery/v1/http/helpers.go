package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ProductResponse — товар во внешнем формате: цена как десятичная строка.
type ProductResponse struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       string  `json:"price"`
	HealthScore float64 `json:"healthFactorScore"`
	ImageURL    *string `json:"imageUrl"`
}

type CartEntryResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int32           `json:"quantity"`
}

type AuthResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ExternalUserID *int64 `json:"instacartUserId"`
	Token          string `json:"token"`
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrNegativeQuantity):
		return http.StatusBadRequest, e.ErrNegativeQuantity.Error()
	case errors.Is(err, e.ErrInvalidGamma):
		return http.StatusBadRequest, e.ErrInvalidGamma.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrUserExists):
		return http.StatusConflict, e.ErrUserExists.Error()
	case errors.Is(err, e.ErrCartNotFound):
		return http.StatusNotFound, e.ErrCartNotFound.Error()
	case errors.Is(err, e.ErrCartItemNotFound):
		return http.StatusNotFound, e.ErrCartItemNotFound.Error()
	case errors.Is(err, e.ErrRecommendationUnavailable):
		return http.StatusServiceUnavailable, e.ErrRecommendationUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// formatPriceCents форматирует цену из центов в десятичную строку вида "5.99".
func formatPriceCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func toProductResponse(view usecase.ProductView) ProductResponse {
	return ProductResponse{
		ProductID:   view.ID,
		ProductName: view.Name,
		Price:       formatPriceCents(view.Price),
		HealthScore: view.HealthScore,
		ImageURL:    view.ImageURL,
	}
}

func toArrProductResponse(views []usecase.ProductView) []ProductResponse {
	result := make([]ProductResponse, 0, len(views))
	for _, view := range views {
		result = append(result, toProductResponse(view))
	}

	return result
}

func toArrCartEntryResponse(entries []usecase.CartEntryView) []CartEntryResponse {
	result := make([]CartEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, CartEntryResponse{
			Product:  toProductResponse(entry.Product),
			Quantity: entry.Quantity,
		})
	}

	return result
}

func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

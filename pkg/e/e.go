package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidProductID     = fmt.Errorf("product id must be positive")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be a positive integer")
	ErrNegativeQuantity     = fmt.Errorf("quantity must be non-negative")
	ErrInvalidGamma         = fmt.Errorf("gamma must be a number")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 401 Unauthorized / 409 Conflict
	ErrUnauthorized       = fmt.Errorf("authorization required")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserExists         = fmt.Errorf("user already exists")

	// 404 Not Found
	// ErrCartNotFound сигнализирует о нарушении целостности данных:
	// у аутентифицированного пользователя корзина должна существовать всегда.
	ErrCartNotFound     = fmt.Errorf("user cart not found")
	ErrCartItemNotFound = fmt.Errorf("item not found in cart")
	ErrUserNotFound     = fmt.Errorf("user not found")

	// 503 Service Unavailable
	ErrRecommendationUnavailable = fmt.Errorf("recommendation service unavailable")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

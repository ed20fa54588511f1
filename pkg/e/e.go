package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки инвариантов корзины
	ErrRejectedLot        = fmt.Errorf("quantity is not an allowed lot size")
	ErrInsufficientStock  = fmt.Errorf("insufficient stock")
	ErrInvariantViolation = fmt.Errorf("inconsistent cart state detected")

	// Отсутствующие сущности
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrCartNotFound    = fmt.Errorf("cart not found")

	// Временные ошибки хранилища, повтор запроса безопасен
	ErrTransientStorage = fmt.Errorf("transient storage failure")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPhone     = fmt.Errorf("invalid phone number")

	// Ошибки импорта инвентаря
	ErrInventoryHeader  = fmt.Errorf("inventory csv header is malformed")
	ErrEmptyInventory   = fmt.Errorf("inventory csv has no data rows")
	ErrProductNameParts = fmt.Errorf("cannot compose product name from row")

	// Прочее
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

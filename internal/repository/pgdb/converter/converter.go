//go:generate goverter gen github.com/seller-tech/seller-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CartConverter преобразует сущности Cart между domain и моделью PostgreSQL.
// Позиции корзины загружаются отдельно и в конвертацию шапки не входят.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:ignore Items
type CartConverter interface {
	ToModel(entity *domain.Cart) *CartModel
	ToEntity(model *CartModel) *domain.Cart
}

// CartItemConverter преобразует позиции корзины между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertLot
// goverter:extend ConvertQuantity
type CartItemConverter interface {
	ToModel(entity *domain.CartItem) *CartItemModel
	ToEntity(model *CartItemModel) *domain.CartItem
	ToArrEntity(models []*CartItemModel) []*domain.CartItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertStatusString
// goverter:extend ConvertEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertLot(q int32) domain.Lot {
	return domain.Lot(q)
}

func ConvertQuantity(l domain.Lot) int32 {
	return int32(l)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertStatusString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertEventTypeString(t usecase.OutboxEventType) string {
	return string(t)
}

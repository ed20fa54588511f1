package usecase

import (
	"context"

	"github.com/seller-tech/seller-backend/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
	Search(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, error)
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

type CartRepository interface {
	Create(ctx context.Context, phone string) (*domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	// GetByIDForUpdate блокирует строку корзины до конца транзакции:
	// это и есть взаимное исключение мутаций одной корзины.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cart, error)
	GetLatestByPhone(ctx context.Context, phone string) (*domain.Cart, error)
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error)
	UpsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID int64, productID int64) (bool, error)
	Touch(ctx context.Context, cartID int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

// CatalogUseCase реализует поиск по каталогу и выдачу снапшотов товаров.
type CatalogUseCase struct {
	productRepo  ProductRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
	queryTimeout time.Duration
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
	queryTimeout time.Duration,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// SearchProducts ищет товары по фильтрам. Пустой результат — не ошибка.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, error) {
	const op = "CatalogUseCase.SearchProducts"

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	products, err := c.productRepo.Search(ctx, req)
	if err != nil {
		if isTransientStorageErr(err) {
			return nil, e.Wrap(op, e.ErrTransientStorage)
		}
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору, сначала пробуя кэш.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	// Промах или недоступность кэша не фатальны — падаем обратно на БД
	cached, err := c.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if info, ok := cached[id]; ok {
			return &info, nil
		}
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(fmt.Sprintf("%s: product %d", op, id), e.ErrProductNotFound)
		}
		if isTransientStorageErr(err) {
			return nil, e.Wrap(op, e.ErrTransientStorage)
		}
		return nil, e.Wrap(op, err)
	}

	info := ProductInfo{
		ID:                   product.ID,
		Name:                 product.Name,
		Description:          product.Description,
		Category:             product.Category,
		Size:                 product.Size,
		Color:                product.Color,
		PriceFiftyUnits:      product.PriceFiftyUnits,
		PriceOneHundredUnits: product.PriceOneHundredUnits,
		PriceTwoHundredUnits: product.PriceTwoHundredUnits,
		Stock:                product.Stock,
	}

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, bgCancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer bgCancel()

		if err := c.cacheRepo.SetProducts(bgCtx, []ProductInfo{info}); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}

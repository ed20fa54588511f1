package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Колонки исходного CSV инвентаря поставщика.
const (
	colGarmentType     = "TIPO_PRENDA"
	colSize            = "TALLA"
	colColor           = "COLOR"
	colCategory        = "CATEGORÍA"
	colStock           = "CANTIDAD_DISPONIBLE"
	colPriceFifty      = "PRECIO_50_U"
	colPriceHundred    = "PRECIO_100_U"
	colPriceTwoHundred = "PRECIO_200_U"
	colDescription     = "DESCRIPCIÓN"
	colAvailable       = "DISPONIBLE"
)

// InventoryUseCase импортирует CSV-файлы инвентаря из объектного хранилища в каталог.
// Строки нормализуются как в пайплайне поставщика: имя товара собирается из типа
// изделия, размера и цвета; недоступные позиции и отрицательные цены отбрасываются.
type InventoryUseCase struct {
	objectStore InventoryObjectStore
	productRepo ProductRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewInventoryUC(
	objectStore InventoryObjectStore,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		objectStore: objectStore,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// ImportInventory загружает CSV-объект и апсертит товары одной транзакцией.
// Товары никогда не удаляются импортом: на них могут ссылаться позиции корзин.
func (i *InventoryUseCase) ImportInventory(ctx context.Context, req *ImportInventoryReq) (*ImportInventoryRes, error) {
	const op = "InventoryUseCase.ImportInventory"

	runID := uuid.NewString()

	if strings.TrimSpace(req.ObjectKey) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	obj, err := i.objectStore.FetchObject(ctx, req.ObjectKey)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer obj.Close()

	products, skipped, err := i.parseInventoryCSV(obj)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyInventory)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	touched := make([]int64, 0, len(products))
	var upserted *domain.Product
	for _, product := range products {
		upserted, err = i.productRepo.Upsert(ctx, product)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		touched = append(touched, upserted.ID)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша старых данных затронутых товаров
	if err := i.cacheRepo.DeleteProducts(ctx, touched); err != nil {
		i.logger.Warnf("Failed to invalidate product cache after import: %v", e.Wrap(op, err))
	}

	i.logger.Infof("Inventory import %s finished: %d upserted, %d skipped", runID, len(products), skipped)

	return &ImportInventoryRes{RunID: runID, Processed: len(products), Skipped: skipped}, nil
}

// parseInventoryCSV читает и нормализует строки инвентаря.
func (i *InventoryUseCase) parseInventoryCSV(r io.Reader) ([]*domain.Product, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, e.ErrInventoryHeader
	}

	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.TrimSpace(name)] = idx
	}

	required := []string{
		colGarmentType, colSize, colColor, colCategory, colStock,
		colPriceFifty, colPriceHundred, colPriceTwoHundred,
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, 0, e.Wrap(fmt.Sprintf("missing column %q", name), e.ErrInventoryHeader)
		}
	}

	var (
		products []*domain.Product
		skipped  int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// Битая строка не обрывает импорт и не маскирует остаток файла под EOF
		if err != nil {
			i.logger.Warnf("Skipping malformed inventory row: %v", err)
			skipped++
			continue
		}

		product, err := i.parseRow(cols, record)
		if err != nil {
			i.logger.Warnf("Skipping inventory row: %v", err)
			skipped++
			continue
		}
		if product == nil {
			skipped++
			continue
		}

		products = append(products, product)
	}

	return products, skipped, nil
}

// parseRow превращает строку CSV в товар. Возвращает (nil, nil) для строк,
// которые отбрасываются без ошибки (позиция помечена недоступной).
func (i *InventoryUseCase) parseRow(cols map[string]int, record []string) (*domain.Product, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	// Недоступные позиции не попадают в каталог
	available := strings.ToUpper(field(colAvailable))
	if available == "" || available == "NO" || available == "N" {
		return nil, nil
	}

	garment := strings.ToLower(field(colGarmentType))
	size := strings.ToLower(field(colSize))
	color := strings.ToLower(field(colColor))
	if garment == "" || size == "" || color == "" {
		return nil, e.ErrProductNameParts
	}
	name := garment + "_" + size + "_" + color

	priceFifty, err := parsePriceToCents(field(colPriceFifty))
	if err != nil {
		return nil, e.Wrap(name, err)
	}
	priceHundred, err := parsePriceToCents(field(colPriceHundred))
	if err != nil {
		return nil, e.Wrap(name, err)
	}
	priceTwoHundred, err := parsePriceToCents(field(colPriceTwoHundred))
	if err != nil {
		return nil, e.Wrap(name, err)
	}

	stock, err := strconv.Atoi(field(colStock))
	if err != nil || stock < 0 {
		return nil, e.Wrap(fmt.Sprintf("%s: stock %q", name, field(colStock)), e.ErrMissingFields)
	}

	product := domain.NewProduct(
		name,
		field(colDescription),
		strings.ToLower(field(colCategory)),
		size,
		color,
		priceFifty,
		priceHundred,
		priceTwoHundred,
		int32(stock),
	)

	if err := product.ValidatePricing(); err != nil {
		return nil, err
	}

	return product, nil
}

// parsePriceToCents переводит строку вида "599.99" или "600" в центы.
// Отрицательные, неразборчивые и слишком большие значения дают ErrInvalidPrice,
// больше двух знаков после запятой — ErrPricePrecision.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (1B in cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// CentsToDecimalString форматирует цену в копейках в строку с двумя знаками.
// Используется на границах (HTTP, события), внутри ядра цены остаются целыми.
func CentsToDecimalString(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

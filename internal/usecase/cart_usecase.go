package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

// CartUseCase — движок мутаций корзины. Каждая мутация выполняется как одна
// транзакция: блокировка строки корзины, проверка лота и стока, пересчёт суммы,
// outbox-событие, атомарный коммит. Частично применённые мутации невидимы.
type CartUseCase struct {
	cartRepo     CartRepository
	productRepo  ProductRepository
	outboxRepo   OutboxRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
	queryTimeout time.Duration
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
	queryTimeout time.Duration,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		outboxRepo:   outboxRepo,
		dbPool:       dbPool,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// validatedItem — позиция запроса после прохождения валидатора лотов.
type validatedItem struct {
	ProductID int64
	Lot       domain.Lot
}

// CreateCart создаёт новую корзину, опционально с начальными позициями.
// Все лоты проверяются до первого обращения к хранилищу. Всегда создаёт новую
// корзину — повтор вызова даёт вторую корзину, это ожидаемое поведение.
func (c *CartUseCase) CreateCart(ctx context.Context, req *CreateCartReq) (*CreateCartRes, error) {
	const op = "CartUseCase.CreateCart"

	if strings.TrimSpace(req.Phone) == "" {
		return nil, e.Wrap(op, e.ErrInvalidPhone)
	}

	// Жёсткий гейт валидатора: при любой невалидной позиции запись не происходит
	validated := make([]validatedItem, 0, len(req.Items))
	for _, item := range req.Items {
		lot, err := domain.ParseLot(item.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		validated = append(validated, validatedItem{ProductID: item.ProductID, Lot: lot})
	}

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var cart *domain.Cart
	cart, err = c.cartRepo.Create(ctx, req.Phone)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	snapshots := make(map[int64]*domain.Product, len(validated))
	var product *domain.Product
	for _, v := range validated {
		product, err = c.loadProduct(ctx, v.ProductID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		if err = ensureStock(product, v.Lot); err != nil {
			return nil, e.Wrap(op, err)
		}

		snapshots[product.ID] = product
		cart.AddOrUpdateItem(product.ID, v.Lot)
	}

	for _, item := range cart.Items {
		if _, err = c.cartRepo.UpsertItem(ctx, item); err != nil {
			return nil, e.Wrap(op, c.translateStorage(err))
		}
	}

	var total int64
	total, err = cart.Total(snapshots)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.writeOutbox(ctx, EventCartCreated, cart.ID, 0, 0, total); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	infos, err := buildItemInfos(cart.Items, snapshots)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CreateCartRes{CartID: cart.ID, Items: infos, Total: total}, nil
}

// MutateItem выполняет одну логическую мутацию позиции: замену количества,
// добавление новой позиции или удаление (количество 0). Идемпотентна при повторе
// с теми же аргументами.
func (c *CartUseCase) MutateItem(ctx context.Context, req *MutateItemReq) (*MutateItemRes, error) {
	const op = "CartUseCase.MutateItem"

	if req.Quantity == 0 {
		return c.removeItem(ctx, req.CartID, req.ProductID)
	}

	// Валидация лота — до каких-либо обращений к хранилищу
	lot, err := domain.ParseLot(req.Quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var cart *domain.Cart
	cart, err = c.lockCart(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var product *domain.Product
	product, err = c.loadProduct(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = ensureStock(product, lot); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Замена, не инкремент: повторный вызов с тем же количеством ничего не меняет
	if _, err = c.cartRepo.UpsertItem(ctx, domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  lot,
	}); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	if err = c.cartRepo.Touch(ctx, cart.ID); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	var total int64
	total, err = c.recomputeTotal(ctx, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.writeOutbox(ctx, EventItemSet, cart.ID, product.ID, lot.Quantity(), total); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	subtotal, err := product.Subtotal(lot)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	unitPrice, err := product.UnitPriceFor(lot)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewCartItemInfo(product.ID, product.Name, lot.Quantity(), unitPrice, subtotal)
	return &MutateItemRes{Item: &info, Total: total}, nil
}

// removeItem удаляет позицию. Отсутствие позиции — no-op с отдельным сигналом,
// а не ошибка: повтор удаления безопасен.
func (c *CartUseCase) removeItem(ctx context.Context, cartID int64, productID int64) (*MutateItemRes, error) {
	const op = "CartUseCase.removeItem"

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var cart *domain.Cart
	cart, err = c.lockCart(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var removed bool
	removed, err = c.cartRepo.DeleteItem(ctx, cartID, productID)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	var total int64
	total, err = c.recomputeTotal(ctx, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if removed {
		if err = c.cartRepo.Touch(ctx, cartID); err != nil {
			return nil, e.Wrap(op, c.translateStorage(err))
		}

		if err = c.writeOutbox(ctx, EventItemRemoved, cartID, productID, 0, total); err != nil {
			return nil, e.Wrap(op, c.translateStorage(err))
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	return &MutateItemRes{Removed: removed, NotFound: !removed, Total: total}, nil
}

// ListItems возвращает позиции корзины с посчитанными стоимостями.
// Сумма всегда пересчитывается из текущего состояния хранилища.
func (c *CartUseCase) ListItems(ctx context.Context, cartID int64) (*ListItemsRes, error) {
	const op = "CartUseCase.ListItems"

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	cart, err := c.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(fmt.Sprintf("%s: cart %d", op, cartID), e.ErrCartNotFound)
		}
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	cart.Items, err = c.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, c.translateStorage(err))
	}

	snapshots, err := c.loadSnapshots(ctx, cart.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	total, err := cart.Total(snapshots)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos, err := buildItemInfos(cart.Items, snapshots)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListItemsRes{CartID: cart.ID, Items: infos, Total: total}, nil
}

// GetCartIDByPhone возвращает идентификатор актуальной корзины покупателя.
func (c *CartUseCase) GetCartIDByPhone(ctx context.Context, phone string) (int64, error) {
	const op = "CartUseCase.GetCartIDByPhone"

	if strings.TrimSpace(phone) == "" {
		return 0, e.Wrap(op, e.ErrInvalidPhone)
	}

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	cart, err := c.cartRepo.GetLatestByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, e.Wrap(fmt.Sprintf("%s: phone %s", op, phone), e.ErrCartNotFound)
		}
		return 0, e.Wrap(op, c.translateStorage(err))
	}

	return cart.ID, nil
}

// lockCart читает корзину с блокировкой строки до конца транзакции.
func (c *CartUseCase) lockCart(ctx context.Context, cartID int64) (*domain.Cart, error) {
	cart, err := c.cartRepo.GetByIDForUpdate(ctx, cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(fmt.Sprintf("cart %d", cartID), e.ErrCartNotFound)
		}
		return nil, c.translateStorage(err)
	}

	return cart, nil
}

// loadProduct возвращает свежий снапшот товара на момент мутации.
func (c *CartUseCase) loadProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(fmt.Sprintf("product %d", id), e.ErrProductNotFound)
		}
		return nil, c.translateStorage(err)
	}

	return product, nil
}

// recomputeTotal перечитывает позиции корзины и пересчитывает сумму внутри транзакции.
func (c *CartUseCase) recomputeTotal(ctx context.Context, cart *domain.Cart) (int64, error) {
	items, err := c.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return 0, c.translateStorage(err)
	}
	cart.Items = items

	snapshots, err := c.loadSnapshots(ctx, items)
	if err != nil {
		return 0, err
	}

	return cart.Total(snapshots)
}

// loadSnapshots загружает снапшоты товаров для позиций корзины.
func (c *CartUseCase) loadSnapshots(ctx context.Context, items []domain.CartItem) (map[int64]*domain.Product, error) {
	if len(items) == 0 {
		return map[int64]*domain.Product{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := c.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, c.translateStorage(err)
	}

	snapshots := make(map[int64]*domain.Product, len(products))
	for _, product := range products {
		snapshots[product.ID] = product
	}

	return snapshots, nil
}

// writeOutbox фиксирует событие изменения корзины в той же транзакции, что и мутация.
func (c *CartUseCase) writeOutbox(
	ctx context.Context,
	eventType OutboxEventType,
	cartID int64,
	productID int64,
	quantity int32,
	total int64,
) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(CartEventPayload{
		EventID:    eventID,
		EventType:  string(eventType),
		OccurredAt: time.Now().UnixNano(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		CartTotal:  total,
	})
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, cartID, payload))
	return err
}

// buildItemInfos собирает DTO позиций; повреждённое количество в хранилище
// поднимается как нарушение инварианта.
func buildItemInfos(items []domain.CartItem, snapshots map[int64]*domain.Product) ([]CartItemInfo, error) {
	infos := make([]CartItemInfo, 0, len(items))
	for _, item := range items {
		lot, err := domain.ParseLot(int32(item.Quantity))
		if err != nil {
			return nil, e.Wrap(
				fmt.Sprintf("cart %d, product %d: persisted quantity %d", item.CartID, item.ProductID, item.Quantity),
				e.ErrInvariantViolation,
			)
		}

		product, ok := snapshots[item.ProductID]
		if !ok {
			return nil, e.Wrap(fmt.Sprintf("product %d", item.ProductID), e.ErrProductNotFound)
		}

		unitPrice, err := product.UnitPriceFor(lot)
		if err != nil {
			return nil, err
		}

		subtotal, err := product.Subtotal(lot)
		if err != nil {
			return nil, err
		}

		infos = append(infos, NewCartItemInfo(product.ID, product.Name, lot.Quantity(), unitPrice, subtotal))
	}

	return infos, nil
}

// ensureStock проверяет, что запрошенный лот покрыт остатком на складе.
func ensureStock(product *domain.Product, lot domain.Lot) error {
	if product.Stock < lot.Quantity() {
		return e.Wrap(
			fmt.Sprintf("product %d: requested %d, available %d", product.ID, lot.Quantity(), product.Stock),
			e.ErrInsufficientStock,
		)
	}

	return nil
}

// translateStorage переводит низкоуровневые ошибки хранилища в таксономию ядра.
// Это единственное место, где такой перевод разрешён.
func (c *CartUseCase) translateStorage(err error) error {
	if err == nil {
		return nil
	}

	if isTransientStorageErr(err) {
		return e.Wrap(err.Error(), e.ErrTransientStorage)
	}

	return err
}

func isTransientStorageErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	transientPhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"connection reset",
		"broken pipe",
		"no such host",
		"conn closed",
	}
	for _, phrase := range transientPhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}

	return false
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/seller-tech/seller-backend/internal/domain"
)

// fakeTxBeginner подменяет пул соединений: выдаёт фиктивные транзакции и
// считает коммиты и откаты.
type fakeTxBeginner struct {
	mu         sync.Mutex
	beginErr   error
	begun      int
	committed  int
	rolledBack int
}

func (f *fakeTxBeginner) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}

	f.mu.Lock()
	f.begun++
	f.mu.Unlock()
	return &fakeTx{beginner: f}, nil
}

type fakeTx struct {
	pgx.Tx
	beginner *fakeTxBeginner
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.beginner.mu.Lock()
	t.beginner.committed++
	t.beginner.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.beginner.mu.Lock()
	t.beginner.rolledBack++
	t.beginner.mu.Unlock()
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	getErr   error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	product, ok := f.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return product, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, error) {
	return nil, nil
}

func (f *fakeProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if product.ID == 0 {
		product.ID = int64(len(f.products) + 1)
	}
	f.products[product.ID] = product
	return product, nil
}

type fakeCartRepo struct {
	mu          sync.Mutex
	nextID      int64
	carts       map[int64]*domain.Cart
	items       map[int64]map[int64]domain.CartItem
	createCalls int
	upsertCalls int
	upsertErr   error
	lockErr     error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[int64]*domain.Cart),
		items: make(map[int64]map[int64]domain.CartItem),
	}
}

func (f *fakeCartRepo) Create(ctx context.Context, phone string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	f.nextID++
	cart := &domain.Cart{ID: f.nextID, Phone: phone, CreatedAt: time.Now()}
	f.carts[cart.ID] = cart
	f.items[cart.ID] = make(map[int64]domain.CartItem)
	return &domain.Cart{ID: cart.ID, Phone: cart.Phone, CreatedAt: cart.CreatedAt}, nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cart, ok := f.carts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.Cart{ID: cart.ID, Phone: cart.Phone, CreatedAt: cart.CreatedAt, UpdatedAt: cart.UpdatedAt}, nil
}

func (f *fakeCartRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cart, error) {
	f.mu.Lock()
	lockErr := f.lockErr
	f.mu.Unlock()

	if lockErr != nil {
		return nil, lockErr
	}
	return f.GetByID(ctx, id)
}

func (f *fakeCartRepo) GetLatestByPhone(ctx context.Context, phone string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var latest *domain.Cart
	for _, cart := range f.carts {
		if cart.Phone != phone {
			continue
		}
		if latest == nil || cart.ID > latest.ID {
			latest = cart
		}
	}
	if latest == nil {
		return nil, pgx.ErrNoRows
	}
	return &domain.Cart{ID: latest.ID, Phone: latest.Phone, CreatedAt: latest.CreatedAt}, nil
}

func (f *fakeCartRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]domain.CartItem, 0, len(f.items[cartID]))
	for _, item := range f.items[cartID] {
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeCartRepo) UpsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.upsertCalls++
	if f.upsertErr != nil {
		return domain.CartItem{}, f.upsertErr
	}

	if f.items[item.CartID] == nil {
		f.items[item.CartID] = make(map[int64]domain.CartItem)
	}
	f.items[item.CartID][item.ProductID] = item
	return item, nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, cartID int64, productID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[cartID][productID]; !ok {
		return false, nil
	}
	delete(f.items[cartID], productID)
	return true, nil
}

func (f *fakeCartRepo) Touch(ctx context.Context, cartID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cart, ok := f.carts[cartID]; ok {
		now := time.Now()
		cart.UpdatedAt = &now
	}
	return nil
}

// itemCount возвращает число позиций корзины без обращения через интерфейс.
func (f *fakeCartRepo) itemCount(cartID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[cartID])
}

func (f *fakeCartRepo) putItem(cartID int64, item domain.CartItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.items[cartID] == nil {
		f.items[cartID] = make(map[int64]domain.CartItem)
	}
	f.items[cartID][item.ProductID] = item
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeOutboxRepo) eventTypes() []OutboxEventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	types := make([]OutboxEventType, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.EventType)
	}
	return types
}

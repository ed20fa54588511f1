package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/tr"
)

const cartColumns = `id, phone_number, created_at, updated_at`

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
type CartRepo struct {
	pool     *pgxpool.Pool
	conv     converter.CartConverter
	itemConv converter.CartItemConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter, itemConv converter.CartItemConverter) *CartRepo {
	return &CartRepo{
		pool:     pool,
		conv:     conv,
		itemConv: itemConv,
	}
}

func (c *CartRepo) runner(ctx context.Context) queryRunner {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}
	return c.pool
}

// Create создаёт новую корзину для номера телефона. Уникальность номера не
// требуется: повторное создание заводит новую корзину.
func (c *CartRepo) Create(ctx context.Context, phone string) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `INSERT INTO carts (phone_number) VALUES ($1) RETURNING ` + cartColumns

	var model converter.CartModel
	err = tx.QueryRow(ctx, query, phone).Scan(
		&model.ID, &model.Phone, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`

	return c.scanCart(ctx, query, id)
}

// GetByIDForUpdate читает корзину с блокировкой строки (FOR UPDATE): конкурентная
// мутация той же корзины будет ждать конца текущей транзакции.
func (c *CartRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1 FOR UPDATE`

	var model converter.CartModel
	err = tx.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Phone, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// GetLatestByPhone возвращает последнюю созданную корзину номера.
func (c *CartRepo) GetLatestByPhone(ctx context.Context, phone string) (*domain.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts
		WHERE phone_number = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	return c.scanCart(ctx, query, phone)
}

func (c *CartRepo) scanCart(ctx context.Context, query string, arg any) (*domain.Cart, error) {
	var model converter.CartModel
	err := c.runner(ctx).QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.Phone, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `SELECT cart_id, product_id, quantity FROM cart_items
		WHERE cart_id = $1
		ORDER BY product_id`

	rows, err := c.runner(ctx).Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var model converter.CartItemModel
		if err := rows.Scan(&model.CartID, &model.ProductID, &model.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		items = append(items, *c.itemConv.ToEntity(&model))
	}

	return items, rows.Err()
}

// UpsertItem записывает позицию корзины. Повторная запись того же товара
// замещает количество, а не суммирует его.
func (c *CartRepo) UpsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return domain.CartItem{}, e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.itemConv.ToModel(&item)
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING cart_id, product_id, quantity;
	`

	var saved converter.CartItemModel
	err = tx.QueryRow(ctx, query, model.CartID, model.ProductID, model.Quantity).Scan(
		&saved.CartID, &saved.ProductID, &saved.Quantity,
	)
	if err != nil {
		return domain.CartItem{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return *c.itemConv.ToEntity(&saved), nil
}

// DeleteItem удаляет позицию и сообщает, существовала ли она.
func (c *CartRepo) DeleteItem(ctx context.Context, cartID int64, productID int64) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	tag, err := tx.Exec(ctx, query, cartID, productID)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// Touch обновляет отметку времени корзины после мутации её позиций.
func (c *CartRepo) Touch(ctx context.Context, cartID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE carts SET updated_at = NOW() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

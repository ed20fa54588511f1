package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/internal/repository/pgdb/converter"
	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/tr"
)

const productColumns = `id, name, description, category, size, color,
		price_fivety_units, price_one_hundred_units, price_two_hundred_units,
		stock, created_at, updated_at`

// queryRunner объединяет pgxpool.Pool и pgx.Tx: читающие методы работают и
// внутри транзакции мутации, и вне её.
type queryRunner interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) runner(ctx context.Context) queryRunner {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}
	return p.pool
}

// GetByID возвращает товар по идентификатору. Отсутствие строки — pgx.ErrNoRows,
// перевод в доменную ошибку происходит уровнем выше.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var model converter.ProductModel
	err := p.runner(ctx).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.Category, &model.Size, &model.Color,
		&model.PriceFiftyUnits, &model.PriceOneHundredUnits, &model.PriceTwoHundredUnits,
		&model.Stock, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByIDs возвращает товары по списку идентификаторов.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := p.runner(ctx).Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Category, &model.Size, &model.Color,
			&model.PriceFiftyUnits, &model.PriceOneHundredUnits, &model.PriceTwoHundredUnits,
			&model.Stock, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, p.conv.ToEntity(&model))
	}

	return result, rows.Err()
}

// Search строит динамический запрос по заданным фильтрам (AND-семантика).
// Поисковая строка матчится по имени и описанию без учёта регистра.
func (p *ProductRepo) Search(ctx context.Context, req *usecase.SearchProductsReq) ([]usecase.ProductInfo, error) {
	query := `SELECT id, name, description, category, size, color,
		price_fivety_units, price_one_hundred_units, price_two_hundred_units, stock
		FROM products WHERE 1=1`
	args := make([]any, 0, 5)

	if req.Query != "" {
		args = append(args, "%"+req.Query+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if req.Category != "" {
		args = append(args, strings.ToLower(req.Category))
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if req.Size != "" {
		args = append(args, strings.ToLower(req.Size))
		query += fmt.Sprintf(" AND size = $%d", len(args))
	}
	if req.Color != "" {
		args = append(args, strings.ToLower(req.Color))
		query += fmt.Sprintf(" AND color = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(
			&info.ID, &info.Name, &info.Description, &info.Category, &info.Size, &info.Color,
			&info.PriceFiftyUnits, &info.PriceOneHundredUnits, &info.PriceTwoHundredUnits, &info.Stock,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}

	return result, rows.Err()
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному имени.
// Товары не удаляются: на них могут ссылаться позиции корзин (FK RESTRICT).
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			name, description, category, size, color,
			price_fivety_units, price_one_hundred_units, price_two_hundred_units, stock
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name)
		DO UPDATE SET
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			size = EXCLUDED.size,
			color = EXCLUDED.color,
			price_fivety_units = EXCLUDED.price_fivety_units,
			price_one_hundred_units = EXCLUDED.price_one_hundred_units,
			price_two_hundred_units = EXCLUDED.price_two_hundred_units,
			stock = EXCLUDED.stock,
			updated_at = NOW()
		RETURNING ` + productColumns + `;
	`

	var saved converter.ProductModel
	err = tx.QueryRow(ctx, query,
		model.Name, model.Description, model.Category, model.Size, model.Color,
		model.PriceFiftyUnits, model.PriceOneHundredUnits, model.PriceTwoHundredUnits, model.Stock,
	).Scan(
		&saved.ID, &saved.Name, &saved.Description, &saved.Category, &saved.Size, &saved.Color,
		&saved.PriceFiftyUnits, &saved.PriceOneHundredUnits, &saved.PriceTwoHundredUnits,
		&saved.Stock, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&saved), nil
}

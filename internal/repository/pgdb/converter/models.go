package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
// Колонка price_fivety_units сохраняет историческое написание из данных поставщика.
type ProductModel struct {
	ID                   int64      `db:"id"`
	Name                 string     `db:"name"`
	Description          string     `db:"description"`
	Category             string     `db:"category"`
	Size                 string     `db:"size"`
	Color                string     `db:"color"`
	PriceFiftyUnits      int64      `db:"price_fivety_units"`
	PriceOneHundredUnits int64      `db:"price_one_hundred_units"`
	PriceTwoHundredUnits int64      `db:"price_two_hundred_units"`
	Stock                int32      `db:"stock"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at"`
}

// CartModel представляет запись таблицы carts в PostgreSQL.
type CartModel struct {
	ID        int64      `db:"id"`
	Phone     string     `db:"phone_number"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// CartItemModel представляет запись таблицы cart_items в PostgreSQL.
type CartItemModel struct {
	CartID    int64 `db:"cart_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int32 `db:"quantity"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	CartID      int64      `db:"cart_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

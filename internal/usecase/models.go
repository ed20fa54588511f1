package usecase

// CART USECASE

// CartItemReq — запрошенная позиция корзины до валидации лота.
type CartItemReq struct {
	ProductID int64
	Quantity  int32
}

// CreateCartReq — запрос на создание корзины, опционально с начальными позициями.
type CreateCartReq struct {
	Phone string
	Items []CartItemReq
}

// CreateCartRes — созданная корзина с эхом позиций и пересчитанной суммой.
type CreateCartRes struct {
	CartID int64
	Items  []CartItemInfo
	Total  int64
}

// MutateItemReq — одна логическая мутация позиции. Нулевое количество означает удаление.
type MutateItemReq struct {
	CartID    int64
	ProductID int64
	Quantity  int32
}

// MutateItemRes — результат мутации. При удалении отсутствовавшей позиции
// NotFound=true, Removed=false: это подтверждение no-op, а не ошибка.
type MutateItemRes struct {
	Item     *CartItemInfo
	Removed  bool
	NotFound bool
	Total    int64
}

// ListItemsRes — позиции корзины с посчитанными стоимостями и суммой.
type ListItemsRes struct {
	CartID int64
	Items  []CartItemInfo
	Total  int64
}

// CartItemInfo — DTO позиции корзины. Цены в копейках.
type CartItemInfo struct {
	ProductID int64
	Name      string
	Quantity  int32
	UnitPrice int64
	Subtotal  int64
}

// CATALOG USECASE

// SearchProductsReq — фильтры поиска. Заданные поля комбинируются через AND.
type SearchProductsReq struct {
	Query    string
	Category string
	Size     string
	Color    string
}

// ProductInfo — DTO товара для внешнего использования. Цены в копейках.
type ProductInfo struct {
	ID                   int64
	Name                 string
	Description          string
	Category             string
	Size                 string
	Color                string
	PriceFiftyUnits      int64
	PriceOneHundredUnits int64
	PriceTwoHundredUnits int64
	Stock                int32
}

// INVENTORY USECASE

type ImportInventoryReq struct {
	ObjectKey string
}

type ImportInventoryRes struct {
	RunID     string
	Processed int
	Skipped   int
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	CartID  int64
	Payload []byte
}

// MAPPERS

func NewWriteRawMessageReq(cartID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		CartID:  cartID,
		Payload: payload,
	}
}

func NewCartItemInfo(productID int64, name string, quantity int32, unitPrice int64, subtotal int64) CartItemInfo {
	return CartItemInfo{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
	}
}

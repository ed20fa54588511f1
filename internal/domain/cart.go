package domain

import (
	"fmt"
	"time"

	"github.com/seller-tech/seller-backend/pkg/e"
)

// CartItem — позиция корзины. Количество всегда принадлежит набору лотов,
// нулевое количество означает удаление позиции, а не позицию с нулём.
type CartItem struct {
	CartID    int64
	ProductID int64
	Quantity  Lot
}

// Cart — агрегат корзины: граница консистентности для корзины и её позиций.
// Производные суммы пересчитываются при каждом чтении и никогда не кэшируются между мутациями.
type Cart struct {
	ID        int64
	Phone     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	Items     []CartItem
}

func NewCart(phone string) *Cart {
	return &Cart{
		Phone: phone,
	}
}

// AddOrUpdateItem добавляет позицию или ЗАМЕНЯЕТ количество существующей.
// Повторное добавление того же товара не суммирует количества.
func (c *Cart) AddOrUpdateItem(productID int64, quantity Lot) (CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return c.Items[i], true
		}
	}

	item := CartItem{CartID: c.ID, ProductID: productID, Quantity: quantity}
	c.Items = append(c.Items, item)
	return item, false
}

// RemoveItem удаляет позицию товара. Возвращает false, если позиции не было:
// это не ошибка, а отдельный сигнал для вызывающей стороны.
func (c *Cart) RemoveItem(productID int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}

	return false
}

// Item возвращает позицию по товару, если она есть в корзине.
func (c *Cart) Item(productID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}

// Total пересчитывает сумму корзины из текущих позиций по снапшотам товаров.
// Позиция с количеством вне набора лотов — повреждённое состояние, оно
// поднимается как ошибка и никогда не исправляется молча.
func (c *Cart) Total(products map[int64]*Product) (int64, error) {
	var total int64
	for _, item := range c.Items {
		lot, err := ParseLot(int32(item.Quantity))
		if err != nil {
			return 0, e.Wrap(
				fmt.Sprintf("cart %d, product %d: persisted quantity %d", c.ID, item.ProductID, item.Quantity),
				e.ErrInvariantViolation,
			)
		}

		product, ok := products[item.ProductID]
		if !ok {
			return 0, e.Wrap(fmt.Sprintf("cart %d references product %d", c.ID, item.ProductID), e.ErrProductNotFound)
		}

		subtotal, err := product.Subtotal(lot)
		if err != nil {
			return 0, err
		}

		total += subtotal
	}

	return total, nil
}

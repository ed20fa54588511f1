package domain

import (
	"fmt"
	"time"

	"github.com/seller-tech/seller-backend/pkg/e"
)

// Product описывает товар оптового каталога.
// Цены хранятся в копейках, по одной на каждый лот: цена указана за весь лот, а не за единицу.
type Product struct {
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
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

func NewProduct(
	name string,
	description string,
	category string,
	size string,
	color string,
	priceFifty int64,
	priceOneHundred int64,
	priceTwoHundred int64,
	stock int32,
) *Product {
	return &Product{
		Name:                 name,
		Description:          description,
		Category:             category,
		Size:                 size,
		Color:                color,
		PriceFiftyUnits:      priceFifty,
		PriceOneHundredUnits: priceOneHundred,
		PriceTwoHundredUnits: priceTwoHundred,
		Stock:                stock,
	}
}

// UnitPriceFor возвращает цену лота в копейках для указанного объёма.
// Количество должно быть уже проверено через ParseLot.
func (p *Product) UnitPriceFor(lot Lot) (int64, error) {
	switch lot {
	case LotFifty:
		return p.PriceFiftyUnits, nil
	case LotOneHundred:
		return p.PriceOneHundredUnits, nil
	case LotTwoHundred:
		return p.PriceTwoHundredUnits, nil
	default:
		return 0, e.Wrap(fmt.Sprintf("no price tier for quantity %d", lot), e.ErrRejectedLot)
	}
}

// Subtotal считает стоимость позиции: цена лота × (количество / объём лота).
// Количество позиции совпадает с объёмом лота, поэтому стоимость равна цене лота.
// Умножать на поштучное количество нельзя — цена НЕ поштучная.
func (p *Product) Subtotal(lot Lot) (int64, error) {
	unitPrice, err := p.UnitPriceFor(lot)
	if err != nil {
		return 0, err
	}

	return unitPrice, nil
}

// ValidatePricing проверяет инвариант товара: все три цены заданы и неотрицательны, сток ≥ 0.
func (p *Product) ValidatePricing() error {
	if p.PriceFiftyUnits < 0 || p.PriceOneHundredUnits < 0 || p.PriceTwoHundredUnits < 0 {
		return e.Wrap(fmt.Sprintf("product %q has negative tier price", p.Name), e.ErrInvalidPrice)
	}

	if p.Stock < 0 {
		return e.Wrap(fmt.Sprintf("product %q has negative stock", p.Name), e.ErrInvalidPrice)
	}

	return nil
}

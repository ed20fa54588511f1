package domain

import (
	"fmt"

	"github.com/seller-tech/seller-backend/pkg/e"
)

// Lot — фиксированный оптовый объём закупки. Другие количества не продаются.
type Lot int32

const (
	LotFifty      Lot = 50
	LotOneHundred Lot = 100
	LotTwoHundred Lot = 200
)

// AllowedLots — закрытый набор допустимых объёмов.
var AllowedLots = []int32{int32(LotFifty), int32(LotOneHundred), int32(LotTwoHundred)}

// ParseLot проверяет количество до любых обращений к ценам или хранилищу.
// Ноль (сигнал удаления), отрицательные и некратные значения отклоняются.
func ParseLot(quantity int32) (Lot, error) {
	switch Lot(quantity) {
	case LotFifty, LotOneHundred, LotTwoHundred:
		return Lot(quantity), nil
	default:
		return 0, e.Wrap(fmt.Sprintf("requested %d, allowed %v", quantity, AllowedLots), e.ErrRejectedLot)
	}
}

// Quantity возвращает объём лота в единицах товара.
func (l Lot) Quantity() int32 {
	return int32(l)
}

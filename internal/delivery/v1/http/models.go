package http

import (
	"github.com/seller-tech/seller-backend/internal/usecase"
)

// Денежные поля наружу отдаются строками с двумя знаками после точки,
// внутри сервиса они живут как int64 в копейках.

type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type CreateCartRequest struct {
	Phone string            `json:"phone_number"`
	Items []CartItemRequest `json:"items,omitempty"`
}

type MutateItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	CartID int64              `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
	Total  string             `json:"total"`
}

type MutateItemResponse struct {
	Item     *CartItemResponse `json:"item,omitempty"`
	Removed  bool              `json:"removed"`
	NotFound bool              `json:"not_found,omitempty"`
	Total    string            `json:"total"`
}

type CartIDResponse struct {
	CartID int64 `json:"cart_id"`
}

type ProductResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	Size                 string `json:"size"`
	Color                string `json:"color"`
	PriceFiftyUnits      string `json:"price_fifty_units"`
	PriceOneHundredUnits string `json:"price_one_hundred_units"`
	PriceTwoHundredUnits string `json:"price_two_hundred_units"`
	Stock                int32  `json:"stock"`
}

type ImportInventoryRequest struct {
	ObjectKey string `json:"object_key"`
}

type ImportInventoryResponse struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
}

func toCartItemResponse(item usecase.CartItemInfo) CartItemResponse {
	return CartItemResponse{
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: usecase.CentsToDecimalString(item.UnitPrice),
		Subtotal:  usecase.CentsToDecimalString(item.Subtotal),
	}
}

func toCartItemResponses(items []usecase.CartItemInfo) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toCartItemResponse(item))
	}

	return result
}

func toProductResponse(info *usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:                   info.ID,
		Name:                 info.Name,
		Description:          info.Description,
		Category:             info.Category,
		Size:                 info.Size,
		Color:                info.Color,
		PriceFiftyUnits:      usecase.CentsToDecimalString(info.PriceFiftyUnits),
		PriceOneHundredUnits: usecase.CentsToDecimalString(info.PriceOneHundredUnits),
		PriceTwoHundredUnits: usecase.CentsToDecimalString(info.PriceTwoHundredUnits),
		Stock:                info.Stock,
	}
}

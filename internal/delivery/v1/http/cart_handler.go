package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// createCart
//
//	@Summary		Создание корзины
//	@Description	Создает корзину покупателя, опционально с начальными позициями
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCartRequest	true	"Номер телефона и позиции"
//	@Success		201		{object}	CartResponse		"Корзина создана"
//	@Failure		400		{object}	ErrorResponse		"Недопустимое количество или номер"
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Router			/carts [post]
func (c *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	var req CreateCartRequest
	if err := decodeJSONBody(r, &req); err != nil {
		c.logger.Warnf("%d create cart: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.CartItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CartItemReq{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	res, err := c.cartUsecase.CreateCart(r.Context(), &usecase.CreateCartReq{Phone: req.Phone, Items: items})
	if err != nil {
		c.logger.Warnf("create cart: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, CartResponse{
		CartID: res.CartID,
		Items:  toCartItemResponses(res.Items),
		Total:  usecase.CentsToDecimalString(res.Total),
	})
}

// mutateItem
//
//	@Summary		Мутация позиции корзины
//	@Description	Устанавливает количество товара в корзине. Ноль удаляет позицию.
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		int					true	"ID корзины"
//	@Param			request	body		MutateItemRequest	true	"Товар и количество"
//	@Success		200		{object}	MutateItemResponse	"Позиция обновлена"
//	@Failure		400		{object}	ErrorResponse		"Недопустимое количество"
//	@Failure		404		{object}	ErrorResponse		"Корзина или товар не найдены"
//	@Failure		409		{object}	ErrorResponse		"Недостаточно товара на складе"
//	@Failure		503		{object}	ErrorResponse		"Хранилище временно недоступно"
//	@Router			/carts/{cart_id}/items [patch]
func (c *CartHandler) mutateItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathInt64(r, "cart_id")
	if err != nil {
		c.logger.Warnf("%d mutate item: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	var req MutateItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		c.logger.Warnf("%d mutate item: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.MutateItem(r.Context(), &usecase.MutateItemReq{
		CartID:    cartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		c.logger.Warnf("mutate item (cart %d, product %d): %s", cartID, req.ProductID, err.Error())
		WriteError(w, err)
		return
	}

	response := MutateItemResponse{
		Removed:  res.Removed,
		NotFound: res.NotFound,
		Total:    usecase.CentsToDecimalString(res.Total),
	}
	if res.Item != nil {
		item := toCartItemResponse(*res.Item)
		response.Item = &item
	}

	WriteSuccess(w, http.StatusOK, response)
}

// listItems
//
//	@Summary		Позиции корзины
//	@Description	Возвращает позиции корзины с посчитанными стоимостями и суммой
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		int				true	"ID корзины"
//	@Success		200		{object}	CartResponse	"Содержимое корзины"
//	@Failure		404		{object}	ErrorResponse	"Корзина не найдена"
//	@Router			/carts/{cart_id}/items [get]
func (c *CartHandler) listItems(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathInt64(r, "cart_id")
	if err != nil {
		c.logger.Warnf("%d list items: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.ListItems(r.Context(), cartID)
	if err != nil {
		c.logger.Warnf("list items (cart %d): %s", cartID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CartResponse{
		CartID: res.CartID,
		Items:  toCartItemResponses(res.Items),
		Total:  usecase.CentsToDecimalString(res.Total),
	})
}

// getCartByPhone
//
//	@Summary		Корзина по номеру телефона
//	@Description	Возвращает ID актуальной корзины покупателя
//	@Tags			carts
//	@Produce		json
//	@Param			phone	path		string			true	"Номер телефона"
//	@Success		200		{object}	CartIDResponse	"ID корзины"
//	@Failure		404		{object}	ErrorResponse	"Корзина не найдена"
//	@Router			/carts/phone/{phone} [get]
func (c *CartHandler) getCartByPhone(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")

	cartID, err := c.cartUsecase.GetCartIDByPhone(r.Context(), phone)
	if err != nil {
		c.logger.Warnf("get cart by phone: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CartIDResponse{CartID: cartID})
}

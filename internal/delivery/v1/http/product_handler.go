package http

import (
	"net/http"

	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// searchProducts
//
//	@Summary		Поиск товаров
//	@Description	Ищет товары по строке и фильтрам категории, размера и цвета
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string			false	"Поисковая строка"
//	@Param			category	query		string			false	"Категория"
//	@Param			size		query		string			false	"Размер"
//	@Param			color		query		string			false	"Цвет"
//	@Success		200			{array}		ProductResponse	"Найденные товары"
//	@Router			/products [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &usecase.SearchProductsReq{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Size:     query.Get("size"),
		Color:    query.Get("color"),
	}

	products, err := p.catalogUsecase.SearchProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("search products: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар с ценами всех лотов
//	@Tags			products
//	@Produce		json
//	@Param			product_id	path		int				true	"ID товара"
//	@Success		200			{object}	ProductResponse	"Товар"
//	@Failure		404			{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{product_id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathInt64(r, "product_id")
	if err != nil {
		p.logger.Warnf("%d get product: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		p.logger.Warnf("get product %d: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/seller-tech/seller-backend/docs" // Импорт сгенерированных файлов
	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, catalogUC usecase.CatalogUC, inventoryUC usecase.InventoryUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerInventoryRoutes(v1, NewInventoryHandler(inventoryUC, r.logger))
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/carts", func(carts chi.Router) {
		carts.Post("/", handler.createCart)
		carts.Get("/phone/{phone}", handler.getCartByPhone)
		carts.Route("/{cart_id}/items", func(items chi.Router) {
			items.Get("/", handler.listItems)
			items.Patch("/", handler.mutateItem)
		})
	})
}

func registerProductRoutes(router chi.Router, handler *ProductHandler) {
	router.Route("/products", func(products chi.Router) {
		products.Get("/", handler.searchProducts)
		products.Get("/{product_id}", handler.getProduct)
	})
}

func registerInventoryRoutes(router chi.Router, handler *InventoryHandler) {
	router.Route("/inventory", func(inventory chi.Router) {
		inventory.Post("/import", handler.importInventory)
	})
}

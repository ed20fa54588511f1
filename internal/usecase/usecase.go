package usecase

import "context"

type CartUC interface {
	CreateCart(ctx context.Context, req *CreateCartReq) (*CreateCartRes, error)
	MutateItem(ctx context.Context, req *MutateItemReq) (*MutateItemRes, error)
	ListItems(ctx context.Context, cartID int64) (*ListItemsRes, error)
	GetCartIDByPhone(ctx context.Context, phone string) (int64, error)
}

type CatalogUC interface {
	SearchProducts(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
}

type InventoryUC interface {
	ImportInventory(ctx context.Context, req *ImportInventoryReq) (*ImportInventoryRes, error)
}

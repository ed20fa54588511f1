package http

import (
	"net/http"

	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *InventoryHandler {
	return &InventoryHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

// importInventory
//
//	@Summary		Импорт инвентаря
//	@Description	Загружает CSV-файл инвентаря из объектного хранилища в каталог
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportInventoryRequest	true	"Ключ объекта в бакете"
//	@Success		200		{object}	ImportInventoryResponse	"Результат импорта"
//	@Failure		400		{object}	ErrorResponse			"Некорректный файл инвентаря"
//	@Router			/inventory/import [post]
func (i *InventoryHandler) importInventory(w http.ResponseWriter, r *http.Request) {
	var req ImportInventoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		i.logger.Warnf("%d import inventory: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if req.ObjectKey == "" {
		i.logger.Warnf("%d import inventory: empty object key", http.StatusBadRequest)
		WriteError(w, e.ErrMissingFields)
		return
	}

	res, err := i.inventoryUsecase.ImportInventory(r.Context(), &usecase.ImportInventoryReq{ObjectKey: req.ObjectKey})
	if err != nil {
		i.logger.Warnf("import inventory (%s): %s", req.ObjectKey, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ImportInventoryResponse{
		RunID:     res.RunID,
		Processed: res.Processed,
		Skipped:   res.Skipped,
	})
}

package minio

import (
	"context"
	"io"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/seller-tech/seller-backend/internal/cfg"
	"github.com/seller-tech/seller-backend/pkg/e"
)

// InventoryRepo реализует хранилище файлов инвентаря поверх MinIO.
type InventoryRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewInventoryRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *InventoryRepo {
	return &InventoryRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// FetchObject отдаёт содержимое CSV-файла инвентаря по ключу объекта.
// Закрыть reader обязан вызывающий.
func (i *InventoryRepo) FetchObject(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := i.mc.GetObject(ctx, i.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// GetObject ленивый: ошибка отсутствия объекта всплывает только при чтении.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return obj, nil
}

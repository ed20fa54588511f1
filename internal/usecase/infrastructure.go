package usecase

import (
	"context"
	"io"
)

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type InventoryObjectStore interface {
	FetchObject(ctx context.Context, key string) (io.ReadCloser, error)
}

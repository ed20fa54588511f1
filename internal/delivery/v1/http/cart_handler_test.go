package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

type stubCartUC struct {
	mutateRes *usecase.MutateItemRes
	mutateErr error
	lastReq   *usecase.MutateItemReq
}

func (s *stubCartUC) CreateCart(ctx context.Context, req *usecase.CreateCartReq) (*usecase.CreateCartRes, error) {
	return &usecase.CreateCartRes{CartID: 1}, nil
}

func (s *stubCartUC) MutateItem(ctx context.Context, req *usecase.MutateItemReq) (*usecase.MutateItemRes, error) {
	s.lastReq = req
	if s.mutateErr != nil {
		return nil, s.mutateErr
	}
	return s.mutateRes, nil
}

func (s *stubCartUC) ListItems(ctx context.Context, cartID int64) (*usecase.ListItemsRes, error) {
	return &usecase.ListItemsRes{CartID: cartID}, nil
}

func (s *stubCartUC) GetCartIDByPhone(ctx context.Context, phone string) (int64, error) {
	return 0, e.ErrCartNotFound
}

func newCartTestRouter(uc usecase.CartUC) *chi.Mux {
	r := chi.NewRouter()
	registerCartRoutes(r, NewCartHandler(uc, logger.NewSlogLogger()))
	return r
}

func TestMutateItemHandler(t *testing.T) {
	t.Run("sets quantity and formats money", func(t *testing.T) {
		info := usecase.NewCartItemInfo(5, "camiseta_m_negro", 100, 280000, 280000)
		stub := &stubCartUC{mutateRes: &usecase.MutateItemRes{Item: &info, Total: 280000}}
		router := newCartTestRouter(stub)

		req := httptest.NewRequest(http.MethodPatch, "/carts/42/items/", strings.NewReader(`{"product_id":5,"quantity":100}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastReq.CartID != 42 || stub.lastReq.ProductID != 5 || stub.lastReq.Quantity != 100 {
			t.Fatalf("got request %+v", stub.lastReq)
		}

		var body MutateItemResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body.Item == nil || body.Item.UnitPrice != "2800.00" || body.Total != "2800.00" {
			t.Fatalf("got body %+v", body)
		}
	})

	t.Run("rejected lot maps to 400", func(t *testing.T) {
		stub := &stubCartUC{mutateErr: e.Wrap("requested 75", e.ErrRejectedLot)}
		router := newCartTestRouter(stub)

		req := httptest.NewRequest(http.MethodPatch, "/carts/42/items/", strings.NewReader(`{"product_id":5,"quantity":75}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}

		var body ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body.Code != http.StatusBadRequest {
			t.Fatalf("got body %+v", body)
		}
	})

	t.Run("non-numeric cart id", func(t *testing.T) {
		router := newCartTestRouter(&stubCartUC{})

		req := httptest.NewRequest(http.MethodPatch, "/carts/abc/items/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}
	})

	t.Run("malformed json body", func(t *testing.T) {
		router := newCartTestRouter(&stubCartUC{})

		req := httptest.NewRequest(http.MethodPatch, "/carts/42/items/", strings.NewReader(`{"product_id":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}
	})
}

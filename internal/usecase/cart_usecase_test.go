package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/seller-tech/seller-backend/internal/domain"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const testPhone = "+573001112233"

func newCartFixture(products ...*domain.Product) (*CartUseCase, *fakeCartRepo, *fakeProductRepo, *fakeOutboxRepo, *fakeTxBeginner) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(products...)
	outboxRepo := &fakeOutboxRepo{}
	beginner := &fakeTxBeginner{}

	uc := NewCartUC(cartRepo, productRepo, outboxRepo, beginner, logger.NewSlogLogger(), 3*time.Second)
	return uc, cartRepo, productRepo, outboxRepo, beginner
}

func shirt() *domain.Product {
	p := domain.NewProduct("camiseta_m_negro", "algodón", "camisetas", "m", "negro", 150000, 280000, 520000, 600)
	p.ID = 1
	return p
}

func pants() *domain.Product {
	p := domain.NewProduct("pantalon_l_azul", "mezclilla", "pantalones", "l", "azul", 250000, 470000, 880000, 350)
	p.ID = 2
	return p
}

func TestCreateCart(t *testing.T) {
	t.Run("rejects blank phone", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture()

		_, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: "   "})
		if !errors.Is(err, e.ErrInvalidPhone) {
			t.Fatalf("want ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("creates empty cart", func(t *testing.T) {
		uc, _, _, outboxRepo, beginner := newCartFixture()

		res, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CartID == 0 {
			t.Fatal("expected cart id")
		}
		if res.Total != 0 || len(res.Items) != 0 {
			t.Fatalf("expected empty cart, got total %d, %d items", res.Total, len(res.Items))
		}
		if beginner.committed != 1 {
			t.Fatalf("got %d commits", beginner.committed)
		}
		if types := outboxRepo.eventTypes(); len(types) != 1 || types[0] != EventCartCreated {
			t.Fatalf("got events %v", types)
		}
	})

	t.Run("creates cart with initial items and computes total", func(t *testing.T) {
		uc, cartRepo, _, _, _ := newCartFixture(shirt(), pants())

		res, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{
				{ProductID: 1, Quantity: 50},
				{ProductID: 2, Quantity: 200},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := int64(150000 + 880000); res.Total != want {
			t.Fatalf("got total %d, want %d", res.Total, want)
		}
		if len(res.Items) != 2 {
			t.Fatalf("got %d items", len(res.Items))
		}
		if cartRepo.itemCount(res.CartID) != 2 {
			t.Fatalf("persisted %d items", cartRepo.itemCount(res.CartID))
		}
	})

	t.Run("invalid lot blocks before any storage write", func(t *testing.T) {
		uc, cartRepo, _, _, beginner := newCartFixture(shirt())

		_, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{
				{ProductID: 1, Quantity: 50},
				{ProductID: 1, Quantity: 75},
			},
		})
		if !errors.Is(err, e.ErrRejectedLot) {
			t.Fatalf("want ErrRejectedLot, got %v", err)
		}
		// жёсткий гейт: валидация падает до открытия транзакции
		if beginner.begun != 0 {
			t.Fatalf("transaction was opened: %d", beginner.begun)
		}
		if cartRepo.createCalls != 0 {
			t.Fatalf("cart was created: %d", cartRepo.createCalls)
		}
	})

	t.Run("unknown product rolls back whole mutation", func(t *testing.T) {
		uc, cartRepo, _, _, beginner := newCartFixture(shirt())

		res, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{
				{ProductID: 1, Quantity: 50},
				{ProductID: 99, Quantity: 100},
			},
		})
		if !errors.Is(err, e.ErrProductNotFound) {
			t.Fatalf("want ErrProductNotFound, got %v", err)
		}
		if res != nil {
			t.Fatal("expected nil result")
		}
		if beginner.rolledBack != 1 {
			t.Fatalf("got %d rollbacks", beginner.rolledBack)
		}
		if cartRepo.upsertCalls != 0 {
			t.Fatalf("items were written: %d", cartRepo.upsertCalls)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		lowStock := shirt()
		lowStock.Stock = 49
		uc, _, _, _, _ := newCartFixture(lowStock)

		_, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{{ProductID: 1, Quantity: 50}},
		})
		if !errors.Is(err, e.ErrInsufficientStock) {
			t.Fatalf("want ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("lot equal to remaining stock passes the gate", func(t *testing.T) {
		exact := shirt()
		exact.Stock = 200
		uc, _, _, _, _ := newCartFixture(exact)

		res, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{{ProductID: 1, Quantity: 200}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 520000 {
			t.Fatalf("got total %d", res.Total)
		}
	})
}

func TestMutateItem(t *testing.T) {
	newCartWithID := func(uc *CartUseCase) int64 {
		res, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone})
		if err != nil {
			panic(err)
		}
		return res.CartID
	}

	t.Run("rejects lot outside the set without touching storage", func(t *testing.T) {
		uc, cartRepo, _, _, beginner := newCartFixture(shirt())
		cartID := newCartWithID(uc)
		begun := beginner.begun

		for _, quantity := range []int32{-1, 1, 49, 51, 150, 250} {
			_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: quantity})
			if !errors.Is(err, e.ErrRejectedLot) {
				t.Fatalf("quantity %d: want ErrRejectedLot, got %v", quantity, err)
			}
		}
		if beginner.begun != begun {
			t.Fatal("rejected mutation opened a transaction")
		}
		if cartRepo.itemCount(cartID) != 0 {
			t.Fatal("rejected mutation wrote an item")
		}
	})

	t.Run("adds item and recomputes total", func(t *testing.T) {
		uc, _, _, outboxRepo, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)

		res, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Item == nil || res.Item.Quantity != 100 {
			t.Fatalf("got item %+v", res.Item)
		}
		if res.Total != 280000 {
			t.Fatalf("got total %d, want 280000", res.Total)
		}

		types := outboxRepo.eventTypes()
		if types[len(types)-1] != EventItemSet {
			t.Fatalf("got events %v", types)
		}
	})

	t.Run("repeated add replaces quantity instead of incrementing", func(t *testing.T) {
		uc, cartRepo, _, _, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)

		if _, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 50}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cartRepo.itemCount(cartID) != 1 {
			t.Fatalf("got %d positions, want 1", cartRepo.itemCount(cartID))
		}
		// 50 + 200 ≠ 250: количество замещено, сумма — цена лота 200
		if res.Item.Quantity != 200 || res.Total != 520000 {
			t.Fatalf("got quantity %d, total %d", res.Item.Quantity, res.Total)
		}
	})

	t.Run("repeat with same arguments is idempotent", func(t *testing.T) {
		uc, cartRepo, _, _, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)

		first, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.Total != second.Total || second.Item.Quantity != 100 {
			t.Fatalf("repeat diverged: %d vs %d", first.Total, second.Total)
		}
		if cartRepo.itemCount(cartID) != 1 {
			t.Fatalf("got %d positions", cartRepo.itemCount(cartID))
		}
	})

	t.Run("unknown cart", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture(shirt())

		_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: 404, ProductID: 1, Quantity: 50})
		if !errors.Is(err, e.ErrCartNotFound) {
			t.Fatalf("want ErrCartNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)

		_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 99, Quantity: 50})
		if !errors.Is(err, e.ErrProductNotFound) {
			t.Fatalf("want ErrProductNotFound, got %v", err)
		}
	})

	t.Run("insufficient stock leaves cart untouched", func(t *testing.T) {
		lowStock := shirt()
		lowStock.Stock = 120
		uc, cartRepo, _, _, _ := newCartFixture(lowStock)
		cartID := newCartWithID(uc)

		_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 200})
		if !errors.Is(err, e.ErrInsufficientStock) {
			t.Fatalf("want ErrInsufficientStock, got %v", err)
		}
		if cartRepo.itemCount(cartID) != 0 {
			t.Fatal("item was written despite stock gate")
		}
	})

	t.Run("transient storage failure maps to ErrTransientStorage", func(t *testing.T) {
		uc, cartRepo, _, _, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)
		cartRepo.upsertErr = fmt.Errorf("write tcp 10.0.0.1:5432: i/o timeout")

		_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 50})
		if !errors.Is(err, e.ErrTransientStorage) {
			t.Fatalf("want ErrTransientStorage, got %v", err)
		}
	})

	t.Run("zero quantity removes existing item", func(t *testing.T) {
		uc, cartRepo, _, outboxRepo, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)

		if _, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 50}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Removed || res.NotFound {
			t.Fatalf("got %+v", res)
		}
		if res.Total != 0 {
			t.Fatalf("got total %d", res.Total)
		}
		if cartRepo.itemCount(cartID) != 0 {
			t.Fatal("item still present")
		}

		types := outboxRepo.eventTypes()
		if types[len(types)-1] != EventItemRemoved {
			t.Fatalf("got events %v", types)
		}
	})

	t.Run("removal of absent item is an acknowledged no-op", func(t *testing.T) {
		uc, _, _, outboxRepo, _ := newCartFixture(shirt())
		cartID := newCartWithID(uc)
		eventsBefore := len(outboxRepo.eventTypes())

		res, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: 0})
		if err != nil {
			t.Fatalf("no-op removal must not error, got %v", err)
		}
		if res.Removed || !res.NotFound {
			t.Fatalf("got %+v", res)
		}
		// событие не пишется: состояние не менялось
		if len(outboxRepo.eventTypes()) != eventsBefore {
			t.Fatal("no-op removal produced an event")
		}
	})

	t.Run("removal from unknown cart is an error", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture(shirt())

		_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: 404, ProductID: 1, Quantity: 0})
		if !errors.Is(err, e.ErrCartNotFound) {
			t.Fatalf("want ErrCartNotFound, got %v", err)
		}
	})
}

func TestListItems(t *testing.T) {
	t.Run("returns items with recomputed total", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture(shirt(), pants())

		created, err := uc.CreateCart(context.Background(), &CreateCartReq{
			Phone: testPhone,
			Items: []CartItemReq{
				{ProductID: 1, Quantity: 100},
				{ProductID: 2, Quantity: 50},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := uc.ListItems(context.Background(), created.CartID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 {
			t.Fatalf("got %d items", len(res.Items))
		}
		if want := int64(280000 + 250000); res.Total != want {
			t.Fatalf("got total %d, want %d", res.Total, want)
		}
	})

	t.Run("unknown cart", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture()

		_, err := uc.ListItems(context.Background(), 404)
		if !errors.Is(err, e.ErrCartNotFound) {
			t.Fatalf("want ErrCartNotFound, got %v", err)
		}
	})

	t.Run("corrupted persisted quantity surfaces as invariant violation", func(t *testing.T) {
		uc, cartRepo, _, _, _ := newCartFixture(shirt())

		created, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cartRepo.putItem(created.CartID, domain.CartItem{CartID: created.CartID, ProductID: 1, Quantity: domain.Lot(75)})

		_, err = uc.ListItems(context.Background(), created.CartID)
		if !errors.Is(err, e.ErrInvariantViolation) {
			t.Fatalf("want ErrInvariantViolation, got %v", err)
		}
	})
}

func TestGetCartIDByPhone(t *testing.T) {
	t.Run("returns latest cart", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture()

		if _, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cartID, err := uc.GetCartIDByPhone(context.Background(), testPhone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cartID != second.CartID {
			t.Fatalf("got cart %d, want latest %d", cartID, second.CartID)
		}
	})

	t.Run("unknown phone", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture()

		_, err := uc.GetCartIDByPhone(context.Background(), "+10000000000")
		if !errors.Is(err, e.ErrCartNotFound) {
			t.Fatalf("want ErrCartNotFound, got %v", err)
		}
	})

	t.Run("blank phone", func(t *testing.T) {
		uc, _, _, _, _ := newCartFixture()

		if _, err := uc.GetCartIDByPhone(context.Background(), ""); !errors.Is(err, e.ErrInvalidPhone) {
			t.Fatalf("want ErrInvalidPhone, got %v", err)
		}
	})
}

func TestConcurrentMutations(t *testing.T) {
	uc, cartRepo, _, _, _ := newCartFixture(shirt())

	created, err := uc.CreateCart(context.Background(), &CreateCartReq{Phone: testPhone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cartID := created.CartID

	lots := []int32{50, 100, 200}
	var g errgroup.Group
	for i := 0; i < 30; i++ {
		quantity := lots[i%len(lots)]
		g.Go(func() error {
			_, err := uc.MutateItem(context.Background(), &MutateItemReq{CartID: cartID, ProductID: 1, Quantity: quantity})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent mutation failed: %v", err)
	}

	// После гонки корзина обязана быть в валидном состоянии: одна позиция,
	// количество из набора лотов, сумма соответствует этому лоту.
	if cartRepo.itemCount(cartID) != 1 {
		t.Fatalf("got %d positions", cartRepo.itemCount(cartID))
	}

	res, err := uc.ListItems(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lot, err := domain.ParseLot(res.Items[0].Quantity)
	if err != nil {
		t.Fatalf("final quantity outside lot set: %d", res.Items[0].Quantity)
	}
	want, _ := shirt().Subtotal(lot)
	if res.Total != want {
		t.Fatalf("total %d does not match final lot price %d", res.Total, want)
	}
}

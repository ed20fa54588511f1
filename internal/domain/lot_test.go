package domain

import (
	"errors"
	"testing"

	"github.com/seller-tech/seller-backend/pkg/e"
)

func TestParseLot(t *testing.T) {
	t.Run("accepts allowed lots", func(t *testing.T) {
		for _, quantity := range []int32{50, 100, 200} {
			lot, err := ParseLot(quantity)
			if err != nil {
				t.Fatalf("ParseLot(%d): unexpected error %v", quantity, err)
			}
			if lot.Quantity() != quantity {
				t.Fatalf("ParseLot(%d): got lot %d", quantity, lot.Quantity())
			}
		}
	})

	t.Run("rejects values outside the lot set", func(t *testing.T) {
		for _, quantity := range []int32{-50, -1, 1, 49, 51, 99, 101, 150, 199, 201, 250, 400} {
			_, err := ParseLot(quantity)
			if !errors.Is(err, e.ErrRejectedLot) {
				t.Fatalf("ParseLot(%d): want ErrRejectedLot, got %v", quantity, err)
			}
		}
	})

	t.Run("rejects zero", func(t *testing.T) {
		// ноль — сигнал удаления позиции, лотом он не является
		if _, err := ParseLot(0); !errors.Is(err, e.ErrRejectedLot) {
			t.Fatalf("ParseLot(0): want ErrRejectedLot, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
)

const inventoryHeader = "TIPO_PRENDA,TALLA,COLOR,CATEGORÍA,CANTIDAD_DISPONIBLE,PRECIO_50_U,PRECIO_100_U,PRECIO_200_U,DESCRIPCIÓN,DISPONIBLE\n"

type fakeObjectStore struct {
	objects map[string]string
}

func (f *fakeObjectStore) FetchObject(ctx context.Context, key string) (io.ReadCloser, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

type noopCacheRepo struct{}

func (noopCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	return map[int64]ProductInfo{}, nil
}
func (noopCacheRepo) SetProducts(ctx context.Context, products []ProductInfo) error { return nil }
func (noopCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error         { return nil }

func newInventoryFixture(objects map[string]string) (*InventoryUseCase, *fakeProductRepo) {
	productRepo := newFakeProductRepo()
	uc := NewInventoryUC(
		&fakeObjectStore{objects: objects},
		productRepo,
		noopCacheRepo{},
		&fakeTxBeginner{},
		logger.NewSlogLogger(),
	)
	return uc, productRepo
}

func TestImportInventory(t *testing.T) {
	t.Run("imports available rows", func(t *testing.T) {
		csv := inventoryHeader +
			"Camiseta,M,Negro,Camisetas,600,1500.00,2800.00,5200.00,algodón,SI\n" +
			"Pantalón,L,Azul,Pantalones,150,2500,4700,8800,mezclilla,SI\n"
		uc, productRepo := newInventoryFixture(map[string]string{"inventario.csv": csv})

		res, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "inventario.csv"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 2 || res.Skipped != 0 {
			t.Fatalf("got processed %d, skipped %d", res.Processed, res.Skipped)
		}
		if res.RunID == "" {
			t.Fatal("expected run id")
		}

		var found bool
		for _, p := range productRepo.products {
			if p.Name == "camiseta_m_negro" {
				found = true
				if p.PriceFiftyUnits != 150000 || p.PriceTwoHundredUnits != 520000 {
					t.Fatalf("got prices %d/%d", p.PriceFiftyUnits, p.PriceTwoHundredUnits)
				}
				if p.Stock != 600 || p.Category != "camisetas" {
					t.Fatalf("got stock %d, category %q", p.Stock, p.Category)
				}
			}
		}
		if !found {
			t.Fatal("composed product name not found")
		}
	})

	t.Run("skips unavailable and broken rows", func(t *testing.T) {
		csv := inventoryHeader +
			"Camiseta,M,Negro,Camisetas,600,1500,2800,5200,,SI\n" +
			"Camiseta,S,Rojo,Camisetas,100,1400,2600,4800,,NO\n" +
			"Gorra,,Verde,Accesorios,50,900,1700,3200,,SI\n" +
			"Camiseta,L,Gris,Camisetas,200,-100,2600,4800,,SI\n"
		uc, _ := newInventoryFixture(map[string]string{"inventario.csv": csv})

		res, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "inventario.csv"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 1 || res.Skipped != 3 {
			t.Fatalf("got processed %d, skipped %d", res.Processed, res.Skipped)
		}
	})

	t.Run("malformed row does not truncate the rest of the sheet", func(t *testing.T) {
		csv := inventoryHeader +
			"Camiseta,M,Negro,Camisetas,600,1500,2800,5200,,SI\n" +
			"Camiseta,M,Negro\n" +
			"Pantalón,L,Azul,Pantalones,150,2500,4700,8800,,SI\n"
		uc, productRepo := newInventoryFixture(map[string]string{"inventario.csv": csv})

		res, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "inventario.csv"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 2 || res.Skipped != 1 {
			t.Fatalf("got processed %d, skipped %d", res.Processed, res.Skipped)
		}

		var found bool
		for _, p := range productRepo.products {
			if p.Name == "pantalon_l_azul" {
				found = true
			}
		}
		if !found {
			t.Fatal("row after the malformed one was dropped")
		}
	})

	t.Run("missing required column", func(t *testing.T) {
		csv := "TIPO_PRENDA,TALLA,COLOR\nCamiseta,M,Negro\n"
		uc, _ := newInventoryFixture(map[string]string{"inventario.csv": csv})

		_, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "inventario.csv"})
		if !errors.Is(err, e.ErrInventoryHeader) {
			t.Fatalf("want ErrInventoryHeader, got %v", err)
		}
	})

	t.Run("empty inventory after filtering", func(t *testing.T) {
		csv := inventoryHeader + "Camiseta,M,Negro,Camisetas,600,1500,2800,5200,,NO\n"
		uc, _ := newInventoryFixture(map[string]string{"inventario.csv": csv})

		_, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "inventario.csv"})
		if !errors.Is(err, e.ErrEmptyInventory) {
			t.Fatalf("want ErrEmptyInventory, got %v", err)
		}
	})

	t.Run("blank object key", func(t *testing.T) {
		uc, _ := newInventoryFixture(nil)

		_, err := uc.ImportInventory(context.Background(), &ImportInventoryReq{ObjectKey: "  "})
		if !errors.Is(err, e.ErrMissingFields) {
			t.Fatalf("want ErrMissingFields, got %v", err)
		}
	})
}

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"599.99", 59999, nil},
		{"600", 60000, nil},
		{"0", 0, nil},
		{"1500.5", 150050, nil},
		{"", 0, e.ErrInvalidPrice},
		{"abc", 0, e.ErrInvalidPrice},
		{"-10", 0, e.ErrInvalidPrice},
		{"10.999", 0, e.ErrPricePrecision},
		{"100000000001", 0, e.ErrInvalidPrice},
	}
	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parsePriceToCents(%q): want %v, got %v", tc.in, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parsePriceToCents(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parsePriceToCents(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCentsToDecimalString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{59999, "599.99"},
		{150050, "1500.50"},
		{100, "1.00"},
	}
	for _, tc := range cases {
		if got := CentsToDecimalString(tc.cents); got != tc.want {
			t.Fatalf("CentsToDecimalString(%d): got %q, want %q", tc.cents, got, tc.want)
		}
	}
}

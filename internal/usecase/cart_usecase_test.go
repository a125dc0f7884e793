package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartRepo хранит корзины в памяти, повторяя контракты репозитория:
// атомарный инкремент при конфликте, ErrCartItemNotFound на отсутствующей
// позиции, сортировка GetEntries по имени товара.
type fakeCartRepo struct {
	carts    map[int64]int64           // userID -> cartID
	items    map[int64]map[int64]int32 // cartID -> productID -> quantity
	order    map[int64][]int64         // cartID -> productID в порядке добавления
	products map[int64]usecase.ProductInfo
	nextCart int64
}

func newFakeCartRepo(products ...usecase.ProductInfo) *fakeCartRepo {
	prMap := make(map[int64]usecase.ProductInfo, len(products))
	for _, pr := range products {
		prMap[pr.ID] = pr
	}

	return &fakeCartRepo{
		carts:    make(map[int64]int64),
		items:    make(map[int64]map[int64]int32),
		order:    make(map[int64][]int64),
		products: prMap,
		nextCart: 1,
	}
}

func (f *fakeCartRepo) Create(_ context.Context, userID int64) (*domain.Cart, error) {
	cartID := f.nextCart
	f.nextCart++
	f.carts[userID] = cartID
	f.items[cartID] = make(map[int64]int32)

	return &domain.Cart{ID: cartID, UserID: userID}, nil
}

func (f *fakeCartRepo) GetCartID(_ context.Context, userID int64) (int64, error) {
	cartID, ok := f.carts[userID]
	if !ok {
		return 0, e.ErrCartNotFound
	}

	return cartID, nil
}

func (f *fakeCartRepo) AddOrIncrementItem(_ context.Context, cartID int64, productID int64, qty int32) error {
	if _, ok := f.items[cartID][productID]; !ok {
		f.order[cartID] = append(f.order[cartID], productID)
	}
	f.items[cartID][productID] += qty

	return nil
}

func (f *fakeCartRepo) UpdateItemQuantity(_ context.Context, cartID int64, productID int64, qty int32) error {
	if _, ok := f.items[cartID][productID]; !ok {
		return e.ErrCartItemNotFound
	}
	f.items[cartID][productID] = qty

	return nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, cartID int64, productID int64) error {
	if _, ok := f.items[cartID][productID]; !ok {
		return e.ErrCartItemNotFound
	}
	delete(f.items[cartID], productID)

	for i, id := range f.order[cartID] {
		if id == productID {
			f.order[cartID] = append(f.order[cartID][:i], f.order[cartID][i+1:]...)
			break
		}
	}

	return nil
}

func (f *fakeCartRepo) GetEntries(_ context.Context, cartID int64) ([]usecase.CartEntryInfo, error) {
	entries := make([]usecase.CartEntryInfo, 0, len(f.items[cartID]))
	for productID, qty := range f.items[cartID] {
		entries = append(entries, usecase.CartEntryInfo{
			Product:  f.products[productID],
			Quantity: qty,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Product.Name < entries[j].Product.Name
	})

	return entries, nil
}

func (f *fakeCartRepo) GetBasketProductIDs(_ context.Context, cartID int64) ([]int64, error) {
	return append([]int64{}, f.order[cartID]...), nil
}

// fakeImageRepo возвращает детерминированную ссылку по ключу.
type fakeImageRepo struct{}

func (fakeImageRepo) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://s3.local/" + key, nil
}

func strPtr(s string) *string { return &s }

func testProducts() []usecase.ProductInfo {
	return []usecase.ProductInfo{
		usecase.NewProductInfo(1, "Bananas", 199, 0.9, strPtr("bananas.png")),
		usecase.NewProductInfo(2, "Almond Milk", 349, 0.8, strPtr("almond-milk.png")),
		usecase.NewProductInfo(3, "Chocolate", 599, 0.2, nil),
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	const userID = int64(42)
	ctx := context.Background()
	log := logger.NewSlogLogger()

	tests := []struct {
		name    string
		reqs    []*usecase.AddItemReq
		wantQty map[int64]int32
		wantErr error
	}{
		{
			name:    "new item",
			reqs:    []*usecase.AddItemReq{usecase.NewAddItemReq(1, 2)},
			wantQty: map[int64]int32{1: 2},
		},
		{
			name: "existing item merges quantities",
			reqs: []*usecase.AddItemReq{
				usecase.NewAddItemReq(1, 2),
				usecase.NewAddItemReq(1, 3),
			},
			wantQty: map[int64]int32{1: 5},
		},
		{
			name:    "zero quantity rejected",
			reqs:    []*usecase.AddItemReq{usecase.NewAddItemReq(1, 0)},
			wantErr: e.ErrInvalidQuantity,
		},
		{
			name:    "negative product id rejected",
			reqs:    []*usecase.AddItemReq{usecase.NewAddItemReq(-1, 1)},
			wantErr: e.ErrInvalidProductID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCartRepo(testProducts()...)
			_, err := repo.Create(ctx, userID)
			require.NoError(t, err)

			uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)

			var lastErr error
			for _, req := range tt.reqs {
				lastErr = uc.AddItem(ctx, userID, req)
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, lastErr, tt.wantErr)
				return
			}
			require.NoError(t, lastErr)

			cartID, err := repo.GetCartID(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, map[int64]int32(repo.items[cartID]))
		})
	}
}

func TestCartUseCase_SetQuantity(t *testing.T) {
	const userID = int64(42)
	ctx := context.Background()
	log := logger.NewSlogLogger()

	t.Run("replaces quantity exactly", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)
		require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(1, 5)))

		require.NoError(t, uc.SetQuantity(ctx, userID, usecase.NewSetQuantityReq(1, 2)))

		cartID, _ := repo.GetCartID(ctx, userID)
		assert.Equal(t, int32(2), repo.items[cartID][1])
	})

	t.Run("zero quantity removes the entry", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)
		require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(1, 5)))

		require.NoError(t, uc.SetQuantity(ctx, userID, usecase.NewSetQuantityReq(1, 0)))

		views, err := uc.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("missing entry is an error, not upsert", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)

		err = uc.SetQuantity(ctx, userID, usecase.NewSetQuantityReq(1, 2))
		require.ErrorIs(t, err, e.ErrCartItemNotFound)

		err = uc.SetQuantity(ctx, userID, usecase.NewSetQuantityReq(1, 0))
		require.ErrorIs(t, err, e.ErrCartItemNotFound)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)

		err = uc.SetQuantity(ctx, userID, usecase.NewSetQuantityReq(1, -1))
		require.ErrorIs(t, err, e.ErrNegativeQuantity)
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	const userID = int64(42)
	ctx := context.Background()
	log := logger.NewSlogLogger()

	repo := newFakeCartRepo(testProducts()...)
	_, err := repo.Create(ctx, userID)
	require.NoError(t, err)

	uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)
	require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(1, 1)))

	require.NoError(t, uc.RemoveItem(ctx, userID, 1))

	err = uc.RemoveItem(ctx, userID, 1)
	require.ErrorIs(t, err, e.ErrCartItemNotFound)
}

func TestCartUseCase_GetCart(t *testing.T) {
	const userID = int64(42)
	ctx := context.Background()
	log := logger.NewSlogLogger()

	t.Run("entries sorted by product name with presigned images", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)
		require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(1, 2)))
		require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(3, 1)))
		require.NoError(t, uc.AddItem(ctx, userID, usecase.NewAddItemReq(2, 4)))

		views, err := uc.GetCart(ctx, userID)
		require.NoError(t, err)
		require.Len(t, views, 3)

		assert.Equal(t, "Almond Milk", views[0].Product.Name)
		assert.Equal(t, "Bananas", views[1].Product.Name)
		assert.Equal(t, "Chocolate", views[2].Product.Name)

		require.NotNil(t, views[1].Product.ImageURL)
		assert.Equal(t, "https://s3.local/bananas.png", *views[1].Product.ImageURL)
		assert.Nil(t, views[2].Product.ImageURL)
	})

	t.Run("empty cart is an empty list", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		_, err := repo.Create(ctx, userID)
		require.NoError(t, err)

		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)

		views, err := uc.GetCart(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("missing cart is an empty list, not an error", func(t *testing.T) {
		repo := newFakeCartRepo(testProducts()...)
		uc := usecase.NewCartUC(repo, fakeImageRepo{}, log)

		views, err := uc.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

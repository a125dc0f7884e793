package pgdb_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// nextProductID выдаёт уникальные id товаров в пределах тестового прогона.
var nextProductID int64

type cartRepoSuite struct {
	suite.Suite

	repo *pgdb.CartRepo
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepoSuite(t *testing.T) {
	suite.Run(t, new(cartRepoSuite))
}

// before all tests in the suite
func (suite *cartRepoSuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = pgdb.NewCartRepo(suite.pool, generated.NewCartConverterImpl())
}

// after all tests in the suite
func (suite *cartRepoSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepoSuite) deleteAll() {
	ctx := context.Background()

	_, err := suite.pool.Exec(ctx, "DELETE FROM cart_items")
	suite.NoError(err)
	_, err = suite.pool.Exec(ctx, "DELETE FROM carts")
	suite.NoError(err)
	_, err = suite.pool.Exec(ctx, "DELETE FROM products")
	suite.NoError(err)
	_, err = suite.pool.Exec(ctx, "DELETE FROM users")
	suite.NoError(err)
}

// seedCart создаёт пользователя с корзиной напрямую в БД и возвращает ID корзины.
func (suite *cartRepoSuite) seedCart() int64 {
	ctx := context.Background()

	var userID int64
	err := suite.pool.QueryRow(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		gofakeit.Name(), gofakeit.Email(), gofakeit.UUID(),
	).Scan(&userID)
	suite.Require().NoError(err)

	var cartID int64
	err = suite.pool.QueryRow(ctx,
		"INSERT INTO carts (user_id) VALUES ($1) RETURNING id", userID,
	).Scan(&cartID)
	suite.Require().NoError(err)

	return cartID
}

// seedProduct вставляет товар с явным id: каталог наполняется внешним
// пайплайном, автогенерации идентификаторов у products нет.
func (suite *cartRepoSuite) seedProduct(name string, healthScore float64) int64 {
	ctx := context.Background()

	productID := atomic.AddInt64(&nextProductID, 1)
	_, err := suite.pool.Exec(ctx,
		"INSERT INTO products (id, name, price, health_score, image_key) VALUES ($1, $2, $3, $4, $5)",
		productID, name, gofakeit.Number(100, 2000), healthScore, gofakeit.UUID()+".png",
	)
	suite.Require().NoError(err)

	return productID
}

func (suite *cartRepoSuite) TestGetCartID_Missing() {
	defer suite.deleteAll()
	t := suite.T()

	_, err := suite.repo.GetCartID(t.Context(), 999999)
	require.ErrorIs(t, err, e.ErrCartNotFound)
}

func (suite *cartRepoSuite) TestAddOrIncrementItem_Merges() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	productID := suite.seedProduct("Bananas", 0.9)

	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, productID, 2))
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, productID, 3))

	entries, err := suite.repo.GetEntries(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int32(5), entries[0].Quantity)
}

func (suite *cartRepoSuite) TestAddOrIncrementItem_ConcurrentAddsKeepAllIncrements() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	productID := suite.seedProduct("Bananas", 0.9)

	const workers = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.repo.AddOrIncrementItem(ctx, cartID, productID, 1)
		}()
	}
	wg.Wait()

	entries, err := suite.repo.GetEntries(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int32(workers), entries[0].Quantity)
}

func (suite *cartRepoSuite) TestUpdateItemQuantity() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	productID := suite.seedProduct("Bananas", 0.9)

	err := suite.repo.UpdateItemQuantity(ctx, cartID, productID, 2)
	require.ErrorIs(t, err, e.ErrCartItemNotFound)

	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, productID, 5))
	require.NoError(t, suite.repo.UpdateItemQuantity(ctx, cartID, productID, 2))

	entries, err := suite.repo.GetEntries(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int32(2), entries[0].Quantity)
}

func (suite *cartRepoSuite) TestDeleteItem() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	productID := suite.seedProduct("Bananas", 0.9)

	err := suite.repo.DeleteItem(ctx, cartID, productID)
	require.ErrorIs(t, err, e.ErrCartItemNotFound)

	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, productID, 1))
	require.NoError(t, suite.repo.DeleteItem(ctx, cartID, productID))

	entries, err := suite.repo.GetEntries(ctx, cartID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func (suite *cartRepoSuite) TestGetEntries_SortedByProductName() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	chocolate := suite.seedProduct("Chocolate", 0.2)
	almond := suite.seedProduct("Almond Milk", 0.8)
	bananas := suite.seedProduct("Bananas", 0.9)

	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, chocolate, 1))
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, almond, 1))
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, bananas, 1))

	entries, err := suite.repo.GetEntries(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, "Almond Milk", entries[0].Product.Name)
	require.Equal(t, "Bananas", entries[1].Product.Name)
	require.Equal(t, "Chocolate", entries[2].Product.Name)
}

func (suite *cartRepoSuite) TestGetBasketProductIDs_InsertionOrder() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cartID := suite.seedCart()
	chocolate := suite.seedProduct("Chocolate", 0.2)
	almond := suite.seedProduct("Almond Milk", 0.8)
	bananas := suite.seedProduct("Bananas", 0.9)

	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, chocolate, 1))
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, almond, 2))
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, bananas, 3))

	// Инкремент существующей позиции порядок не меняет
	require.NoError(t, suite.repo.AddOrIncrementItem(ctx, cartID, chocolate, 1))

	ids, err := suite.repo.GetBasketProductIDs(ctx, cartID)
	require.NoError(t, err)
	require.Equal(t, []int64{chocolate, almond, bananas}, ids)
}

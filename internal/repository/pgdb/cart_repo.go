package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/tr"
)

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

// Create создаёт пустую корзину пользователя внутри транзакции регистрации.
func (c *CartRepo) Create(ctx context.Context, userID int64) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO carts (user_id) VALUES ($1)
		RETURNING id, user_id, created_at;
	`

	var model converter.CartModel
	if err := tx.QueryRow(ctx, query, userID).
		Scan(&model.ID, &model.UserID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// GetCartID возвращает идентификатор корзины пользователя.
func (c *CartRepo) GetCartID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT id FROM carts WHERE user_id = $1;`

	var cartID int64
	if err := c.pool.QueryRow(ctx, query, userID).Scan(&cartID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}

		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return cartID, nil
}

// AddOrIncrementItem атомарно создаёт позицию корзины или прибавляет количество
// к существующей. Read-modify-write сериализуется на уровне хранилища, поэтому
// параллельные добавления одного товара не теряют инкременты.
func (c *CartRepo) AddOrIncrementItem(ctx context.Context, cartID int64, productID int64, qty int32) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW();
	`

	if _, err := c.pool.Exec(ctx, query, cartID, productID, qty); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// UpdateItemQuantity заменяет количество существующей позиции точным значением.
func (c *CartRepo) UpdateItemQuantity(ctx context.Context, cartID int64, productID int64, qty int32) error {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE cart_id = $1 AND product_id = $2;
	`

	tag, err := c.pool.Exec(ctx, query, cartID, productID, qty)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}

	return nil
}

// DeleteItem удаляет позицию корзины.
func (c *CartRepo) DeleteItem(ctx context.Context, cartID int64, productID int64) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2;`

	tag, err := c.pool.Exec(ctx, query, cartID, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}

	return nil
}

// GetEntries возвращает позиции корзины с данными товара, отсортированные по имени товара.
func (c *CartRepo) GetEntries(ctx context.Context, cartID int64) ([]usecase.CartEntryInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.price, pr.health_score, pr.image_key, ci.quantity
		FROM cart_items ci
		JOIN products pr ON ci.product_id = pr.id
		WHERE ci.cart_id = $1
		ORDER BY pr.name ASC;
	`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CartEntryInfo, 0)
	for rows.Next() {
		var entry usecase.CartEntryInfo
		if err := rows.Scan(
			&entry.Product.ID, &entry.Product.Name, &entry.Product.Price,
			&entry.Product.HealthScore, &entry.Product.ImageKey, &entry.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, entry)
	}

	return result, nil
}

// GetBasketProductIDs возвращает ID товаров корзины в порядке добавления.
func (c *CartRepo) GetBasketProductIDs(ctx context.Context, cartID int64) ([]int64, error) {
	query := `SELECT product_id FROM cart_items WHERE cart_id = $1 ORDER BY id ASC;`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

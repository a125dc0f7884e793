package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
)

// ProductRepo реализует репозиторий каталога поверх PostgreSQL.
// Каталог для этого сервиса read-only: товары наполняются офлайн-пайплайном.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		pool: pool,
	}
}

// GetProductsInfo возвращает данные товаров по их идентификаторам.
// Порядок строк не специфицирован; вызывающая сторона сортирует сама.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT id, name, price, health_score, image_key
		FROM products
		WHERE id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetTopByHealthScore возвращает товары с изображением, лучшие по health score.
func (p *ProductRepo) GetTopByHealthScore(ctx context.Context, limit int) ([]usecase.ProductInfo, error) {
	query := `
		SELECT id, name, price, health_score, image_key
		FROM products
		WHERE image_key IS NOT NULL
		ORDER BY health_score DESC
		LIMIT $1;
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetCatalog возвращает товары каталога с изображением.
func (p *ProductRepo) GetCatalog(ctx context.Context, limit int) ([]usecase.ProductInfo, error) {
	query := `
		SELECT id, name, price, health_score, image_key
		FROM products
		WHERE image_key IS NOT NULL
		LIMIT $1;
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Price,
			&product.HealthScore, &product.ImageKey,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, usecase.NewProductInfo(
			product.ID, product.Name, product.Price, product.HealthScore, product.ImageKey,
		))
	}

	return result, nil
}

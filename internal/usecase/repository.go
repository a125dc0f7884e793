package usecase

import (
	"context"

	"github.com/nutricart-tech/go-backend/internal/domain"
)

type CartRepository interface {
	// Create создаёт пустую корзину пользователя (вызывается в транзакции регистрации).
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
	// GetCartID возвращает идентификатор корзины пользователя или e.ErrCartNotFound.
	GetCartID(ctx context.Context, userID int64) (int64, error)
	// AddOrIncrementItem атомарно создаёт позицию или увеличивает её количество.
	AddOrIncrementItem(ctx context.Context, cartID int64, productID int64, qty int32) error
	// UpdateItemQuantity заменяет количество существующей позиции или возвращает e.ErrCartItemNotFound.
	UpdateItemQuantity(ctx context.Context, cartID int64, productID int64, qty int32) error
	// DeleteItem удаляет позицию или возвращает e.ErrCartItemNotFound.
	DeleteItem(ctx context.Context, cartID int64, productID int64) error
	// GetEntries возвращает позиции корзины с данными товара, отсортированные по имени товара.
	GetEntries(ctx context.Context, cartID int64) ([]CartEntryInfo, error)
	// GetBasketProductIDs возвращает ID товаров корзины в порядке добавления.
	GetBasketProductIDs(ctx context.Context, cartID int64) ([]int64, error)
}

type ProductRepository interface {
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	// GetTopByHealthScore возвращает товары с изображением, отсортированные по health score по убыванию.
	GetTopByHealthScore(ctx context.Context, limit int) ([]ProductInfo, error)
	// GetCatalog возвращает товары каталога с изображением.
	GetCatalog(ctx context.Context, limit int) ([]ProductInfo, error)
}

type UserRepository interface {
	// Create сохраняет пользователя (в транзакции); дубликат email — e.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	// PresignedURL возвращает временную ссылку на изображение товара в S3.
	PresignedURL(ctx context.Context, key string) (string, error)
}

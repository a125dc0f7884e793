package usecase

import (
	"context"

	"github.com/nutricart-tech/go-backend/internal/domain"
)

type CartUC interface {
	AddItem(ctx context.Context, userID int64, req *AddItemReq) error
	SetQuantity(ctx context.Context, userID int64, req *SetQuantityReq) error
	RemoveItem(ctx context.Context, userID int64, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]CartEntryView, error)
}

type RecommendationUC interface {
	Recommend(ctx context.Context, user *domain.User, gamma float64) ([]ProductView, error)
}

type CatalogUC interface {
	GetProducts(ctx context.Context) ([]ProductView, error)
}

type AuthUC interface {
	Signup(ctx context.Context, req *SignupReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	UserByToken(ctx context.Context, token string) (*domain.User, error)
}

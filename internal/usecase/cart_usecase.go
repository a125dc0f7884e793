package usecase

import (
	"context"
	"errors"

	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

// CartUseCase реализует бизнес-логику корзины.
// Все мутации атомарны и сразу долговечны; события не публикуются.
type CartUseCase struct {
	cartRepo  CartRepository
	imageRepo ImageRepository
	logger    logger.Logger
}

func NewCartUC(cartRepo CartRepository, imageRepo ImageRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:  cartRepo,
		imageRepo: imageRepo,
		logger:    logger,
	}
}

// AddItem добавляет товар в корзину. Если позиция уже существует, количество
// увеличивается на req.Quantity (merge, не replace); слияние выполняется одним
// атомарным upsert-запросом, поэтому параллельные добавления не теряют инкременты.
func (c *CartUseCase) AddItem(ctx context.Context, userID int64, req *AddItemReq) error {
	const op = "CartUseCase.AddItem"

	if req.ProductID <= 0 {
		return e.Wrap(op, e.ErrInvalidProductID)
	}
	if req.Quantity < 1 {
		return e.Wrap(op, e.ErrInvalidQuantity)
	}

	cartID, err := c.cartRepo.GetCartID(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cartRepo.AddOrIncrementItem(ctx, cartID, req.ProductID, req.Quantity); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// SetQuantity заменяет количество существующей позиции точным значением.
// Количество 0 удаляет позицию; отсутствующая позиция — это ошибка ErrCartItemNotFound,
// а не тихий no-op: вызывающая сторона обязана проверять существование.
func (c *CartUseCase) SetQuantity(ctx context.Context, userID int64, req *SetQuantityReq) error {
	const op = "CartUseCase.SetQuantity"

	if req.ProductID <= 0 {
		return e.Wrap(op, e.ErrInvalidProductID)
	}
	if req.Quantity < 0 {
		return e.Wrap(op, e.ErrNegativeQuantity)
	}

	cartID, err := c.cartRepo.GetCartID(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if req.Quantity == 0 {
		if err := c.cartRepo.DeleteItem(ctx, cartID, req.ProductID); err != nil {
			return e.Wrap(op, err)
		}

		return nil
	}

	if err := c.cartRepo.UpdateItemQuantity(ctx, cartID, req.ProductID, req.Quantity); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// RemoveItem удаляет позицию из корзины.
func (c *CartUseCase) RemoveItem(ctx context.Context, userID int64, productID int64) error {
	const op = "CartUseCase.RemoveItem"

	if productID <= 0 {
		return e.Wrap(op, e.ErrInvalidProductID)
	}

	cartID, err := c.cartRepo.GetCartID(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cartRepo.DeleteItem(ctx, cartID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// GetCart возвращает позиции корзины с данными товаров, отсортированные по имени
// товара по возрастанию. Пустая или отсутствующая корзина — пустой список, не ошибка.
func (c *CartUseCase) GetCart(ctx context.Context, userID int64) ([]CartEntryView, error) {
	const op = "CartUseCase.GetCart"

	cartID, err := c.cartRepo.GetCartID(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			return []CartEntryView{}, nil
		}

		return nil, e.Wrap(op, err)
	}

	entries, err := c.cartRepo.GetEntries(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CartEntryView, 0, len(entries))
	for _, entry := range entries {
		view := presignProduct(ctx, c.imageRepo, c.logger, entry.Product)
		result = append(result, NewCartEntryView(view, entry.Quantity))
	}

	return result, nil
}

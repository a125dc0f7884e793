package usecase

import (
	"context"

	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

// catalogLimit — максимальный размер публичной выдачи каталога.
const catalogLimit = 100

// CatalogUseCase отдаёт публичный список товаров каталога.
type CatalogUseCase struct {
	productRepo ProductRepository
	imageRepo   ImageRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, imageRepo ImageRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

// GetProducts возвращает товары каталога с изображениями.
func (c *CatalogUseCase) GetProducts(ctx context.Context) ([]ProductView, error) {
	const op = "CatalogUseCase.GetProducts"

	products, err := c.productRepo.GetCatalog(ctx, catalogLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return presignProducts(ctx, c.imageRepo, c.logger, products), nil
}

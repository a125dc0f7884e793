package usecase

import (
	"context"

	"github.com/nutricart-tech/go-backend/pkg/logger"
)

// presignProduct заменяет ключ изображения presigned-ссылкой.
// Ошибка подписи не фатальна: товар отдаётся без изображения, ошибка логируется.
func presignProduct(ctx context.Context, imageRepo ImageRepository, log logger.Logger, info ProductInfo) ProductView {
	if info.ImageKey == nil {
		return NewProductView(info, nil)
	}

	url, err := imageRepo.PresignedURL(ctx, *info.ImageKey)
	if err != nil {
		log.Warnf("Failed to presign image for product %d: %v", info.ID, err)
		return NewProductView(info, nil)
	}

	return NewProductView(info, &url)
}

// presignProducts применяет presignProduct к списку, сохраняя порядок.
func presignProducts(ctx context.Context, imageRepo ImageRepository, log logger.Logger, infos []ProductInfo) []ProductView {
	views := make([]ProductView, 0, len(infos))
	for _, info := range infos {
		views = append(views, presignProduct(ctx, imageRepo, log, info))
	}

	return views
}

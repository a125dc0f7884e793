package minio

import (
	"context"
	"net/url"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/pkg/e"
)

// ImageRepo отдаёт временные ссылки на изображения товаров в MinIO.
// Сами объекты наполняются офлайн-пайплайном; бэкенд их только читает.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignedURL возвращает presigned GET-ссылку на изображение с TTL из конфигурации.
func (i *ImageRepo) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, i.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUseCase_GetProducts(t *testing.T) {
	ctx := context.Background()

	productRepo := newFakeProductRepo(testProducts()...)
	uc := usecase.NewCatalogUC(productRepo, fakeImageRepo{}, logger.NewSlogLogger())

	views, err := uc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	for _, view := range views {
		if view.ID == 3 {
			assert.Nil(t, view.ImageURL, "product without image key has no URL")
		} else {
			assert.NotNil(t, view.ImageURL)
		}
	}
}

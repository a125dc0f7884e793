package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

// fallbackLimit — размер подборки для пользователей с холодным стартом.
const fallbackLimit = 12

// RecommendationUseCase собирает запрос к внешнему рекомендательному сервису
// из состояния корзины и гидратирует ранжированный ответ данными каталога.
// Скоринг не реализуется здесь: сервис доверяет внешнему сервису
// интерпретацию gamma как коэффициента смешивания персонализации и health-цели.
type RecommendationUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imageRepo   ImageRepository
	recommender RecommenderInfra
	events      EventsInfra
	logger      logger.Logger
}

func NewRecommendationUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imageRepo ImageRepository,
	recommender RecommenderInfra,
	events EventsInfra,
	logger logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imageRepo:   imageRepo,
		recommender: recommender,
		events:      events,
		logger:      logger,
	}
}

// Recommend возвращает ранжированный список товаров для пользователя.
// Порядок, заданный внешним сервисом, сохраняется при гидратации; ID,
// отсутствующие в каталоге, отбрасываются без ошибки (расхождение корпуса
// рекомендательного сервиса и живого каталога — ожидаемая ситуация).
func (r *RecommendationUseCase) Recommend(ctx context.Context, user *domain.User, gamma float64) ([]ProductView, error) {
	const op = "RecommendationUseCase.Recommend"

	basketIDs, err := r.loadBasket(ctx, user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Холодный старт: пользователь не связан с корпусом сервиса и корзина пуста.
	// Вырожденный запрос к сервису не отправляется, вместо него — подборка
	// самых полезных товаров каталога, чтобы новый пользователь всегда видел контент.
	if user.ExternalUserID == nil && len(basketIDs) == 0 {
		return r.fallbackProducts(ctx)
	}

	gamma = clampGamma(gamma)

	recommendedIDs, err := r.recommender.Recommend(ctx, NewRecommendReq(user.ExternalUserID, basketIDs, gamma))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Пустой ответ — валидный результат, не ошибка.
	if len(recommendedIDs) == 0 {
		return []ProductView{}, nil
	}

	products, err := r.hydrateRanked(ctx, recommendedIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновая отправка аналитического события для офлайн-пайплайна обучения
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req := NewRecommendationServedReq(user.ID, basketIDs, recommendedIDs, gamma)
		if err := r.events.RecommendationServed(bgCtx, req); err != nil {
			r.logger.Warnf("Failed to emit recommendation event in background: %v", e.Wrap(op, err))
		}
	}()

	return presignProducts(ctx, r.imageRepo, r.logger, products), nil
}

// loadBasket возвращает ID товаров корзины в порядке добавления.
// Отсутствие корзины трактуется как пустая корзина.
func (r *RecommendationUseCase) loadBasket(ctx context.Context, userID int64) ([]int64, error) {
	cartID, err := r.cartRepo.GetCartID(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return r.cartRepo.GetBasketProductIDs(ctx, cartID)
}

// fallbackProducts возвращает топ товаров по health score с непустым изображением.
func (r *RecommendationUseCase) fallbackProducts(ctx context.Context) ([]ProductView, error) {
	const op = "RecommendationUseCase.fallbackProducts"

	products, err := r.productRepo.GetTopByHealthScore(ctx, fallbackLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return presignProducts(ctx, r.imageRepo, r.logger, products), nil
}

// hydrateRanked гидратирует ранжированные ID данными каталога, сохраняя порядок ранжирования.
// Поиск идёт сначала в кэше, промахи добираются из БД и фоном докэшируются.
func (r *RecommendationUseCase) hydrateRanked(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	const op = "RecommendationUseCase.hydrateRanked"

	cacheProductsMap, err := r.cacheRepo.GetProducts(ctx, ids)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, ids...)
	} else {
		for _, id := range ids {
			if _, ok := cacheProductsMap[id]; !ok {
				nonCacheable = append(nonCacheable, id)
			}
		}
	}

	var productsFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsFromDB, err = r.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := r.cacheRepo.SetProducts(bgCtx, productsFromDB); err != nil {
				r.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsFromDB))
	for _, product := range productsFromDB {
		dbProductsMap[product.ID] = product
	}

	// Сборка результата строго в порядке ранжирования; каталожный lookup порядок не меняет
	result := make([]ProductInfo, 0, len(ids))
	for _, id := range ids {
		if product, ok := cacheProductsMap[id]; ok {
			result = append(result, product)
		} else if product, ok := dbProductsMap[id]; ok {
			result = append(result, product)
		}
		// ID вне каталога отбрасывается
	}

	return result, nil
}

// clampGamma защитно ограничивает gamma диапазоном [0, 1].
func clampGamma(gamma float64) float64 {
	switch {
	case gamma < 0:
		return 0
	case gamma > 1:
		return 1
	default:
		return gamma
	}
}

package usecase

import "context"

type RecommenderInfra interface {
	// Recommend выполняет один запрос к внешнему рекомендательному сервису
	// и возвращает ранжированный список ID товаров.
	Recommend(ctx context.Context, req *RecommendReq) ([]int64, error)
}

type EventsInfra interface {
	// RecommendationServed отправляет аналитическое событие для офлайн-пайплайна обучения.
	RecommendationServed(ctx context.Context, req *RecommendationServedReq) error
}

type TokenInfra interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

// Recommender — клиент внешнего рекомендательного сервиса.
// Один блокирующий round trip на вызов, без повторов: ошибка сразу
// отдаётся вызывающей стороне как ErrRecommendationUnavailable.
type Recommender struct {
	client *http.Client
	cfg    *cfg.MLServiceCfg
	logger logger.Logger
}

func NewRecommender(cfg *cfg.MLServiceCfg, logger logger.Logger) *Recommender {
	return &Recommender{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// recommendRequest — тело запроса к сервису. user_id передаётся null
// для пользователей вне корпуса (сессионные рекомендации по корзине).
type recommendRequest struct {
	UserID    *int64  `json:"user_id"`
	BasketIDs []int64 `json:"basket_ids"`
	Gamma     float64 `json:"gamma"`
}

type recommendResponse struct {
	Recommendations []int64 `json:"recommendations"`
}

// Recommend выполняет один запрос к сервису и возвращает ранжированные ID товаров.
func (r *Recommender) Recommend(ctx context.Context, req *usecase.RecommendReq) ([]int64, error) {
	const op = "Recommender.Recommend"

	basketIDs := req.BasketIDs
	if basketIDs == nil {
		basketIDs = []int64{}
	}

	body, err := json.Marshal(recommendRequest{
		UserID:    req.ExternalUserID,
		BasketIDs: basketIDs,
		Gamma:     req.Gamma,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%v: %w", err, e.ErrRecommendationUnavailable))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warnf("Recommendation service returned status %d", resp.StatusCode)
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, e.ErrRecommendationUnavailable))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%v: %w", err, e.ErrRecommendationUnavailable))
	}

	var recResp recommendResponse
	if err := json.Unmarshal(data, &recResp); err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%v: %w", err, e.ErrRecommendationUnavailable))
	}

	return recResp.Recommendations, nil
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

const defaultGamma = 0.5

type RecommendationHandler struct {
	recUsecase usecase.RecommendationUC
	logger     logger.Logger
}

func NewRecommendationHandler(recUsecase usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recUsecase: recUsecase, logger: logger}
}

// recommendRequest — тело запроса рекомендаций. gamma опциональна,
// отсутствующее значение заменяется значением по умолчанию.
type recommendRequest struct {
	Gamma *float64 `json:"gamma"`
}

// recommend
//
//	@Summary		Персональные рекомендации
//	@Description	Возвращает товары в порядке ранжирования внешнего скорера; gamma задаёт баланс вкус/польза
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		recommendRequest	false	"Вес полезности gamma, [0,1]; по умолчанию 0.5"
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/recommendations [post]
func (h *RecommendationHandler) recommend(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	// Пустое тело допустимо и означает gamma по умолчанию;
	// нечисловая gamma — ошибка клиента.
	gamma := defaultGamma
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidGamma.Error(), err.Error())
		WriteError(w, e.ErrInvalidGamma)
		return
	}
	if req.Gamma != nil {
		gamma = *req.Gamma
	}

	products, err := h.recUsecase.Recommend(r.Context(), user, gamma)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

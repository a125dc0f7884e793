package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type cartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// getCart
//
//	@Summary		Содержимое корзины
//	@Description	Возвращает позиции корзины текущего пользователя, отсортированные по имени товара
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		CartEntryResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	entries, err := h.cartUsecase.GetCart(r.Context(), user.ID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCartEntryResponse(entries))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Создаёт позицию или увеличивает количество существующей
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		cartItemRequest	true	"Товар и количество"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	var req cartItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.AddItem(r.Context(), user.ID, usecase.NewAddItemReq(req.ProductID, req.Quantity)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Item added to cart successfully",
	})
}

// updateItem
//
//	@Summary		Изменение количества позиции
//	@Description	Заменяет количество точным значением; 0 удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		cartItemRequest	true	"Товар и новое количество"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart [put]
func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	var req cartItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.SetQuantity(r.Context(), user.ID, usecase.NewSetQuantityReq(req.ProductID, req.Quantity)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Item quantity updated",
	})
}

// removeItem
//
//	@Summary		Удаление позиции из корзины
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productId	path		int	true	"ID товара"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/cart/{productId} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	if err := h.cartUsecase.RemoveItem(r.Context(), user.ID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Item removed from cart",
	})
}

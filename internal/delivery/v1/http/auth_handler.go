package http

import (
	"net/http"

	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup
//
//	@Summary		Регистрация пользователя
//	@Description	Создаёт пользователя и пустую корзину, возвращает профиль с токеном
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signupRequest	true	"Данные регистрации"
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/auth/signup [post]
func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, "bad request", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Signup(r.Context(), &usecase.SignupReq{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAuthResponse(res))
}

// login
//
//	@Summary		Вход пользователя
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Учётные данные"
//	@Success		200		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, "bad request", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

func toAuthResponse(res *usecase.AuthRes) AuthResponse {
	return AuthResponse{
		ID:             res.User.ID,
		Name:           res.User.Name,
		Email:          res.User.Email,
		ExternalUserID: res.User.ExternalUserID,
		Token:          res.Token,
	}
}

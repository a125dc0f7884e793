package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/nutricart-tech/go-backend/pkg/tr"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase реализует регистрацию и вход пользователей.
// Сам протокол стандартный: bcrypt для паролей, HS256-токены через TokenInfra.
type AuthUseCase struct {
	userRepo UserRepository
	cartRepo CartRepository
	dbPool   transaction.Transactional
	tokens   TokenInfra
	logger   logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	cartRepo CartRepository,
	dbPool transaction.Transactional,
	tokens TokenInfra,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		cartRepo: cartRepo,
		dbPool:   dbPool,
		tokens:   tokens,
		logger:   logger,
	}
}

// Signup регистрирует пользователя и создаёт ему пустую корзину в одной транзакции.
// Корзина живёт столько же, сколько пользователь, поэтому аутентифицированный
// пользователь без корзины дальше по коду считается нарушением целостности данных.
func (a *AuthUseCase) Signup(ctx context.Context, req *SignupReq) (*AuthRes, error) {
	const op = "AuthUseCase.Signup"

	var err error
	if err = validateSignup(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, tr.TxKey, tx.Transaction())

	user, err := a.userRepo.Create(ctx, domain.NewUser(req.Name, req.Email, string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = a.cartRepo.Create(ctx, user.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return newAuthRes(user, token), nil
}

// Login аутентифицирует пользователя по email и паролю.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	if req.Email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	user, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Не раскрываем, существует ли пользователь
		a.logger.Warnf("Login failed for %s: %v", req.Email, err)
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return newAuthRes(user, token), nil
}

// UserByToken возвращает пользователя по JWT; используется middleware аутентификации.
func (a *AuthUseCase) UserByToken(ctx context.Context, token string) (*domain.User, error) {
	const op = "AuthUseCase.UserByToken"

	userID, err := a.tokens.ParseToken(token)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	return user, nil
}

func validateSignup(req *SignupReq) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		return e.ErrMissingFields
	}

	return nil
}

func newAuthRes(user *domain.User, token string) *AuthRes {
	return &AuthRes{
		User: UserProfile{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			ExternalUserID: user.ExternalUserID,
		},
		Token: token,
	}
}

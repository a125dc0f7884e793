package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/tr"
)

const uniqueViolationCode = "23505"

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет нового пользователя внутри транзакции регистрации.
// Дубликат email возвращается как e.ErrUserExists.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, external_user_id, created_at;
	`

	var model converter.UserModel
	if err := tx.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(
			&model.ID, &model.Name, &model.Email,
			&model.PasswordHash, &model.ExternalUserID, &model.CreatedAt,
		); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// GetByEmail возвращает пользователя по email.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, external_user_id, created_at
		FROM users
		WHERE email = $1;
	`

	return u.getOne(ctx, query, email)
}

// GetByID возвращает пользователя по идентификатору.
func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, external_user_id, created_at
		FROM users
		WHERE id = $1;
	`

	return u.getOne(ctx, query, id)
}

func (u *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var model converter.UserModel
	if err := u.pool.QueryRow(ctx, query, arg).
		Scan(
			&model.ID, &model.Name, &model.Email,
			&model.PasswordHash, &model.ExternalUserID, &model.CreatedAt,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

package pgdb_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// plainTokens кодирует userID строкой; криптография здесь не проверяется.
type plainTokens struct{}

func (plainTokens) IssueToken(userID int64) (string, error) {
	return strconv.FormatInt(userID, 10), nil
}

func (plainTokens) ParseToken(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

type authSignupSuite struct {
	suite.Suite

	pool *pgxpool.Pool
	uc   usecase.AuthUC
}

// entry point to run the tests in the suite
func TestAuthSignupSuite(t *testing.T) {
	suite.Run(t, new(authSignupSuite))
}

// before all tests in the suite
func (suite *authSignupSuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	userRepo := pgdb.NewUserRepo(suite.pool, generated.NewUserConverterImpl())
	cartRepo := pgdb.NewCartRepo(suite.pool, generated.NewCartConverterImpl())

	suite.uc = usecase.NewAuthUC(userRepo, cartRepo, suite.pool, plainTokens{}, logger.NewSlogLogger())
}

// after all tests in the suite
func (suite *authSignupSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *authSignupSuite) deleteUsers() {
	ctx := context.Background()

	_, err := suite.pool.Exec(ctx, "DELETE FROM carts")
	suite.NoError(err)
	_, err = suite.pool.Exec(ctx, "DELETE FROM users")
	suite.NoError(err)
}

func (suite *authSignupSuite) countRows(query string, args ...any) int64 {
	var count int64
	err := suite.pool.QueryRow(context.Background(), query, args...).Scan(&count)
	suite.Require().NoError(err)

	return count
}

func (suite *authSignupSuite) TestSignup_CreatesUserAndCartTogether() {
	defer suite.deleteUsers()
	t := suite.T()
	ctx := t.Context()

	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	res, err := suite.uc.Signup(ctx, &usecase.SignupReq{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	require.EqualValues(t, 1,
		suite.countRows("SELECT COUNT(*) FROM users WHERE email = $1", email))
	require.EqualValues(t, 1,
		suite.countRows("SELECT COUNT(*) FROM carts WHERE user_id = $1", res.User.ID))

	// Пароль хранится bcrypt-хэшем и проходит проверку входа
	login, err := suite.uc.Login(ctx, &usecase.LoginReq{Email: email, Password: password})
	require.NoError(t, err)
	require.Equal(t, res.User.ID, login.User.ID)
}

func (suite *authSignupSuite) TestSignup_DuplicateEmailLeavesNoPartialState() {
	defer suite.deleteUsers()
	t := suite.T()
	ctx := t.Context()

	email := gofakeit.Email()
	req := &usecase.SignupReq{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	_, err := suite.uc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = suite.uc.Signup(ctx, req)
	require.ErrorIs(t, err, e.ErrUserExists)

	// Откат: от второй регистрации не осталось ни пользователя, ни корзины
	require.EqualValues(t, 1,
		suite.countRows("SELECT COUNT(*) FROM users WHERE email = $1", email))
	require.EqualValues(t, 1, suite.countRows("SELECT COUNT(*) FROM carts"))
}

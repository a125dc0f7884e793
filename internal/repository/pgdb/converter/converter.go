//go:generate goverter gen github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/nutricart-tech/go-backend/internal/domain"
)

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPointerInt64
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// CartConverter преобразует сущности Cart между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type CartConverter interface {
	ToModel(entity *domain.Cart) *CartModel
	ToEntity(model *CartModel) *domain.Cart
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}

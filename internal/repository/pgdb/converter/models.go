package converter

import "time"

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	ExternalUserID *int64    `db:"external_user_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// CartModel представляет запись таблицы carts в PostgreSQL.
type CartModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

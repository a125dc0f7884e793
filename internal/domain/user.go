package domain

import "time"

// User описывает зарегистрированного пользователя.
// ExternalUserID связывает пользователя с записью в корпусе внешнего
// рекомендательного сервиса; nil означает холодный старт.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	ExternalUserID *int64
	CreatedAt      time.Time
}

func NewUser(name string, email string, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

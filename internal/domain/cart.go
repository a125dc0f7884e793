package domain

import "time"

// Cart описывает корзину пользователя.
// Создаётся пустой при регистрации и живёт столько же, сколько пользователь.
// Позиции корзины хранятся отдельно; на пару (корзина, товар) существует
// не более одной записи, количество всегда >= 1, иначе запись отсутствует.
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

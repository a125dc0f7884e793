package domain

import "time"

// Product описывает товар каталога.
// Идентификатор назначается внешней системой (корпус рекомендательного сервиса)
// и стабилен; каталог для этого сервиса read-only.
type Product struct {
	ID          int64
	Name        string
	Price       int64 // Цена хранится в центах
	HealthScore float64
	ImageKey    *string // Ключ изображения в S3, nil если изображения нет
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

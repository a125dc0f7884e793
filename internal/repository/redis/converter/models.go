package converter

// ProductInfoRedisModel — запись товара в кэше Redis.
// Хранится ключ изображения, а не presigned-ссылка: ссылки короткоживущие.
type ProductInfoRedisModel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	HealthScore float64 `json:"health_score"`
	ImageKey    *string `json:"image_key"`
}

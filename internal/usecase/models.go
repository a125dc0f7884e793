package usecase

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину.
type AddItemReq struct {
	ProductID int64
	Quantity  int32
}

// SetQuantityReq — запрос на установку точного количества позиции.
// Quantity = 0 означает удаление позиции.
type SetQuantityReq struct {
	ProductID int64
	Quantity  int32
}

// CartEntryInfo — позиция корзины с данными товара после гидратации из БД.
type CartEntryInfo struct {
	Product  ProductInfo
	Quantity int32
}

// CartEntryView — позиция корзины для внешней выдачи.
type CartEntryView struct {
	Product  ProductView
	Quantity int32
}

// RECOMMENDATION USECASE

// RecommendReq — запрос к внешнему рекомендательному сервису.
// ExternalUserID == nil означает пользователя вне корпуса сервиса (холодный старт).
type RecommendReq struct {
	ExternalUserID *int64
	BasketIDs      []int64
	Gamma          float64
}

// RecommendationServedReq — аналитическое событие о выданных рекомендациях.
type RecommendationServedReq struct {
	UserID         int64
	BasketIDs      []int64
	RecommendedIDs []int64
	Gamma          float64
}

// AUTH USECASE

// SignupReq — запрос на регистрацию пользователя.
type SignupReq struct {
	Name     string
	Email    string
	Password string
}

// LoginReq — запрос на аутентификацию.
type LoginReq struct {
	Email    string
	Password string
}

// UserProfile — публичные данные пользователя.
type UserProfile struct {
	ID             int64
	Name           string
	Email          string
	ExternalUserID *int64
}

// AuthRes — результат регистрации или входа.
type AuthRes struct {
	User  UserProfile
	Token string
}

// REPOSITORIES

// ProductInfo — DTO с данными товара на уровне хранилища (ключ изображения, не URL).
type ProductInfo struct {
	ID          int64
	Name        string
	Price       int64
	HealthScore float64
	ImageKey    *string
}

// ProductView — товар для внешней выдачи: ключ изображения заменён presigned-ссылкой.
type ProductView struct {
	ID          int64
	Name        string
	Price       int64
	HealthScore float64
	ImageURL    *string
}

// MAPPERS

func NewAddItemReq(productID int64, quantity int32) *AddItemReq {
	return &AddItemReq{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewSetQuantityReq(productID int64, quantity int32) *SetQuantityReq {
	return &SetQuantityReq{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewRecommendReq(externalUserID *int64, basketIDs []int64, gamma float64) *RecommendReq {
	return &RecommendReq{
		ExternalUserID: externalUserID,
		BasketIDs:      basketIDs,
		Gamma:          gamma,
	}
}

func NewRecommendationServedReq(userID int64, basketIDs []int64, recommendedIDs []int64, gamma float64) *RecommendationServedReq {
	return &RecommendationServedReq{
		UserID:         userID,
		BasketIDs:      basketIDs,
		RecommendedIDs: recommendedIDs,
		Gamma:          gamma,
	}
}

func NewProductInfo(id int64, name string, price int64, healthScore float64, imageKey *string) ProductInfo {
	return ProductInfo{
		ID:          id,
		Name:        name,
		Price:       price,
		HealthScore: healthScore,
		ImageKey:    imageKey,
	}
}

func NewProductView(info ProductInfo, imageURL *string) ProductView {
	return ProductView{
		ID:          info.ID,
		Name:        info.Name,
		Price:       info.Price,
		HealthScore: info.HealthScore,
		ImageURL:    imageURL,
	}
}

func NewCartEntryView(product ProductView, quantity int32) CartEntryView {
	return CartEntryView{
		Product:  product,
		Quantity: quantity,
	}
}

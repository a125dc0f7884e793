package main

import (
	"github.com/nutricart-tech/go-backend/internal/app"
)

//	@title			NutriCart API
//	@version		1.0
//	@description	Бэкенд продуктового магазина: каталог, корзина и персональные рекомендации.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT-токен в формате "Bearer {token}"

func main() {
	app.Run()
}

package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/nutricart-tech/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(authUC usecase.AuthUC, catalogUC usecase.CatalogUC, cartUC usecase.CartUC, recUC usecase.RecommendationUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authMiddleware := NewAuthMiddleware(authUC, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerAuthRoutes(v1, NewAuthHandler(authUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))

		v1.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.Protect)
			registerCartRoutes(protected, NewCartHandler(cartUC, r.logger))
			registerRecommendationRoutes(protected, NewRecommendationHandler(recUC, r.logger))
		})
	})
}

func registerAuthRoutes(router chi.Router, authHandler *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/signup", authHandler.signup)
		auth.Post("/login", authHandler.login)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.getProducts)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", cartHandler.getCart)
		cart.Post("/", cartHandler.addItem)
		cart.Put("/", cartHandler.updateItem)
		cart.Delete("/{productId}", cartHandler.removeItem)
	})
}

func registerRecommendationRoutes(router chi.Router, recHandler *RecommendationHandler) {
	router.Post("/recommendations", recHandler.recommend)
}

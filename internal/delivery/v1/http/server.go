package http

import (
	"context"
	"net/http"

	"github.com/nutricart-tech/go-backend/internal/cfg"
)

// Server — тонкая обёртка над http.Server с таймаутами из конфигурации.
// Запуск и остановка разнесены: Run блокирует, Stop дренирует соединения.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{httpServer: srv}
}

// Run блокирует до остановки сервера; ошибку http.ErrServerClosed
// вызывающая сторона трактует как штатное завершение.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Stop дренирует активные соединения в пределах переданного контекста.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mercadoenlinea/simon/internal/ai"
	"github.com/mercadoenlinea/simon/internal/bot"
	"github.com/mercadoenlinea/simon/internal/config"
	"github.com/mercadoenlinea/simon/internal/store"
	"github.com/mercadoenlinea/simon/internal/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conversations := store.NewMemoryStore(cfg.HistoryLimit)
	waClient := whatsapp.NewClient(cfg.FacebookAPIURL, cfg.FacebookAccessToken)
	gemini := ai.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey)

	botHandler := bot.NewHandler(
		waClient,
		conversations,
		ai.NewClassifier(gemini),
		ai.NewResponder(gemini),
	)
	webhookHandler := whatsapp.NewWebhookHandler(cfg.VerifyToken, botHandler.HandleEvent)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/webhook", webhookHandler.HandleVerify)
	r.Post("/webhook", webhookHandler.HandleIncoming)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("simon: listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("simon: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("simon: stopped")
}

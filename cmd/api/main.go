package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"taxi-fleet-service/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system env vars")
	}

	srv := app.NewServer()

	if err := srv.Init(context.Background()); err != nil {
		log.Fatalf("server failed to initialize: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	log.Println("server stopped")
}

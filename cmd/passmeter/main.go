package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	dotenv "github.com/joho/godotenv"
)

func main() {
	_ = dotenv.Load()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
	)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}

	cancel()
}

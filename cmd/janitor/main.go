package main

import (
	"context"
	"log"

	"github.com/lanternworks/auth-service/internal/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/default.yaml")
	if err != nil {
		log.Fatalf("bootstrap janitor runtime: %v", err)
	}
	if err := runtime.RunJanitor(ctx); err != nil {
		log.Fatalf("run janitor: %v", err)
	}
}

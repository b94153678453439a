// cmd/campushub/main.go
package main

import (
	"context"
	"log"

	"github.com/dalemusser/campushub/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("campushub failed to start: %v", err)
	}
}

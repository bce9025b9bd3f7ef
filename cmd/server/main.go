package main

import (
	"log"

	"github.com/Starley-iggy/YahooBank/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

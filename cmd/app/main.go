package main

import (
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}

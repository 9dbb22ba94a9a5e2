package main

import (
	"fmt"
	"os"

	"github.com/rook-computer/iconsmith/internal/app"
	"github.com/rook-computer/iconsmith/internal/render"
)

func main() {
	fmt.Println("Generating icon suite (Auric Veil)")

	gen := app.New(render.DefaultPalette())
	gen.Logger = app.NewConsoleLogger(os.Stdout)

	outputs, err := gen.Generate(app.DefaultOutputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icon generation failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Complete: %d files in %s\n", len(outputs), app.DefaultOutputDir)
}

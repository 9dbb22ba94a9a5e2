package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rook-computer/iconsmith/internal/icons"
	"github.com/rook-computer/iconsmith/internal/render"
)

// DefaultOutputDir is where the icon suite is written, relative to the
// working directory.
const DefaultOutputDir = "assets"

// Output describes one written icon file.
type Output struct {
	Name   string
	Path   string
	Width  int
	Height int
}

type Generator struct {
	Palette  render.Palette
	Variants []icons.Variant
	Logger   Logger
}

func New(palette render.Palette) *Generator {
	return &Generator{Palette: palette, Variants: icons.Variants(), Logger: NoopLogger{}}
}

// Generate renders every variant into outDir, creating the directory if
// needed. It stops at the first failure; files already written are kept.
func (g *Generator) Generate(outDir string) ([]Output, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		g.Logger.Errorf("app", "create output dir %s: %v", outDir, err)
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := make([]Output, 0, len(g.Variants))
	for _, v := range g.Variants {
		canvas := v.Render(g.Palette, v.Size)
		path := filepath.Join(outDir, v.File)
		if err := writePNG(path, canvas); err != nil {
			g.Logger.Errorf("app", "%s: %v", v.File, err)
			return outputs, err
		}
		w, h := canvas.Size()
		g.Logger.Infof("app", "%s (%dx%d)", v.File, w, h)
		outputs = append(outputs, Output{Name: v.Name, Path: path, Width: w, Height: h})
	}
	return outputs, nil
}

func writePNG(path string, d render.Drawer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := d.EncodePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/pkg/cache"
	"github.com/peircelab/peirce/pkg/errors"
	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/render"
)

// diagramTTL bounds how long rendered diagrams stay in the file cache.
const diagramTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (stdout if empty)
	format  string // "dot", "svg" or "png"
	shaded  bool   // shade negative areas
	noCache bool   // bypass the diagram cache
}

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: c.Config.Render.Format,
		shaded: c.Config.Render.Shaded,
	}

	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Render a graph as a diagram",
		Long: `Render a graph as a diagram with nested cut enclosures.

Supported formats are Graphviz DOT source, SVG, and PNG. Negative areas
(odd nesting depth) are shaded by default, the conventional presentation
of existential graph diagrams.

Examples:
  peirce render "(A, [B])" -o graph.svg
  peirce render -f png "([[A], B])" -o graph.png
  peirce render -f dot "(A)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.shaded, "shaded", opts.shaded, "shade negative areas")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, arg string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	text, err := readGraphArg(arg)
	if err != nil {
		return err
	}
	g, err := graph.Parse(text)
	if err != nil {
		return err
	}

	format := strings.ToLower(opts.format)
	dot := render.ToDOT(g, render.Options{Shaded: opts.shaded})
	if format == "dot" {
		return writeOutput([]byte(dot), opts.output, logger)
	}

	diagrams := newRenderCache(opts.noCache)
	defer diagrams.Close()

	key := cache.DiagramKey(g.String(), format, opts.shaded)
	if data, ok, err := diagrams.Get(cmd.Context(), key); err == nil && ok {
		logger.Debugf("Diagram cache hit for %s", g.String())
		return writeOutput(data, opts.output, logger)
	}

	prog := newProgress(logger)
	var data []byte
	switch format {
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported render format %q (svg, png, dot)", opts.format)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s (%d bytes)", format, len(data)))

	if err := diagrams.Set(cmd.Context(), key, data, diagramTTL); err != nil {
		logger.Warnf("Failed to cache diagram: %v", err)
	}
	return writeOutput(data, opts.output, logger)
}

// writeOutput writes data to path, or stdout if path is empty.
func writeOutput(data []byte, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote %s", path)
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

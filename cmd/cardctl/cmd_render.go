package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
	"github.com/murkotick/shoe-card-service/internal/app/card/utils"
	"github.com/murkotick/shoe-card-service/internal/config"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
	"github.com/murkotick/shoe-card-service/internal/server"
	"github.com/murkotick/shoe-card-service/internal/transport/term"
)

type renderOptions struct {
	file   string
	now    string
	asJSON bool
	width  int
}

// newRenderCmd renders one product or a JSON array of products.
func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render product JSON as catalog cards",
		Long: `Reads a product object or an array of product objects and renders
each as a card. Invalid products are shown as fallback cards.

Use --now to preview how cards look at another date, e.g. when a
new release ages out of its window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "product JSON file (- for stdin)")
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluation time (RFC3339 or YYYY-MM-DD); defaults to the current time")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print card JSON instead of drawing cards")
	cmd.Flags().IntVar(&opts.width, "width", term.DefaultWidth, "card width in cells")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var clk clock.Clock = clock.RealClock{}
	if opts.now != "" {
		at, ok := utils.ParseReleaseDate(opts.now)
		if !ok {
			return fmt.Errorf("invalid --now %q", opts.now)
		}
		clk = clock.Fixed(at)
	}

	q, err := server.NewQueries(cfg, clk, log)
	if err != nil {
		return err
	}

	products, err := readProducts(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}
	log.Debug("rendering products",
		zap.Int("count", len(products)),
		zap.Time("now", clk.Now()),
		zap.Duration("new_release_window", q.Render.Resolver.Window()))

	cards, err := q.Batch.Execute(cmd.Context(), products)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	r := term.NewRenderer(opts.width)
	for _, c := range cards {
		fmt.Fprintln(out, r.Render(c))
	}
	return nil
}

func readProducts(stdin io.Reader, file string) ([]dto.ProductDTO, error) {
	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("read products: empty input")
	}

	if raw[0] == '[' {
		var many []dto.ProductDTO
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
		return many, nil
	}

	var one dto.ProductDTO
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return []dto.ProductDTO{one}, nil
}

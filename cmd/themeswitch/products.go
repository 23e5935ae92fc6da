package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/pagination"
	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

type productsOptions struct {
	query      string
	page       int
	jsonOutput bool
}

func newProductsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Fetch, filter and page through the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.products")
			err = runProducts(ctx, logger, cmd, app, opts)
			if err != nil {
				logger.Error(ctx, "products command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only show products whose title contains this text (case-insensitive)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number to display")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runProducts(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, opts *productsOptions) error {
	cfg := app.Config
	source := catalog.NewHTTPSource(cfg.Endpoint, cfg.RequestTimeout, logger.With("component", "catalog"), catalog.WithUserAgent(userAgent()))

	items, err := source.Fetch(ctx)
	if err != nil {
		return newCommandError("list products", fmt.Sprintf("fetching %s", source.Endpoint()), err, "Check your network connection or the configured endpoint.")
	}

	engine := pagination.NewEngine(cfg.PageSize)
	engine.SetItems(items)
	engine.SetQuery(opts.query)

	if !engine.GoTo(opts.page) {
		return newCommandError("list products", fmt.Sprintf("selecting page %d", opts.page),
			fmt.Errorf("page out of range"),
			fmt.Sprintf("Choose a page between 1 and %d.", max(engine.TotalPages(), 1)))
	}

	logger.Debug(ctx, "products paginated",
		"query", opts.query,
		"page", engine.Page(),
		"matches", engine.FilteredCount(),
	)

	if opts.jsonOutput {
		return renderProductsJSON(cmd, engine)
	}
	return renderProductsTable(cmd, engine)
}

func renderProductsTable(cmd *cobra.Command, engine pagination.Engine) error {
	out := cmd.OutOrStdout()

	if engine.FilteredCount() == 0 {
		fmt.Fprintf(out, "No products found matching %q\n", engine.Query())
		return nil
	}

	useUnicode := supportsUnicode(out)
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tPRICE\tRATING\tCATEGORY")
	for _, p := range engine.Visible() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Title,
			p.FormattedPrice(),
			formatRating(p.Rating, useUnicode),
			p.Category,
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	from, to := engine.Range()
	fmt.Fprintf(out, "\nShowing %d to %d of %d results\n", from, to, engine.FilteredCount())
	if engine.ShowControls() {
		fmt.Fprintf(out, "Page %d of %d: %s\n", engine.Page(), engine.TotalPages(), formatLabels(engine, useUnicode))
	}
	return nil
}

func formatRating(r catalog.Rating, useUnicode bool) string {
	star := "*"
	if useUnicode {
		star = "★"
	}
	return fmt.Sprintf("%s %.1f (%d)", star, r.Rate, r.Count)
}

func formatLabels(engine pagination.Engine, useUnicode bool) string {
	parts := make([]string, 0, 7)
	for _, label := range engine.Labels() {
		switch {
		case label.Ellipsis && !useUnicode:
			parts = append(parts, "...")
		case label.Page == engine.Page():
			parts = append(parts, "["+label.String()+"]")
		default:
			parts = append(parts, label.String())
		}
	}
	return strings.Join(parts, " ")
}

type productsJSONPayload struct {
	Version    string            `json:"version"`
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Pages      []string          `json:"pages"`
	Products   []catalog.Product `json:"products"`
}

func renderProductsJSON(cmd *cobra.Command, engine pagination.Engine) error {
	labels := engine.Labels()
	pages := make([]string, len(labels))
	for i, label := range labels {
		pages[i] = label.String()
	}

	payload := productsJSONPayload{
		Version:    "1.0",
		Query:      engine.Query(),
		Page:       engine.Page(),
		PageSize:   engine.PageSize(),
		TotalPages: engine.TotalPages(),
		Total:      engine.FilteredCount(),
		Pages:      pages,
		Products:   engine.Visible(),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

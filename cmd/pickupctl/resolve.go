package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"pickup.app/resolver/model"
)

const (
	flagURL      = "url"
	flagASIN     = "asin"
	flagGTIN     = "gtin"
	flagPlatform = "platform"
	flagPage     = "page"
	flagZIP      = "zip"
	flagTimeout  = "timeout"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a product against a running resolver and print the ranked offers.",
		Args:  cobra.ExactArgs(0),
		Example: `  # Resolve an Amazon listing near Manhattan.
  pickupctl resolve --asin B0BXQBHL5D --platform amazon --page https://amazon.com/dp/B0BXQBHL5D --zip 10001
`,
		RunE: runResolve,
	}

	cmd.Flags().String(flagURL, "http://localhost:4000", "base URL of the resolver")
	cmd.Flags().String(flagASIN, "", "amazon standard identification number")
	cmd.Flags().String(flagGTIN, "", "global trade item number")
	cmd.Flags().String(flagPlatform, "amazon", "platform the product page belongs to")
	cmd.Flags().String(flagPage, "", "product page URL")
	cmd.Flags().String(flagZIP, "", "ZIP code to search around")
	cmd.Flags().Duration(flagTimeout, 10*time.Second, "request timeout")
	cmd.MarkFlagsOneRequired(flagASIN, flagGTIN)
	_ = cmd.MarkFlagRequired(flagPage)

	return cmd
}

type resolvePayload struct {
	Identifiers model.Identifiers `json:"identifiers"`
	Platform    string            `json:"platform"`
	URL         string            `json:"url"`
	ZIP         string            `json:"zip,omitempty"`
}

func runResolve(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	base, _ := flags.GetString(flagURL)
	asin, _ := flags.GetString(flagASIN)
	gtin, _ := flags.GetString(flagGTIN)
	platform, _ := flags.GetString(flagPlatform)
	page, _ := flags.GetString(flagPage)
	zip, _ := flags.GetString(flagZIP)
	timeout, _ := flags.GetDuration(flagTimeout)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := resolve(ctx, http.DefaultClient, base, resolvePayload{
		Identifiers: model.Identifiers{ASIN: asin, GTIN: gtin},
		Platform:    platform,
		URL:         page,
		ZIP:         zip,
	})
	if err != nil {
		return err
	}
	return renderOffers(cmd.OutOrStdout(), resp)
}

func resolve(ctx context.Context, client *http.Client, base string, payload resolvePayload) (*model.ResolveResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(base, "/")+"/v1/resolve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("resolve: status=%d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out model.ResolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func renderOffers(w io.Writer, resp *model.ResolveResponse) error {
	if !resp.Eligible {
		_, err := fmt.Fprintln(w, "no eligible offers")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Type", "Store", "Chain", "ETA", "Distance", "Price", "Stock"})
	for i, o := range resp.Offers {
		stock := "-"
		if o.StockLevel != nil {
			stock = fmt.Sprintf("%d", *o.StockLevel)
		}
		t.AppendRow(table.Row{i + 1, o.AvailabilityType, o.StoreName, o.StoreChain, o.ETA, o.Distance, o.Price, stock})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", fmt.Sprintf("cached=%t", resp.Cached), ""})

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.Render()
	return nil
}

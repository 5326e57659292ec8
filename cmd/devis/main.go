// Command devis loads the quotes board from the remote API and prints it.
// It can also delete a quote, change a quote status or patch a customer
// before printing the resulting board.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"

	"github.com/diewo77/devis-board/i18n"
	"github.com/diewo77/devis-board/internal/apiclient"
	"github.com/diewo77/devis-board/internal/config"
	"github.com/diewo77/devis-board/internal/models"
	"github.com/diewo77/devis-board/internal/store"
)

type options struct {
	baseURL   string
	lang      string
	asJSON    bool
	dump      bool
	quiet     bool
	stats     bool
	deleteID  int64
	setStatus string
	customer  int64
	phone     string
	email     string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var o options
	flag.StringVar(&o.baseURL, "api", cfg.API.BaseURL, "Remote API base URL")
	flag.StringVar(&o.lang, "lang", cfg.App.Lang, "Display language (fr, en)")
	flag.BoolVar(&o.asJSON, "json", false, "Print the board as JSON")
	flag.BoolVar(&o.dump, "dump", false, "Dump the full state (debug)")
	flag.BoolVar(&o.quiet, "quiet", false, "Hide the loading progress bar")
	flag.BoolVar(&o.stats, "stats", false, "Print API call counts on exit")
	flag.Int64Var(&o.deleteID, "delete", 0, "Delete the quote with this id")
	flag.StringVar(&o.setStatus, "set-status", "", "Change a quote status: id=STATUS")
	flag.Int64Var(&o.customer, "customer", 0, "Customer id to patch with -phone/-email")
	flag.StringVar(&o.phone, "phone", "", "New customer phone")
	flag.StringVar(&o.email, "email", "", "New customer email")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, o options, cfg *config.Config, stdout, stderr io.Writer) error {
	lang := i18n.Normalize(o.lang)
	reg := prometheus.NewRegistry()
	client := apiclient.New(o.baseURL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
	)

	storeOpts := []store.Option{store.WithLang(lang)}
	if !o.quiet && !o.asJSON {
		bar := progressbar.NewOptions(6,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription(o.baseURL),
			progressbar.OptionClearOnFinish(),
		)
		storeOpts = append(storeOpts, store.WithFetchHook(func(string, error) { _ = bar.Add(1) }))
	}
	s := store.New(client, storeOpts...)

	s.Load(ctx)
	if st := s.Snapshot(); st.Phase() == store.PhaseError {
		return errors.New(st.Error)
	}

	if err := mutate(ctx, s, o); err != nil {
		return err
	}

	st := s.Snapshot()
	switch {
	case o.dump:
		spew.Fdump(stdout, st)
	case o.asJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(st.Items); err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
	default:
		if err := renderBoard(stdout, st.Items); err != nil {
			return err
		}
	}

	if o.stats {
		return printStats(stderr, reg)
	}
	return nil
}

func mutate(ctx context.Context, s *store.Store, o options) error {
	if o.deleteID != 0 {
		if err := s.Delete(ctx, o.deleteID); err != nil {
			return err
		}
	}
	if o.setStatus != "" {
		id, status, err := parseSetStatus(o.setStatus)
		if err != nil {
			return err
		}
		if err := s.UpdateQuote(ctx, id, models.QuotePatch{Status: &status}); err != nil {
			return err
		}
	}
	if o.customer != 0 {
		var patch models.CustomerPatch
		if o.phone != "" {
			patch.Phone = &o.phone
		}
		if o.email != "" {
			patch.Email = &o.email
		}
		if patch.Phone == nil && patch.Email == nil {
			return errors.New("-customer needs -phone or -email")
		}
		if err := s.UpdateCustomer(ctx, o.customer, patch); err != nil {
			return err
		}
	}
	return nil
}

// parseSetStatus parses "42=SENT". The status is upper-cased.
func parseSetStatus(arg string) (int64, models.QuoteStatus, error) {
	idPart, statusPart, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, "", fmt.Errorf("-set-status %q: want id=STATUS", arg)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("-set-status %q: bad id: %w", arg, err)
	}
	status := models.QuoteStatus(strings.ToUpper(strings.TrimSpace(statusPart)))
	return id, status, nil
}

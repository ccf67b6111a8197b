// Command legallens-catalog validates an intent csv and optionally seeds postgres with it
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"legallens/internal/core/catalog"
	"legallens/internal/core/steps"
	"legallens/internal/platform/logger"
	"legallens/internal/platform/store"

	catrepo "legallens/internal/services/api/catalog/repo"
	catsvc "legallens/internal/services/api/catalog/service"
)

func main() {
	var (
		in   = flag.String("in", "", "intent catalog csv (columns: [id,] intents, process)")
		seed = flag.Bool("seed", false, "replace the postgres intents table with the csv rows")
	)
	flag.Parse()
	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: legallens-catalog -in intents.csv [-seed]")
		os.Exit(2)
	}

	l := logger.Get()
	ctx := context.Background()

	rows, err := catalog.File(*in).Rows(ctx)
	if err != nil {
		l.Error().Err(err).Str("file", *in).Msg("read catalog")
		os.Exit(1)
	}
	cat, err := catalog.FromRows(rows)
	if err != nil {
		l.Error().Err(err).Str("file", *in).Msg("invalid catalog")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tKEYWORDS\tSTEPS")
	for i, r := range cat.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, r.ID, strings.Join(r.Keywords, ", "), len(steps.Format(r.Procedure)))
	}
	_ = tw.Flush()

	if !*seed {
		return
	}

	if err := seedPG(ctx, rows); err != nil {
		l.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}

func seedPG(ctx context.Context, rows []catalog.Row) error {
	cfg := store.ConfigFromEnv("legallens-catalog")
	if !cfg.PG.Enabled {
		return fmt.Errorf("-seed needs SERVICE_PGSQL_DBURL")
	}
	st, err := store.Open(ctx, store.Config{AppName: cfg.AppName, PG: cfg.PG}, store.WithLogger(*logger.Get()))
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(ctx) }()

	svc, err := catsvc.New(catsvc.Config{}, st.PG, catrepo.NewPG(), logger.Named("catalog"))
	if err != nil {
		return err
	}
	_, err = svc.Seed(ctx, rows)
	return err
}

// Command legallens-ask answers one question from the command line
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"legallens/internal/adapters/translate"
	"legallens/internal/core/catalog"
	"legallens/internal/core/resolver"
	"legallens/internal/platform/config"
	"legallens/internal/platform/logger"

	askdom "legallens/internal/services/api/ask/domain"
	asksvc "legallens/internal/services/api/ask/service"
)

func main() {
	var (
		query   = flag.String("q", "", "question, in any supported language")
		lang    = flag.String("lang", "", "language of the question, detected when empty")
		csvPath = flag.String("catalog", "", "intent catalog csv, the built in catalog when empty")
		timeout = flag.Duration("timeout", 30*time.Second, "overall deadline")
	)
	flag.Parse()
	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: legallens-ask -q \"how do I get a passport\" [-lang hi] [-catalog intents.csv]")
		os.Exit(2)
	}

	l := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	src := catalog.Embedded()
	if *csvPath != "" {
		src = catalog.File(*csvPath)
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		l.Error().Err(err).Msg("catalog load failed")
		os.Exit(1)
	}

	root := config.New()
	lb := translate.New(translate.FromConfig(root), nil)
	r := resolver.New(resolver.Static{C: cat}, lb.Translator, resolver.Options{
		Detector:       lb.Detector,
		UnknownMessage: root.Prefix("CORE_LENS_").MayString("UNKNOWN_MESSAGE", ""),
		Log:            logger.Named("resolver"),
	})

	v, err := asksvc.New(r, nil, nil).Ask(ctx, askdom.AskInput{Query: *query, Lang: *lang})
	if err != nil {
		l.Error().Err(err).Msg("could not answer")
		os.Exit(1)
	}
	fmt.Println(v.Answer)
}

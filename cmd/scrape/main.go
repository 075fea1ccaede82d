package main

import (
	"flag"
	"os"

	"github.com/berkcan/schedbuilder/internal/pkg/logger"
	"github.com/berkcan/schedbuilder/internal/scraper"
)

// Scrapes the NJIT schedule-builder catalogue into the JSON file the API
// server loads. Run once per term, or on a cron alongside the server's
// periodic refresh.
func main() {
	url := flag.String("url", scraper.DefaultURL, "catalogue data service URL")
	out := flag.String("out", "all_sections.json", "output catalogue file")
	flag.Parse()

	logger.Info().Str("url", *url).Msg("Downloading catalogue...")

	client := scraper.NewClient()
	raw, err := client.Fetch(*url)
	if err != nil {
		logger.Error().Err(err).Msg("Download failed")
		os.Exit(1)
	}

	jsonText, err := scraper.UnwrapDefine(raw)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to decode catalogue blob")
		os.Exit(1)
	}

	catalogue, err := scraper.Transform([]byte(jsonText))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to transform catalogue")
		os.Exit(1)
	}

	if err := scraper.WriteCatalogue(*out, catalogue); err != nil {
		logger.Error().Err(err).Msg("Failed to write catalogue file")
		os.Exit(1)
	}

	total := 0
	for _, sections := range catalogue {
		total += len(sections)
	}
	logger.Info().
		Int("courses", len(catalogue)).
		Int("sections", total).
		Str("out", *out).
		Msg("Catalogue saved")
}

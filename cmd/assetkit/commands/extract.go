package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"git.home.luguber.info/inful/assetkit/internal/config"
	"git.home.luguber.info/inful/assetkit/internal/extract"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
)

// ExtractCmd implements the 'extract' command.
type ExtractCmd struct {
	Section     string `help:"Extract only the named section" placeholder:"NAME"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
}

func (e *ExtractCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	sections := cfg.Extract.Sections
	if e.Section != "" {
		s, ok := cfg.Extract.SectionByName(e.Section)
		if !ok {
			return ferrors.NotFoundError("section not configured").
				WithContext("section", e.Section).
				Build()
		}
		sections = []config.Section{s}
	}

	log := g.Logger.With(logfields.Command("extract"))
	log.Debug("Starting section extraction", "sections", len(sections))

	out := newMetricsOutput(e.MetricsFile)
	results, err := extract.NewExtractor(log).WithRecorder(out.Recorder()).Run(g.Context, sections)
	for _, r := range results {
		fmt.Fprintf(g.Stdout, "Extracted %s to %s (%s)\n", r.Section, r.Output, humanize.IBytes(uint64(r.Bytes)))
	}
	if err := out.Flush(log, err); err != nil {
		return err
	}
	fmt.Fprintln(g.Stdout, "Extraction completed")
	return nil
}

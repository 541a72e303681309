package commands

import (
	"git.home.luguber.info/inful/assetkit/internal/config"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/vocab"
)

// IndexCmd implements the 'index' command.
type IndexCmd struct {
	Bank        string `help:"Index only the given word bank" placeholder:"ID"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
}

func (i *IndexCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	vcfg := cfg.Vocab
	if i.Bank != "" {
		bank, ok := vcfg.BankByID(i.Bank)
		if !ok {
			return ferrors.NotFoundError("word bank not configured").
				WithContext("bank", i.Bank).
				Build()
		}
		vcfg.Banks = []config.Bank{bank}
	}

	out := newMetricsOutput(i.MetricsFile)
	log := g.Logger.With(logfields.Command("index"))
	_, err = vocab.NewBuilder(vcfg, log).
		WithRecorder(out.Recorder()).
		WithOutput(g.Stdout).
		Run(g.Context)
	return out.Flush(log, err)
}

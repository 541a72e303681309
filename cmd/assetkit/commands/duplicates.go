package commands

import (
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/textio"
	"git.home.luguber.info/inful/assetkit/internal/vocab"
)

// DuplicatesCmd implements the 'duplicates' command.
type DuplicatesCmd struct {
	Bank  string `required:"" help:"Word bank to inspect" placeholder:"ID"`
	Limit int    `default:"3" help:"Maximum number of duplicate words to report (0 for all)"`
}

func (d *DuplicatesCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if d.Limit < 0 {
		return ferrors.ValidationError("limit must not be negative").
			WithContext("limit", d.Limit).
			Build()
	}

	bank, ok := cfg.Vocab.BankByID(d.Bank)
	if !ok {
		return ferrors.NotFoundError("word bank not configured").
			WithContext("bank", d.Bank).
			Build()
	}
	if !textio.IsDir(cfg.Vocab.SourceDir) {
		return ferrors.ConfigError("vocabulary directory not found").
			WithContext("path", cfg.Vocab.SourceDir).
			Build()
	}

	log := g.Logger.With(logfields.Command("duplicates"))
	dups, err := vocab.FindDuplicates(g.Context, cfg.Vocab.SourceDir, bank, d.Limit, log)
	if err != nil {
		return err
	}
	vocab.WriteDuplicates(g.Stdout, bank.ID, dups)
	return nil
}

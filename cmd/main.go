package cmd

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rubenv/kmlift"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Configuration file (optional)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*kmlift.Config, error) {
	if g.Config == "" {
		return kmlift.DefaultConfig(), nil
	}

	config, err := kmlift.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %s", err)
	}
	return config, nil
}

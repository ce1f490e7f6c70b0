package cmd

import (
	"fmt"

	"github.com/rubenv/kmlift"
)

type CmdCheck struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("check",
		"Check paths",
		"Report which files contain paths that would be lifted, without writing output",
		&CmdCheck{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCheck) Usage() string {
	return "input1.kml [input2.kmz ...]"
}

func (cmd CmdCheck) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("No input files specified, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	axes, err := config.ResolveAxes()
	if err != nil {
		return err
	}

	pending := 0
	for _, infile := range args {
		doc, err := kmlift.ReadDocument(infile)
		if err != nil {
			return err
		}

		changed, err := kmlift.ProcessDocument(doc, axes)
		if err != nil {
			return fmt.Errorf("Failed to process %s: %s", infile, err)
		}

		fmt.Printf("%s: %d paths need lifting\n", infile, changed)
		pending += changed
	}

	if pending > 0 {
		return fmt.Errorf("%d paths need lifting", pending)
	}
	return nil
}

package cmd

import (
	"fmt"
	"log"

	"github.com/cheggaaa/pb"
	"github.com/rubenv/kmlift"
)

type CmdLift struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("lift",
		"Lift paths",
		"Repair path arcs in the given KML/KMZ files, writing a lifted copy of each",
		&CmdLift{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdLift) Usage() string {
	return "input1.kml [input2.kmz ...]"
}

func (cmd CmdLift) Execute(args []string) error {
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

	bar := pb.New(len(args)).Format("[=> ]")
	bar.Start()
	for _, infile := range args {
		outfile := kmlift.OutputFilename(infile, config.Suffix)
		changed, err := kmlift.ProcessFile(infile, outfile, axes)
		if err != nil {
			return fmt.Errorf("Failed to process %s: %s", infile, err)
		}
		if changed > 0 {
			log.Printf("%s: lifted %d paths, wrote %s", infile, changed, outfile)
		}
		bar.Increment()
	}
	bar.Finish()

	return nil
}

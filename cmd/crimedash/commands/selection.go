package commands

import (
	"crimedash/internal/view"

	"github.com/spf13/pflag"
)

// selectionFlags mirrors view.SelectionRequest on the command line.
type selectionFlags struct {
	risk      string
	threshold int
	sort      string
	area      string
	crimeType string
	mode      string
}

func (f *selectionFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.risk, "risk", "", "risk filter: All, Low, Medium or High")
	flags.IntVar(&f.threshold, "threshold", 0, "minimum crime count (0-3000, steps of 100)")
	flags.StringVar(&f.sort, "sort", "", "sort key: count, name or risk")
	flags.StringVar(&f.area, "area", "", "area to select")
	flags.StringVar(&f.crimeType, "crime-type", "", "crime type to select")
	flags.StringVar(&f.mode, "mode", "", "layout: bars or grid")
}

func (f *selectionFlags) selection(flags *pflag.FlagSet) (view.Selection, error) {
	req := view.SelectionRequest{
		Risk:      f.risk,
		Sort:      f.sort,
		Area:      f.area,
		CrimeType: f.crimeType,
		Mode:      f.mode,
	}
	if flags.Changed("threshold") {
		req.Threshold = &f.threshold
	}
	if err := req.Validate(); err != nil {
		return view.Selection{}, err
	}
	return req.Apply(view.ResetSelection()), nil
}

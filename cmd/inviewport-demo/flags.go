//go:build !wasm
// +build !wasm

package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-inviewport/appcomponents"
)

// scenarioFlags are shared by every command that replays a scenario.
type scenarioFlags struct {
	count      int
	options    string
	viewport   float64
	itemHeight float64
	scroll     string
}

func (f *scenarioFlags) register(cmd *cobra.Command, defaultScroll string) {
	cmd.Flags().IntVar(&f.count, "count", appcomponents.DefaultCount, "Number of items in the list")
	cmd.Flags().StringVar(&f.options, "options", "", `Viewport options as JSON, e.g. '{"threshold":0.5}'`)
	cmd.Flags().Float64Var(&f.viewport, "viewport", 200, "Viewport height in pixels")
	cmd.Flags().Float64Var(&f.itemHeight, "item-height", 40, "Height of each item in pixels")
	cmd.Flags().StringVar(&f.scroll, "scroll", defaultScroll, "Comma separated scroll offsets to visit")
}

func (f *scenarioFlags) scenario() (scenario, error) {
	offsets, err := parseScroll(f.scroll)
	if err != nil {
		return scenario{}, err
	}
	return scenario{
		Count:      f.count,
		Options:    f.options,
		Viewport:   f.viewport,
		ItemHeight: f.itemHeight,
		Scroll:     offsets,
	}, nil
}

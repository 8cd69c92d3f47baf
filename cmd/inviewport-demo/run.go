//go:build !wasm
// +build !wasm

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var runFlags scenarioFlags

func init() {
	cmd := newRunCmd()
	runFlags.register(cmd, "0")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scroll the list and report activations",
		Long: `The run command replays a scroll sequence and prints, for each offset,
the items that entered the viewport and the running total of active items.

Example:
  inviewport-demo run
  inviewport-demo run --count 50 --scroll 0,300,600
  inviewport-demo run --options '{"threshold":0.5,"rootMargin":"-40px"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd)
		},
	}
	return cmd
}

func runRun(cmd *cobra.Command) error {
	s, err := runFlags.scenario()
	if err != nil {
		return err
	}
	res, err := simulate(s)
	if err != nil {
		return err
	}

	options := s.Options
	if options == "" {
		options = "defaults"
	}
	printInfo(cmd, "%s\n", paint(headerStyle, fmt.Sprintf(
		"%d items, %gpx each, viewport %gpx, options %s",
		s.Count, s.ItemHeight, s.Viewport, options)))

	for _, st := range res.Steps {
		printInfo(cmd, "%s  entered %-24s active %d/%d\n",
			paint(scrollStyle, fmt.Sprintf("scroll %6g", st.ScrollY)),
			formatIDs(st.Entered),
			st.Active, s.Count)
	}
	if s.Count > 0 {
		printInfo(cmd, "%s\n", strip(res.List.Numbers, res.List.Active))
	}
	return nil
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// strip draws every item, highlighting the active ones. Without colors an
// active item is marked with a trailing asterisk.
func strip(ids []int, active func(int) bool) string {
	cells := make([]string, len(ids))
	for i, id := range ids {
		label := strconv.Itoa(id)
		switch {
		case active(id) && noColor:
			cells[i] = label + "*"
		case active(id):
			cells[i] = activeStyle.Render(label)
		default:
			cells[i] = paint(idleStyle, label)
		}
	}
	return strings.Join(cells, " ")
}

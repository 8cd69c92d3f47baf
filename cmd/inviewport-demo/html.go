//go:build !wasm
// +build !wasm

package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-inviewport/vdom"
)

var htmlFlags scenarioFlags

func init() {
	cmd := newHTMLCmd()
	htmlFlags.register(cmd, "0")
	rootCmd.AddCommand(cmd)
}

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Print the list markup after a scroll sequence",
		Long: `The html command replays a scroll sequence like run does, then prints
the resulting markup of the list, with the active class on every item that
entered the viewport.

Example:
  inviewport-demo html --count 10
  inviewport-demo html --count 10 --viewport 80 --scroll 0,200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd)
		},
	}
	return cmd
}

func runHTML(cmd *cobra.Command) error {
	s, err := htmlFlags.scenario()
	if err != nil {
		return err
	}
	res, err := simulate(s)
	if err != nil {
		return err
	}

	out, err := vdom.HTMLString(res.Renderer.GetCurrentVDOM())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write([]byte(out + "\n"))
	return err
}

//go:build !wasm
// +build !wasm

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vcrobe/nojs-inviewport/appcomponents"
	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
	"github.com/vcrobe/nojs-inviewport/inviewport/headless"
	"github.com/vcrobe/nojs-inviewport/memrender"
)

// layoutWidth is the width of both the viewport and every item.
const layoutWidth = 100

// scenario describes one replay: a column of Count items, each ItemHeight
// tall, under a viewport Viewport tall, scrolled to each offset in turn.
type scenario struct {
	Count      int
	Options    string
	Viewport   float64
	ItemHeight float64
	Scroll     []float64
}

// step is the outcome of one scroll offset.
type step struct {
	ScrollY float64
	Entered []int
	Active  int
}

// replay is a finished scenario.
type replay struct {
	Steps    []step
	List     *appcomponents.NumberList
	Renderer *memrender.Renderer
	Platform *headless.Platform
}

func (s scenario) validate() error {
	if s.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", s.Count)
	}
	if s.Viewport <= 0 {
		return fmt.Errorf("viewport height must be positive, got %v", s.Viewport)
	}
	if s.ItemHeight <= 0 {
		return fmt.Errorf("item height must be positive, got %v", s.ItemHeight)
	}
	if _, err := inviewport.ParseOptions(s.Options); err != nil {
		return err
	}
	return nil
}

// simulate mounts the list on a headless platform and scrolls it through
// every offset, recording the items activated at each one.
func simulate(s scenario) (*replay, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	p := headless.New(dom.Rect{Width: layoutWidth, Height: s.Viewport})
	list := appcomponents.NewNumberList(p, s.Options)
	list.Count = s.Count

	r := memrender.New(list)
	r.RenderRoot()
	for _, id := range list.Numbers {
		el := r.Element(appcomponents.ItemKey(id))
		if el == nil {
			return nil, fmt.Errorf("item %d was not rendered", id)
		}
		p.Place(el, dom.Rect{Y: float64(id) * s.ItemHeight, Width: layoutWidth, Height: s.ItemHeight})
	}

	var failures []error
	for id, err := range list.Errors() {
		failures = append(failures, fmt.Errorf("item %d: %w", id, err))
	}
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	out := &replay{List: list, Renderer: r, Platform: p}
	for _, y := range s.Scroll {
		before := len(list.Activations())
		p.ScrollTo(y)
		after := list.Activations()
		out.Steps = append(out.Steps, step{
			ScrollY: y,
			Entered: after[before:],
			Active:  len(after),
		})
	}
	return out, nil
}

// parseScroll parses a comma separated list of offsets such as "0,300,600".
func parseScroll(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("scroll: at least one offset is required")
	}
	fields := strings.Split(text, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		y, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("scroll: invalid offset %q", strings.TrimSpace(f))
		}
		if math.IsNaN(y) || math.IsInf(y, 0) || y < 0 {
			return nil, fmt.Errorf("scroll: offset %q must be a non-negative number", strings.TrimSpace(f))
		}
		out = append(out, y)
	}
	return out, nil
}

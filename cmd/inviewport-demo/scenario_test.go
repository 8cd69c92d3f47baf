//go:build !wasm
// +build !wasm

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-inviewport/inviewport"
)

func TestSimulate(t *testing.T) {
	tests := []struct {
		name        string
		scenario    scenario
		wantEntered [][]int
		wantActive  []int
	}{
		{
			name:        "defaults include the edge-adjacent item",
			scenario:    scenario{Count: 25, Viewport: 200, ItemHeight: 40, Scroll: []float64{0}},
			wantEntered: [][]int{{0, 1, 2, 3, 4, 5}},
			wantActive:  []int{6},
		},
		{
			name:        "scrolling down activates new items only",
			scenario:    scenario{Count: 25, Viewport: 200, ItemHeight: 40, Scroll: []float64{0, 300, 0}},
			wantEntered: [][]int{{0, 1, 2, 3, 4, 5}, {7, 8, 9, 10, 11, 12}, {}},
			wantActive:  []int{6, 12, 12},
		},
		{
			name:        "half threshold skips the touching item",
			scenario:    scenario{Count: 25, Options: `{"threshold":0.5}`, Viewport: 200, ItemHeight: 40, Scroll: []float64{0}},
			wantEntered: [][]int{{0, 1, 2, 3, 4}},
			wantActive:  []int{5},
		},
		{
			name:        "negative root margin shrinks the viewport",
			scenario:    scenario{Count: 25, Options: `{"rootMargin":"0px 0px -100px 0px"}`, Viewport: 200, ItemHeight: 40, Scroll: []float64{0}},
			wantEntered: [][]int{{0, 1, 2}},
			wantActive:  []int{3},
		},
		{
			name:        "empty list",
			scenario:    scenario{Count: 0, Viewport: 200, ItemHeight: 40, Scroll: []float64{0, 100}},
			wantEntered: [][]int{{}, {}},
			wantActive:  []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := simulate(tt.scenario)
			require.NoError(t, err)
			require.Len(t, res.Steps, len(tt.wantEntered))

			for i, st := range res.Steps {
				assert.Equal(t, tt.scenario.Scroll[i], st.ScrollY)
				if len(tt.wantEntered[i]) == 0 {
					assert.Empty(t, st.Entered, "step %d", i)
				} else {
					assert.Equal(t, tt.wantEntered[i], st.Entered, "step %d", i)
				}
				assert.Equal(t, tt.wantActive[i], st.Active, "step %d", i)
			}
			assert.Equal(t, tt.wantActive[len(tt.wantActive)-1], len(res.List.Activations()))
		})
	}
}

func TestSimulate_ReleasesActivatedDetectors(t *testing.T) {
	res, err := simulate(scenario{Count: 10, Viewport: 200, ItemHeight: 40, Scroll: []float64{0}})
	require.NoError(t, err)

	assert.Equal(t, 10-6, res.Platform.Live())
}

func TestSimulate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		scenario scenario
		wantCfg  bool
	}{
		{name: "negative count", scenario: scenario{Count: -1, Viewport: 200, ItemHeight: 40}},
		{name: "zero viewport", scenario: scenario{Count: 1, Viewport: 0, ItemHeight: 40}},
		{name: "zero item height", scenario: scenario{Count: 1, Viewport: 200, ItemHeight: 0}},
		{name: "malformed options", scenario: scenario{Count: 1, Options: "{", Viewport: 200, ItemHeight: 40}, wantCfg: true},
		{name: "threshold out of range", scenario: scenario{Count: 1, Options: `{"threshold":2}`, Viewport: 200, ItemHeight: 40}, wantCfg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := simulate(tt.scenario)
			require.Error(t, err)
			assert.Equal(t, tt.wantCfg, errors.Is(err, inviewport.ErrConfiguration))
		})
	}
}

func TestParseScroll(t *testing.T) {
	tests := []struct {
		input   string
		want    []float64
		wantErr bool
	}{
		{input: "0", want: []float64{0}},
		{input: "0,300, 600", want: []float64{0, 300, 600}},
		{input: "12.5", want: []float64{12.5}},
		{input: "", wantErr: true},
		{input: "0,,1", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseScroll(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

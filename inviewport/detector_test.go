//go:build !wasm
// +build !wasm

package inviewport_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/dom/memdom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
	"github.com/vcrobe/nojs-inviewport/inviewport/headless"
)

var viewport = dom.Rect{Width: 100, Height: 100}

// newCountingDetector returns a detector and a pointer to its emission count.
func newCountingDetector(p inviewport.Platform) (*inviewport.Detector, *int, *[]inviewport.Event) {
	d := inviewport.New(p)
	count := 0
	var events []inviewport.Event
	d.OnEnteredViewport(func(e inviewport.Event) {
		count++
		events = append(events, e)
	})
	return d, &count, &events
}

func TestDetector_FiresOnceOnEntry(t *testing.T) {
	// Arrange: an element below the fold
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 150, Width: 100, Height: 40})

	d, count, events := newCountingDetector(p)
	require.NoError(t, d.Attach(el, ""))
	assert.True(t, d.Attached())
	assert.Equal(t, 0, *count, "attach must not deliver synchronously")

	// Act: initial record reports not intersecting
	p.Flush()
	assert.Equal(t, 0, *count)

	// Act: scroll it into view
	p.ScrollTo(100)

	// Assert
	require.Equal(t, 1, *count)
	assert.True(t, (*events)[0].Target.Equal(el))
	assert.True(t, d.Fired())
	assert.False(t, d.Attached())
	assert.Equal(t, 0, p.Live(), "the observation must be released after firing")

	// Act: visibility cycles after the first entry
	p.ScrollTo(0)
	p.ScrollTo(100)
	p.ScrollTo(0)
	p.ScrollTo(120)

	assert.Equal(t, 1, *count)
}

func TestDetector_FiresOnInitialRecordWhenAlreadyVisible(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 10, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, `{"threshold": 0}`))

	p.Flush()

	assert.Equal(t, 1, *count)
}

func TestDetector_IgnoresBurstOfQualifyingRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := inviewport.NewMockPlatform(ctrl)
	observer := inviewport.NewMockObserver(ctrl)
	el := memdom.New("li")

	var deliver inviewport.Callback
	platform.EXPECT().
		NewObserver(gomock.Any(), gomock.Eq(inviewport.DefaultOptions())).
		DoAndReturn(func(cb inviewport.Callback, _ inviewport.Options) (inviewport.Observer, error) {
			deliver = cb
			return observer, nil
		})
	gomock.InOrder(
		observer.EXPECT().Observe(el),
		observer.EXPECT().Unobserve(el).Times(1),
		observer.EXPECT().Disconnect().Times(1),
	)

	d, count, _ := newCountingDetector(platform)
	require.NoError(t, d.Attach(el, ""))

	hit := inviewport.Entry{Target: el, IsIntersecting: true, IntersectionRatio: 1}
	deliver([]inviewport.Entry{hit, hit, hit})
	deliver([]inviewport.Entry{hit})

	assert.Equal(t, 1, *count)
}

func TestDetector_IsolatedFromOtherTargets(t *testing.T) {
	p := headless.New(viewport)
	a, b := memdom.New("a"), memdom.New("b")
	p.Place(a, dom.Rect{Y: 500, Width: 100, Height: 40})
	p.Place(b, dom.Rect{Y: 500, Width: 100, Height: 40})

	da, countA, _ := newCountingDetector(p)
	db, countB, _ := newCountingDetector(p)
	require.NoError(t, da.Attach(a, ""))
	require.NoError(t, db.Attach(b, ""))
	p.Flush()

	// A record about b handed to a's observer must not fire a.
	obsA := p.Observers()[0]
	obsA.Deliver(inviewport.Entry{Target: b, IsIntersecting: true, IntersectionRatio: 1})
	assert.Equal(t, 0, *countA)
	assert.Equal(t, 0, *countB)

	// Only b scrolls into view.
	p.Place(b, dom.Rect{Y: 10, Width: 100, Height: 40})
	p.Flush()

	assert.Equal(t, 0, *countA)
	assert.Equal(t, 1, *countB)
	assert.True(t, da.Attached())
	assert.False(t, db.Attached())
}

func TestDetector_IgnoresNonIntersectingRecords(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, ""))

	p.Observers()[0].Deliver(
		inviewport.Entry{Target: el, IsIntersecting: false},
		inviewport.Entry{Target: nil, IsIntersecting: true},
	)

	assert.Equal(t, 0, *count)
	assert.True(t, d.Attached())
}

func TestDetector_DetachBeforeEntrySuppresses(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 150, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, ""))

	d.Detach()
	p.ScrollTo(150)

	assert.Equal(t, 0, *count)
	assert.False(t, d.Fired())
	assert.Equal(t, 0, p.Live())
}

func TestDetector_StaleCallbackAfterDetach(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := inviewport.NewMockPlatform(ctrl)
	observer := inviewport.NewMockObserver(ctrl)
	el := memdom.New("li")

	var deliver inviewport.Callback
	platform.EXPECT().NewObserver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(cb inviewport.Callback, _ inviewport.Options) (inviewport.Observer, error) {
			deliver = cb
			return observer, nil
		})
	observer.EXPECT().Observe(el)
	observer.EXPECT().Unobserve(el)
	observer.EXPECT().Disconnect()

	d, count, _ := newCountingDetector(platform)
	require.NoError(t, d.Attach(el, ""))
	d.Detach()

	// A batch the platform had already queued before disconnect completed.
	deliver([]inviewport.Entry{{Target: el, IsIntersecting: true}})

	assert.Equal(t, 0, *count)
}

func TestDetector_DetachIsIdempotent(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 10, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)

	assert.NotPanics(t, d.Detach, "detach before attach")

	require.NoError(t, d.Attach(el, ""))
	p.Flush()
	require.Equal(t, 1, *count)

	assert.NotPanics(t, func() {
		d.Detach()
		d.Detach()
	})
	assert.Equal(t, 0, p.Live())
}

func TestDetector_MalformedOptionsRegisterNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := inviewport.NewMockPlatform(ctrl) // no expectations: any call fails the test
	el := memdom.New("li")

	d := inviewport.New(platform)
	err := d.Attach(el, "not-json")

	require.Error(t, err)
	var cfgErr *inviewport.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, inviewport.ErrConfiguration)
	assert.False(t, d.Attached())
}

func TestDetector_MalformedOptionsHeadless(t *testing.T) {
	p := headless.New(viewport)
	d := inviewport.New(p)

	err := d.Attach(memdom.New("li"), `{"threshold": 2}`)

	assert.ErrorIs(t, err, inviewport.ErrConfiguration)
	assert.Equal(t, 0, p.Live())
}

func TestDetector_NilTarget(t *testing.T) {
	p := headless.New(viewport)
	d := inviewport.New(p)

	err := d.Attach(nil, "")

	var cfgErr *inviewport.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "target", cfgErr.Field)
	assert.Equal(t, 0, p.Live())
}

func TestDetector_AlreadyAttached(t *testing.T) {
	p := headless.New(viewport)
	d := inviewport.New(p)
	el := memdom.New("li")

	require.NoError(t, d.Attach(el, ""))
	err := d.Attach(el, "")

	assert.ErrorIs(t, err, inviewport.ErrAlreadyAttached)
	assert.Equal(t, 1, p.Live())
	assert.Equal(t, 1, p.Watching(el))
}

func TestDetector_NilPlatform(t *testing.T) {
	d := inviewport.New(nil)

	err := d.Attach(memdom.New("li"), "")

	assert.ErrorIs(t, err, inviewport.ErrNoPlatform)
	assert.False(t, d.Attached())

	err = d.Attach(memdom.New("li"), "not-json")
	assert.ErrorIs(t, err, inviewport.ErrConfiguration, "options are validated first")
}

func TestDetector_UnavailablePlatform(t *testing.T) {
	p := headless.New(viewport)
	p.Unavailable = errors.New("no intersection observer")
	d := inviewport.New(p)

	err := d.Attach(memdom.New("li"), "")

	assert.ErrorIs(t, err, p.Unavailable)
	assert.NotErrorIs(t, err, inviewport.ErrConfiguration)
	assert.False(t, d.Attached())
}

func TestDetector_UnknownRoot(t *testing.T) {
	p := headless.New(viewport)
	d := inviewport.New(p)

	err := d.Attach(memdom.New("li"), `{"root": "#missing"}`)

	assert.ErrorIs(t, err, inviewport.ErrConfiguration)
	assert.Equal(t, 0, p.Live())
}

func TestDetector_ReattachFiresAgain(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 10, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, ""))
	p.Flush()
	require.Equal(t, 1, *count)

	require.NoError(t, d.Attach(el, ""))
	assert.False(t, d.Fired())
	p.Flush()
	p.Flush()

	assert.Equal(t, 2, *count)
}

func TestDetector_Threshold(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	// 40px tall element whose top sits at 90: 10px (25%) visible.
	p.Place(el, dom.Rect{Y: 90, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, `{"threshold": 0.5}`))

	p.Flush()
	assert.Equal(t, 0, *count, "25% visible is below the 0.5 threshold")

	p.ScrollTo(20) // 30px (75%) visible
	assert.Equal(t, 1, *count)
}

func TestDetector_RootMargin(t *testing.T) {
	p := headless.New(viewport)
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 60, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, `{"rootMargin": "0px 0px -50px 0px"}`))

	p.Flush()
	assert.Equal(t, 0, *count, "the bottom 50px of the viewport are excluded")

	p.ScrollTo(20)
	assert.Equal(t, 1, *count)
}

func TestDetector_ScrollRoot(t *testing.T) {
	p := headless.New(viewport)
	p.AddRoot("#scroller", dom.Rect{Y: 200, Width: 100, Height: 100})
	el := memdom.New("li")
	p.Place(el, dom.Rect{Y: 20, Width: 100, Height: 40})

	d, count, _ := newCountingDetector(p)
	require.NoError(t, d.Attach(el, `{"root": "#scroller"}`))

	p.Flush()
	assert.Equal(t, 0, *count, "visible in the viewport but not in the scroller")

	p.ScrollTo(-200)
	assert.Equal(t, 1, *count)
}

func TestDetector_IDsAreUnique(t *testing.T) {
	p := headless.New(viewport)
	assert.NotEqual(t, inviewport.New(p).ID(), inviewport.New(p).ID())
	assert.NotEmpty(t, inviewport.New(p).ID())
}

package render

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/theme"
	"github.com/rook-computer/epdui/internal/ui"
)

func newTestManager(threshold int) (*Manager, *display.ImageDriver) {
	driver := display.NewImageDriver(200, 100)
	ctrl := display.NewController(driver, theme.NewMemStore(theme.Light), display.Options{}, nil)
	m := NewManager(ctrl, Policy{FullRefreshThreshold: threshold, Yield: time.Millisecond}, nil)
	return m, driver
}

type fakeOverlay struct {
	ui.InteractableBase
	active  bool
	rect    image.Rectangle
	actions []string
}

func newFakeOverlay(active bool) *fakeOverlay {
	return &fakeOverlay{
		InteractableBase: ui.NewInteractableBase("overlay"),
		active:           active,
		rect:             image.Rect(8, 40, 192, 92),
	}
}

func (f *fakeOverlay) Active() bool                       { return f.active }
func (f *fakeOverlay) PanelRect(w, h int) image.Rectangle { return f.rect }
func (f *fakeOverlay) OnActionRight()                     { f.actions = append(f.actions, "right") }
func (f *fakeOverlay) OnAction()                          { f.actions = append(f.actions, "confirm") }

func TestRequestsCoalesce(t *testing.T) {
	m, driver := newTestManager(100)

	// Queue depth is one; the second request is dropped, not queued.
	m.RequestFullRender()
	m.RequestFullRender()

	require.True(t, m.RenderOnce())
	require.False(t, m.RenderOnce())
	total, _ := driver.Flushes()
	require.Equal(t, 1, total)
}

func TestFullRefreshThreshold(t *testing.T) {
	m, driver := newTestManager(3)

	for i := 0; i < 4; i++ {
		m.RequestFullRender()
		require.True(t, m.RenderOnce())
	}

	// Renders one and two are fast partials over the whole screen, the
	// third hits the threshold and becomes a true full refresh, the fourth
	// starts the cycle over.
	total, full := driver.Flushes()
	require.Equal(t, 4, total)
	require.Equal(t, 1, full)
}

func TestThresholdCountsOnlyFullRequests(t *testing.T) {
	m, _ := newTestManager(2)
	overlay := newFakeOverlay(true)
	m.SetOverlay(overlay)

	m.RequestFullRender()
	require.True(t, m.RenderOnce())

	// Menu-only renders do not advance the ghosting counter.
	for i := 0; i < 3; i++ {
		m.RequestMenuRender()
		require.True(t, m.RenderOnce())
	}
	require.Equal(t, 1, m.executedFullRenders)

	m.RequestFullRender()
	require.True(t, m.RenderOnce())
	require.Equal(t, 0, m.executedFullRenders)
}

func TestMenuRenderUsesPanelWindow(t *testing.T) {
	m, driver := newTestManager(100)
	overlay := newFakeOverlay(true)
	m.SetOverlay(overlay)

	var window image.Rectangle
	driver.FrameFunc = func(frame *image.RGBA, w image.Rectangle, mode display.Refresh) {
		window = w
	}

	m.RequestMenuRender()
	require.True(t, m.RenderOnce())
	require.Equal(t, overlay.rect, window)
}

func TestMenuRenderSkippedWhenOverlayInactive(t *testing.T) {
	m, driver := newTestManager(100)
	m.SetOverlay(newFakeOverlay(false))

	m.RequestMenuRender()
	require.True(t, m.RenderOnce())

	total, _ := driver.Flushes()
	require.Equal(t, 0, total)
}

func TestInteractableRenderUsesLastWindow(t *testing.T) {
	m, driver := newTestManager(100)
	page := ui.NewPage("p")
	item := ui.NewInteractableBase("w")
	require.NoError(t, page.AddInteractable(&item, true))
	m.PushPage(page)
	require.True(t, m.RenderOnce())
	item.SetLastContext(ui.RenderContext{X: 16, Y: 24, Width: 64, Height: 32})

	var window image.Rectangle
	driver.FrameFunc = func(frame *image.RGBA, w image.Rectangle, mode display.Refresh) {
		window = w
	}

	m.RequestInteractableRender()
	require.True(t, m.RenderOnce())
	require.Equal(t, image.Rect(16, 24, 80, 56), window)
}

func TestInteractableRenderSkippedWithoutFocus(t *testing.T) {
	m, driver := newTestManager(100)
	page := ui.NewPage("p")
	item := ui.NewInteractableBase("w")
	require.NoError(t, page.AddInteractable(&item, false))
	m.PushPage(page)
	require.True(t, m.RenderOnce())
	before, _ := driver.Flushes()

	m.RequestInteractableRender()
	require.True(t, m.RenderOnce())

	after, _ := driver.Flushes()
	require.Equal(t, before, after)
}

func TestCurrentFocusPriority(t *testing.T) {
	m, _ := newTestManager(100)
	require.Equal(t, FocusNone, m.CurrentFocus())

	page := ui.NewPage("p")
	m.PushPage(page)
	require.Equal(t, FocusPage, m.CurrentFocus())

	// A selected but idle widget still leaves navigation with the page.
	item := ui.NewInteractableBase("w")
	require.NoError(t, page.AddInteractable(&item, true))
	page.ResetFocus()
	require.Equal(t, FocusPage, m.CurrentFocus())

	item.Activate()
	require.Equal(t, FocusInteractable, m.CurrentFocus())

	overlay := newFakeOverlay(true)
	m.SetOverlay(overlay)
	require.Equal(t, FocusMenu, m.CurrentFocus())
}

func TestFocusMoveSchedulesFullRender(t *testing.T) {
	m, _ := newTestManager(100)
	page := ui.NewPage("p")
	first := ui.NewInteractableBase("first")
	second := ui.NewInteractableBase("second")
	require.NoError(t, page.AddInteractable(&first, true))
	require.NoError(t, page.AddInteractable(&second, true))
	m.PushPage(page)
	for m.RenderOnce() {
	}

	// Moving the selection leaves a stale decoration on the previous
	// widget, so the contextual redraw must cover the whole page, not the
	// new widget's window.
	m.OnActionDown()

	require.Equal(t, ui.Interactable(&second), page.Current())
	req := <-m.requests
	require.Equal(t, RequestFull, req.Type)
}

func TestDispatchGoesToOverlayFirst(t *testing.T) {
	m, _ := newTestManager(100)
	overlay := newFakeOverlay(true)
	m.SetOverlay(overlay)
	page := ui.NewPage("p")
	m.PushPage(page)
	for m.RenderOnce() {
	}

	m.OnActionRight()
	m.OnAction()

	require.Equal(t, []string{"right", "confirm"}, overlay.actions)

	// The contextual redraw for a menu focus is a menu request.
	req := <-m.requests
	require.Equal(t, RequestMenuOnly, req.Type)
}

func TestActiveInteractableReceivesDirectionalActions(t *testing.T) {
	m, _ := newTestManager(100)
	page := ui.NewPage("p")
	item := &directionalItem{InteractableBase: ui.NewInteractableBase("w")}
	require.NoError(t, page.AddInteractable(item, true))
	m.PushPage(page)
	for m.RenderOnce() {
	}

	// Not active: the page handles direction (moves focus, here a no-op).
	m.OnActionUp()
	require.Zero(t, item.ups)

	item.Activate()
	m.OnActionUp()
	require.Equal(t, 1, item.ups)
}

type directionalItem struct {
	ui.InteractableBase
	ups int
}

func (d *directionalItem) OnActionUp() { d.ups++ }

func TestPushPageFiresOpenedAndRequestsFull(t *testing.T) {
	m, _ := newTestManager(100)
	page := ui.NewPage("p")
	opened := 0
	page.SetOnOpened(func() { opened++ })

	m.PushPage(page)

	require.Equal(t, 1, opened)
	require.Equal(t, ui.Pager(page), m.CurrentPage())
	req := <-m.requests
	require.Equal(t, RequestFull, req.Type)
}

func TestPopPageRevealsPrevious(t *testing.T) {
	m, _ := newTestManager(100)
	first := ui.NewPage("first")
	second := ui.NewPage("second")
	m.PushPage(first)
	m.PushPage(second)
	require.Equal(t, 2, m.PageDepth())

	m.PopPage()

	require.Equal(t, ui.Pager(first), m.CurrentPage())

	// Popping the last page leaves an empty stack; another pop is a no-op.
	m.PopPage()
	m.PopPage()
	require.Nil(t, m.CurrentPage())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	m, _ := newTestManager(100)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	m.RequestFullRender()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not stop")
	}
}

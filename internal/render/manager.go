// Package render schedules display refreshes. Requests from any goroutine
// are coalesced through a depth-one queue and executed one at a time by a
// single consumer, which picks the damage window and refresh mode per
// request.
package render

import (
	"context"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
)

// RequestType selects how much of the screen a refresh covers.
type RequestType int

const (
	// RequestFull redraws the whole page and overlay.
	RequestFull RequestType = iota
	// RequestMenuOnly redraws only the overlay panel region.
	RequestMenuOnly
	// RequestInteractableOnly redraws only the focused interactable's last
	// known footprint.
	RequestInteractableOnly
)

func (t RequestType) String() string {
	switch t {
	case RequestFull:
		return "full"
	case RequestMenuOnly:
		return "menu"
	case RequestInteractableOnly:
		return "interactable"
	}
	return "unknown"
}

// Request is one refresh order for the consumer loop.
type Request struct {
	Type RequestType
}

// Focus names who currently receives navigation input.
type Focus int

const (
	FocusNone Focus = iota
	FocusPage
	FocusInteractable
	FocusMenu
)

// Overlay is drawn above page content and captures navigation while
// active. Satisfied by the menu system.
type Overlay interface {
	ui.Interactable

	Active() bool
	PanelRect(width, height int) image.Rectangle
}

// Policy tunes the consumer loop.
type Policy struct {
	// FullRefreshThreshold is the number of full-type renders after which
	// the next one becomes a true full refresh to clear ghosting.
	FullRefreshThreshold int
	// Yield is the pause between render cycles.
	Yield time.Duration
}

func DefaultPolicy() Policy {
	return Policy{FullRefreshThreshold: 20, Yield: 10 * time.Millisecond}
}

// Manager owns the page stack, the overlay hookup and the request queue.
// Producers call the Request methods; Run consumes.
type Manager struct {
	ctrl    *display.Controller
	overlay Overlay
	policy  Policy
	log     *zap.Logger

	// pageMu guards pages: producers push from input handlers while the
	// consumer loop reads the top.
	pageMu sync.Mutex
	pages  []ui.Pager

	// Depth-one queue: a send that finds it occupied is dropped, the
	// pending request already covers the newer state.
	requests chan Request

	executedFullRenders int
}

func NewManager(ctrl *display.Controller, policy Policy, log *zap.Logger) *Manager {
	if policy.FullRefreshThreshold <= 0 {
		policy.FullRefreshThreshold = DefaultPolicy().FullRefreshThreshold
	}
	if policy.Yield <= 0 {
		policy.Yield = DefaultPolicy().Yield
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		ctrl:     ctrl,
		policy:   policy,
		log:      log,
		requests: make(chan Request, 1),
	}
}

// SetOverlay attaches the overlay drawn above page content.
func (m *Manager) SetOverlay(overlay Overlay) { m.overlay = overlay }

func (m *Manager) Controller() *display.Controller { return m.ctrl }

// PushPage makes page the current page, resets its focus, fires its opened
// hook and schedules a full render.
func (m *Manager) PushPage(page ui.Pager) {
	m.pageMu.Lock()
	m.pages = append(m.pages, page)
	m.pageMu.Unlock()
	page.ResetFocus()
	page.Opened()
	m.log.Info("page pushed", zap.String("title", page.Title()))
	m.RequestFullRender()
}

// PopPage removes the current page and redraws the one underneath.
func (m *Manager) PopPage() {
	m.pageMu.Lock()
	if len(m.pages) == 0 {
		m.pageMu.Unlock()
		return
	}
	m.pages = m.pages[:len(m.pages)-1]
	var revealed ui.Pager
	if len(m.pages) > 0 {
		revealed = m.pages[len(m.pages)-1]
	}
	m.pageMu.Unlock()
	if revealed != nil {
		revealed.ResetFocus()
	}
	m.RequestFullRender()
}

// CurrentPage returns the top of the page stack, nil when empty.
func (m *Manager) CurrentPage() ui.Pager {
	m.pageMu.Lock()
	defer m.pageMu.Unlock()
	if len(m.pages) == 0 {
		return nil
	}
	return m.pages[len(m.pages)-1]
}

// PageDepth returns the number of stacked pages.
func (m *Manager) PageDepth() int {
	m.pageMu.Lock()
	defer m.pageMu.Unlock()
	return len(m.pages)
}

func (m *Manager) request(req Request) {
	select {
	case m.requests <- req:
	default:
		m.log.Debug("render request dropped", zap.String("type", req.Type.String()))
	}
}

func (m *Manager) RequestFullRender()         { m.request(Request{Type: RequestFull}) }
func (m *Manager) RequestMenuRender()         { m.request(Request{Type: RequestMenuOnly}) }
func (m *Manager) RequestInteractableRender() { m.request(Request{Type: RequestInteractableOnly}) }

// RequestContextualRender picks the narrowest request covering the current
// focus owner.
func (m *Manager) RequestContextualRender() {
	switch m.CurrentFocus() {
	case FocusMenu:
		m.RequestMenuRender()
	case FocusInteractable:
		m.RequestInteractableRender()
	default:
		m.RequestFullRender()
	}
}

// CurrentFocus reports who owns navigation: the overlay while active, then
// the page's engaged interactable, then the page itself. A widget that is
// merely selected counts as page focus: moving the selection repaints two
// widgets, so the contextual redraw must cover the whole page.
func (m *Manager) CurrentFocus() Focus {
	if m.overlay != nil && m.overlay.Active() {
		return FocusMenu
	}
	page := m.CurrentPage()
	if page == nil {
		return FocusNone
	}
	if current := page.Current(); current != nil && current.IsActive() {
		return FocusInteractable
	}
	return FocusPage
}

// CurrentNavigatable resolves the receiver for navigation actions. While an
// interactable is active it handles directional input itself, otherwise
// the page moves its focus.
func (m *Manager) CurrentNavigatable() ui.Actions {
	if m.overlay != nil && m.overlay.Active() {
		return m.overlay
	}
	page := m.CurrentPage()
	if page == nil {
		return nil
	}
	if current := page.Current(); current != nil && current.IsActive() {
		return current
	}
	return page
}

func (m *Manager) dispatch(f func(ui.Actions)) {
	target := m.CurrentNavigatable()
	if target == nil {
		return
	}
	f(target)
	m.RequestContextualRender()
}

// Navigation entry points. Each forwards to the focus owner and schedules
// the matching redraw.
func (m *Manager) OnActionUp()    { m.dispatch(func(t ui.Actions) { t.OnActionUp() }) }
func (m *Manager) OnActionDown()  { m.dispatch(func(t ui.Actions) { t.OnActionDown() }) }
func (m *Manager) OnActionLeft()  { m.dispatch(func(t ui.Actions) { t.OnActionLeft() }) }
func (m *Manager) OnActionRight() { m.dispatch(func(t ui.Actions) { t.OnActionRight() }) }
func (m *Manager) OnAction()      { m.dispatch(func(t ui.Actions) { t.OnAction() }) }

// Run consumes requests until ctx is cancelled. One refresh per request,
// with a short yield between cycles.
func (m *Manager) Run(ctx context.Context) error {
	m.log.Info("render loop started",
		zap.Int("full_refresh_threshold", m.policy.FullRefreshThreshold),
		zap.Duration("yield", m.policy.Yield))
	for {
		select {
		case <-ctx.Done():
			m.log.Info("render loop stopped")
			return ctx.Err()
		case req := <-m.requests:
			m.render(req)
		}
		select {
		case <-ctx.Done():
			m.log.Info("render loop stopped")
			return ctx.Err()
		case <-time.After(m.policy.Yield):
		}
	}
}

// RenderOnce processes a single pending request without blocking. It
// reports whether a request was there to process.
func (m *Manager) RenderOnce() bool {
	select {
	case req := <-m.requests:
		m.render(req)
		return true
	default:
		return false
	}
}

func (m *Manager) render(req Request) {
	switch req.Type {
	case RequestMenuOnly:
		if m.overlay == nil || !m.overlay.Active() {
			m.log.Debug("menu render skipped, overlay inactive")
			return
		}
		rect := m.overlay.PanelRect(m.ctrl.Width(), m.ctrl.Height())
		m.ctrl.SetPartialWindow(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy())
	case RequestInteractableOnly:
		page := m.CurrentPage()
		if page == nil {
			return
		}
		current := page.Current()
		if current == nil {
			m.log.Debug("interactable render skipped, nothing focused")
			return
		}
		last := current.LastContext()
		if last.Empty() {
			m.ctrl.SetPartialWindow(0, 0, m.ctrl.Width(), m.ctrl.Height())
		} else {
			m.ctrl.SetPartialWindow(last.X, last.Y, last.Width, last.Height)
		}
	default:
		// Full renders alternate between fast partials covering the whole
		// screen and, every FullRefreshThreshold renders, a true full
		// refresh that clears accumulated ghosting.
		m.executedFullRenders++
		if m.executedFullRenders >= m.policy.FullRefreshThreshold {
			m.ctrl.SetFullWindow()
			m.executedFullRenders = 0
		} else {
			m.ctrl.SetPartialWindow(0, 0, m.ctrl.Width(), m.ctrl.Height())
		}
	}

	if err := m.ctrl.DrawPaged(m.compose); err != nil {
		m.log.Error("render failed", zap.String("type", req.Type.String()), zap.Error(err))
	}
}

// compose draws one frame into the damage window: background, page content
// and the overlay on top. The driver may call this once per display page.
func (m *Manager) compose() {
	m.ctrl.FillScreen(m.ctrl.BackgroundColor())

	if page := m.CurrentPage(); page != nil {
		current := page.Current()
		if !page.RenderUnfocusedContent() && current != nil && current.IsActive() {
			last := current.LastContext()
			ui.ExecuteRender(current, m.ctrl, &last)
		} else {
			ui.ExecuteRender(page, m.ctrl, ui.NewRenderContext(0, 0, m.ctrl.Width(), m.ctrl.Height()))
		}
	}

	if m.overlay != nil && m.overlay.Active() {
		ui.ExecuteRender(m.overlay, m.ctrl, ui.NewRenderContext(0, 0, m.ctrl.Width(), m.ctrl.Height()))
	}
}

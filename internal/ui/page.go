package ui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/display"
)

// Pager is the view the render manager and the menu system have of a page.
// *Page satisfies it; screens embedding *Page override RenderContent with
// their own layout and still satisfy it.
type Pager interface {
	Interactable
	Title() string
	Opened()
	RenderUnfocusedContent() bool
	Current() Interactable
	ResetFocus()
}

// Page hosts an ordered set of interactables and manages single-selection
// focus over them. Focus navigation is non-wrapping and skips disabled
// entries.
type Page struct {
	InteractableBase

	title string
	items []Interactable
	index map[string]int

	// currentIndex is -1 when nothing is focused. savedIndex remembers a
	// prior focus while it is redirected into a transient overlay.
	currentIndex int
	savedIndex   int

	renderUnfocused bool
	onOpened        func()

	log *zap.Logger
}

func NewPage(title string) *Page {
	return &Page{
		InteractableBase: NewInteractableBase(title),
		title:            title,
		index:            make(map[string]int),
		currentIndex:     -1,
		savedIndex:       -1,
		renderUnfocused:  true,
		log:              zap.NewNop(),
	}
}

func (p *Page) SetLogger(log *zap.Logger) {
	if log != nil {
		p.log = log
	}
}

func (p *Page) Title() string { return p.title }

// SetOnOpened registers the hook invoked when the page is pushed onto the
// page stack.
func (p *Page) SetOnOpened(fn func()) { p.onOpened = fn }

func (p *Page) Opened() {
	if p.onOpened != nil {
		p.onOpened()
	}
}

// SetRenderUnfocusedContent controls whether the page redraws all of its
// content when the focused interactable is active. Opting out lets a page
// redraw only the engaged widget, at the cost of stale neighbors when
// footprints overlap.
func (p *Page) SetRenderUnfocusedContent(render bool) { p.renderUnfocused = render }
func (p *Page) RenderUnfocusedContent() bool          { return p.renderUnfocused }

// AddInteractable appends item to the page. A duplicate id is rejected
// without mutating the page. focusable controls the initial
// enabled/disabled state.
func (p *Page) AddInteractable(item Interactable, focusable bool) error {
	id := item.ID()
	if _, exists := p.index[id]; exists {
		p.log.Warn("duplicate interactable id", zap.String("page", p.title), zap.String("id", id))
		return fmt.Errorf("duplicate interactable id %q", id)
	}
	if focusable {
		item.EnableInteraction()
	} else {
		item.DisableInteraction()
	}
	p.index[id] = len(p.items)
	p.items = append(p.items, item)
	return nil
}

// Interactable looks an item up by id, nil when absent.
func (p *Page) Interactable(id string) Interactable {
	if i, ok := p.index[id]; ok {
		return p.items[i]
	}
	return nil
}

// InteractableAt returns the item at index, nil when out of range.
func (p *Page) InteractableAt(index int) Interactable {
	if index < 0 || index >= len(p.items) {
		return nil
	}
	return p.items[index]
}

func (p *Page) Len() int { return len(p.items) }

// Current returns the focused interactable, nil when nothing is focused.
func (p *Page) Current() Interactable {
	if p.currentIndex < 0 || p.currentIndex >= len(p.items) {
		return nil
	}
	return p.items[p.currentIndex]
}

func (p *Page) SelectedIndex() int { return p.currentIndex }

// SetSelectedIndex moves focus to index, clearing selection and active
// state on the previous focus.
func (p *Page) SetSelectedIndex(index int) {
	if current := p.Current(); current != nil {
		current.Deselect()
		current.Deactivate()
	}
	p.currentIndex = index
	if next := p.Current(); next != nil {
		next.Select()
	}
}

// SelectByID redirects focus to the named item, remembering the previous
// focus so ResetFocus can restore it. Used to hand focus to a transient
// overlay drawn over the page.
func (p *Page) SelectByID(id string) bool {
	i, ok := p.index[id]
	if !ok {
		p.log.Warn("select of unknown interactable", zap.String("page", p.title), zap.String("id", id))
		return false
	}
	p.savedIndex = p.currentIndex
	p.SetSelectedIndex(i)
	return true
}

// ActivateByID selects the named item and puts it in the active state.
func (p *Page) ActivateByID(id string) bool {
	if !p.SelectByID(id) {
		return false
	}
	p.Current().Activate()
	return true
}

// ResetFocus drops the current focus and restores the saved one if a
// redirect is pending, otherwise focuses the first enabled item. With no
// enabled items, nothing is focused.
func (p *Page) ResetFocus() {
	if current := p.Current(); current != nil {
		current.Deselect()
		current.Deactivate()
	}
	if p.savedIndex >= 0 {
		saved := p.savedIndex
		p.savedIndex = -1
		p.SetSelectedIndex(saved)
		return
	}
	p.currentIndex = -1
	for i, item := range p.items {
		if item.IsInteractable() {
			p.SetSelectedIndex(i)
			return
		}
	}
}

// OnActionUp moves focus to the previous enabled item. No wraparound:
// running off the start leaves the focus unchanged.
func (p *Page) OnActionUp() {
	if len(p.items) == 0 {
		return
	}
	newIndex := p.currentIndex
	for {
		newIndex--
		if newIndex < 0 {
			return
		}
		if p.items[newIndex].IsInteractable() {
			break
		}
	}
	p.SetSelectedIndex(newIndex)
}

// OnActionDown moves focus to the next enabled item, non-wrapping.
func (p *Page) OnActionDown() {
	if len(p.items) == 0 {
		return
	}
	newIndex := p.currentIndex
	for {
		newIndex++
		if newIndex >= len(p.items) {
			return
		}
		if p.items[newIndex].IsInteractable() {
			break
		}
	}
	p.SetSelectedIndex(newIndex)
}

// OnAction forwards confirm to the focused item.
func (p *Page) OnAction() {
	current := p.Current()
	if current == nil {
		return
	}
	current.OnAction()
}

// RenderContent lays the items out as a vertical flow. Screens with their
// own layout embed *Page and override this, usually delegating the item
// pass back to RenderItems.
func (p *Page) RenderContent(ctrl *display.Controller, ctx *RenderContext) {
	p.RenderItems(ctrl, ctx)
}

// RenderItems renders every item top to bottom, letting each write its
// footprint back and advancing by the occupied height.
func (p *Page) RenderItems(ctrl *display.Controller, ctx *RenderContext) {
	const padding = 16
	x := ctx.X + padding
	y := ctx.Y + padding
	for _, item := range p.items {
		itemCtx := NewRenderContext(x, y, 0, 0)
		ExecuteRender(item, ctrl, itemCtx)
		if itemCtx.Height > 0 {
			y = itemCtx.Y + itemCtx.Height + padding
		} else {
			y += padding
		}
	}
}

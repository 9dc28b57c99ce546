package menu

import (
	"image"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
	"github.com/rook-computer/epdui/internal/widgets"
)

// Overlay panel geometry.
const (
	padding      = 8
	marginBottom = 20
	panelHeight  = 160
	panelX       = 8

	itemSlots = 5
	itemSize  = 64
	iconSize  = 40
)

// Stack is the page stack the menu launches pages onto.
type Stack interface {
	PushPage(page ui.Pager)
}

// Requester schedules refreshes after menu state changes.
type Requester interface {
	RequestMenuRender()
	RequestFullRender()
}

// Widget is a passive status element drawn in the overlay's bottom row.
type Widget struct {
	Icon *widgets.Icon
	Text func() string
}

// System owns the menu tree, the open/closed overlay state and the overlay
// rendering. While open it captures navigation before pages see it.
type System struct {
	ui.InteractableBase

	root    *SubMenu
	current *SubMenu
	active  bool

	widgets []Widget

	stack    Stack
	requests Requester
	log      *zap.Logger
}

func NewSystem(log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	root := NewSubMenu("menu", nil)
	return &System{
		InteractableBase: ui.NewInteractableBase("menu"),
		root:             root,
		current:          root,
		log:              log,
	}
}

// Bind connects the menu to the page stack and the refresh scheduler. Must
// be called before the menu is opened.
func (s *System) Bind(stack Stack, requests Requester) {
	s.stack = stack
	s.requests = requests
}

func (s *System) Active() bool   { return s.active }
func (s *System) Root() *SubMenu { return s.root }

// Current returns the submenu the selection lives in.
func (s *System) Current() *SubMenu { return s.current }

func (s *System) AddToRoot(item Item) { s.root.AddItem(item) }

func (s *System) AddWidget(w Widget) { s.widgets = append(s.widgets, w) }

// Open shows the overlay. The tree position survives a close, so reopening
// returns to where the user left off.
func (s *System) Open() {
	s.active = true
	s.log.Debug("menu opened")
	if s.requests != nil {
		s.requests.RequestMenuRender()
	}
}

// Close hides the overlay. The page underneath must be redrawn whole, so
// this schedules a full render.
func (s *System) Close() {
	s.active = false
	s.log.Debug("menu closed")
	if s.requests != nil {
		s.requests.RequestFullRender()
	}
}

// Toggle opens the overlay when closed and closes it when open.
func (s *System) Toggle() {
	if s.active {
		s.Close()
	} else {
		s.Open()
	}
}

// MoveSelection steps the selection through the current submenu with
// wraparound. up steps backwards.
func (s *System) MoveSelection(up bool) {
	n := s.current.Len()
	if n == 0 {
		return
	}
	index := s.current.SelectedIndex()
	if up {
		index = (index - 1 + n) % n
	} else {
		index = (index + 1) % n
	}
	s.current.SetSelectedIndex(index)
	if s.requests != nil {
		s.requests.RequestMenuRender()
	}
}

// ExecuteSelected acts on the selected item: descends into submenus,
// launches pages and closes the overlay around them, then runs the item's
// own behavior.
func (s *System) ExecuteSelected() {
	item := s.current.SelectedItem()
	if item == nil {
		return
	}
	switch it := item.(type) {
	case *SubMenu:
		s.current = it
	case *PageItem:
		if s.stack != nil {
			s.stack.PushPage(it.Page())
		}
		s.Close()
	}
	item.Execute()
	if s.active && s.requests != nil {
		s.requests.RequestMenuRender()
	}
}

// GoBack ascends one level, or closes the overlay at the root.
func (s *System) GoBack() {
	if parent := s.current.Parent(); parent != nil {
		s.current = parent
		if s.requests != nil {
			s.requests.RequestMenuRender()
		}
		return
	}
	s.Close()
}

// Navigation while the overlay is open: vertical moves the tree levels,
// horizontal moves the selection.
func (s *System) OnActionUp()    { s.GoBack() }
func (s *System) OnActionDown()  { s.ExecuteSelected() }
func (s *System) OnActionLeft()  { s.MoveSelection(true) }
func (s *System) OnActionRight() { s.MoveSelection(false) }
func (s *System) OnAction()      { s.ExecuteSelected() }

// PanelRect is the overlay's footprint on a surface of the given size,
// clipped to the surface.
func (s *System) PanelRect(width, height int) image.Rectangle {
	rect := image.Rect(
		panelX,
		height-padding-panelHeight+marginBottom,
		panelX+width-2*panelX,
		height-padding-panelHeight+marginBottom+panelHeight,
	)
	return rect.Intersect(image.Rect(0, 0, width, height))
}

// RenderContent draws the overlay panel: breadcrumb, selected item title,
// the item tile row and the status widget row.
func (s *System) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	rect := s.PanelRect(ctrl.Width(), ctrl.Height())
	ink := ctrl.PrimaryColor(false)
	bg := ctrl.BackgroundColor()

	ctrl.FillRoundRect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), padding, bg)
	ctrl.DrawMultiRoundRectBorder(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), ink, 2, 1, 2, padding)

	textX := rect.Min.X + padding*2
	textY := rect.Min.Y + padding + ctrl.Ascent(ctrl.BoldFace())
	ctrl.DrawText(s.current.PathTitle(), textX, textY, ink, ctrl.BoldFace())

	if selected := s.current.SelectedItem(); selected != nil {
		title := KindGlyph(selected.Kind()) + " " + selected.Title()
		titleY := textY + ctrl.LineHeight(ctrl.Face())
		ctrl.DrawText(title, textX, titleY, ink, ctrl.Face())
		w, _ := ctrl.TextBounds(title, ctrl.Face())
		ctrl.DrawHLine(textX, titleY+2, w, ink)
	}

	s.renderItems(ctrl, rect)
	s.renderWidgets(ctrl, rect)

	ctx.X = rect.Min.X
	ctx.Y = rect.Min.Y
	ctx.Width = rect.Dx()
	ctx.Height = rect.Dy()
}

// renderItems draws up to itemSlots tiles of the current submenu, keeping
// the selection in view.
func (s *System) renderItems(ctrl *display.Controller, rect image.Rectangle) {
	items := s.current.Items()
	if len(items) == 0 {
		return
	}

	first := 0
	if selected := s.current.SelectedIndex(); selected >= itemSlots {
		first = selected - itemSlots + 1
	}
	last := first + itemSlots
	if last > len(items) {
		last = len(items)
	}

	itemY := rect.Min.Y + padding + 2*ctrl.LineHeight(ctrl.Face()) + padding
	for slot, i := 0, first; i < last; slot, i = slot+1, i+1 {
		item := items[i]
		item.setLayout(itemSize, iconSize)
		itemX := rect.Min.X + padding*2 + slot*itemSize
		ui.ExecuteRender(item, ctrl, ui.NewRenderContext(itemX, itemY, itemSize, itemSize))
	}
}

// renderWidgets draws the status row along the overlay's bottom edge.
func (s *System) renderWidgets(ctrl *display.Controller, rect image.Rectangle) {
	if len(s.widgets) == 0 {
		return
	}
	ink := ctrl.PrimaryColor(false)
	x := rect.Min.X + padding*2
	y := rect.Max.Y - marginBottom - padding
	for _, w := range s.widgets {
		if w.Icon != nil {
			w.Icon.Color = ink
			size := ctrl.LineHeight(ctrl.Face())
			ui.ExecuteRender(w.Icon, ctrl, ui.NewRenderContext(x, y-ctrl.Ascent(ctrl.Face()), size, size))
			x += size + padding/2
		}
		if w.Text != nil {
			text := w.Text()
			ctrl.DrawText(text, x, y, ink, ctrl.Face())
			tw, _ := ctrl.TextBounds(text, ctrl.Face())
			x += tw + padding*2
		}
	}
}

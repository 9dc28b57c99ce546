// Package menu implements the overlay menu: a tree of actions, submenus
// and page launchers with wraparound selection and its own open/closed
// lifecycle, drawn above page content.
package menu

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
	"github.com/rook-computer/epdui/internal/widgets"
)

// Kind tags the menu item variants.
type Kind int

const (
	KindAction Kind = iota
	KindSubMenu
	KindPage
)

// KindGlyph is the single-character marker drawn next to an item title.
func KindGlyph(k Kind) string {
	switch k {
	case KindAction:
		return "$"
	case KindSubMenu:
		return "/"
	case KindPage:
		return ">"
	}
	return "?"
}

// Item is a node of the menu tree. The set of implementations is closed:
// ActionItem, SubMenu and PageItem.
type Item interface {
	ui.Interactable

	Title() string
	// PathTitle is the breadcrumb from the root, "parent/child".
	PathTitle() string
	Kind() Kind
	Icon() *widgets.Icon
	// Execute runs the item's own behavior after selection handling. It is
	// a no-op for submenus and page launchers.
	Execute()
	Parent() *SubMenu

	setParent(parent *SubMenu)
	setLayout(itemSize, iconSize int)
}

// ItemBase carries the shared item state and the shared tile rendering.
type ItemBase struct {
	ui.InteractableBase

	title  string
	kind   Kind
	icon   *widgets.Icon
	parent *SubMenu

	// Tile geometry, set by the system during overlay rendering.
	itemSize int
	iconSize int
}

func newItemBase(title string, kind Kind, icon *widgets.Icon) ItemBase {
	return ItemBase{
		InteractableBase: ui.NewInteractableBase(title),
		title:            title,
		kind:             kind,
		icon:             icon,
	}
}

func (b *ItemBase) Title() string        { return b.title }
func (b *ItemBase) Kind() Kind           { return b.kind }
func (b *ItemBase) Icon() *widgets.Icon  { return b.icon }
func (b *ItemBase) Parent() *SubMenu     { return b.parent }
func (b *ItemBase) setParent(p *SubMenu) { b.parent = p }

func (b *ItemBase) setLayout(itemSize, iconSize int) {
	b.itemSize = itemSize
	b.iconSize = iconSize
}

func (b *ItemBase) PathTitle() string {
	if b.parent == nil {
		return b.title
	}
	return b.parent.PathTitle() + "/" + b.title
}

// RenderContent draws the item tile: optional icon, kind glyph and a border
// whose weight marks the selection.
func (b *ItemBase) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	ink := ctrl.PrimaryColor(false)
	if b.icon != nil {
		iconX := ctx.X - padding/2 + (b.itemSize-b.iconSize)/2
		iconY := ctx.Y - padding/2 + (b.itemSize-b.iconSize)/2
		b.icon.Color = ink
		ui.ExecuteRender(b.icon, ctrl, ui.NewRenderContext(iconX, iconY, b.iconSize, b.iconSize))
	}

	loops := 1
	if b.IsSelected() {
		loops = 3
	}
	ctrl.DrawMultiRoundRectBorder(ctx.X, ctx.Y, b.itemSize-padding, b.itemSize-padding, ink, loops, 1, 2, padding/2)

	ctrl.DrawText(KindGlyph(b.kind), ctx.X+padding/2, ctx.Y+padding*5/2, ink, ctrl.Face())

	ctx.Width = b.itemSize
	ctx.Height = b.itemSize
}

// ActionItem invokes a callback when executed.
type ActionItem struct {
	ItemBase
	action func()
}

func NewActionItem(title string, icon *widgets.Icon, action func()) *ActionItem {
	return &ActionItem{ItemBase: newItemBase(title, KindAction, icon), action: action}
}

func (a *ActionItem) Execute() {
	if a.action != nil {
		a.action()
	}
}

// SubMenu holds an ordered child list with a single selection. The first
// child added becomes selected, and the selection stays valid from then
// on.
type SubMenu struct {
	ItemBase
	items    []Item
	selected int
}

func NewSubMenu(title string, icon *widgets.Icon) *SubMenu {
	return &SubMenu{ItemBase: newItemBase(title, KindSubMenu, icon)}
}

// Execute is a no-op: descending is selection handling, not item behavior.
func (m *SubMenu) Execute() {}

// AddItem appends a child and parents it to this submenu.
func (m *SubMenu) AddItem(item Item) {
	item.setParent(m)
	m.items = append(m.items, item)
	if len(m.items) == 1 {
		m.SetSelectedIndex(0)
	}
}

func (m *SubMenu) Items() []Item { return m.items }
func (m *SubMenu) Len() int      { return len(m.items) }

func (m *SubMenu) SelectedIndex() int { return m.selected }

// SetSelectedIndex moves the visual selection between children. index must
// be valid for the current child list.
func (m *SubMenu) SetSelectedIndex(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	if m.selected >= 0 && m.selected < len(m.items) {
		m.items[m.selected].Deselect()
	}
	m.selected = index
	m.items[m.selected].Select()
}

// SelectedItem returns the child under the selection, nil for an empty
// submenu.
func (m *SubMenu) SelectedItem() Item {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// PageItem launches a page onto the shared page stack.
type PageItem struct {
	ItemBase
	page ui.Pager
}

func NewPageItem(title string, icon *widgets.Icon, page ui.Pager) *PageItem {
	return &PageItem{ItemBase: newItemBase(title, KindPage, icon), page: page}
}

// Execute is a no-op: the launch happens in selection handling so the
// overlay can close around it.
func (p *PageItem) Execute() {}

func (p *PageItem) Page() ui.Pager { return p.page }

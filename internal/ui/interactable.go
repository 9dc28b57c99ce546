package ui

import (
	"image/color"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/theme"
)

// Actions is the navigation hook set invoked by input handling. All hooks
// default to no-ops on InteractableBase; widgets override the ones they
// care about.
type Actions interface {
	OnActionUp()
	OnActionDown()
	OnActionLeft()
	OnActionRight()
	OnAction()
}

// Interactable combines rendering with focus/active/disabled state and the
// navigation hooks. Containers guarantee at most one selected sibling.
type Interactable interface {
	Renderable
	Actions

	ID() string

	Select()
	Deselect()
	IsSelected() bool

	Activate()
	Deactivate()
	IsActive() bool

	EnableInteraction()
	DisableInteraction()
	IsInteractable() bool

	SetInvertColors(invert bool)
	ColorsInverted() bool
}

// InteractableBase is the embeddable state carrier for interactable
// elements. The zero value is not usable; construct with
// NewInteractableBase so the element starts enabled.
type InteractableBase struct {
	Base

	id           string
	selected     bool
	active       bool
	interactable bool
	inverted     bool
}

func NewInteractableBase(id string) InteractableBase {
	return InteractableBase{id: id, interactable: true}
}

func (b *InteractableBase) ID() string { return b.id }

func (b *InteractableBase) Select()          { b.selected = true }
func (b *InteractableBase) Deselect()        { b.selected = false }
func (b *InteractableBase) IsSelected() bool { return b.selected }

// Activate marks the element engaged. Meaningful only while selected;
// containers clear it whenever they clear the selection, so the pair never
// diverges through the navigation paths.
func (b *InteractableBase) Activate()      { b.active = true }
func (b *InteractableBase) Deactivate()    { b.active = false }
func (b *InteractableBase) IsActive() bool { return b.active }

func (b *InteractableBase) EnableInteraction()   { b.interactable = true }
func (b *InteractableBase) DisableInteraction()  { b.interactable = false }
func (b *InteractableBase) IsInteractable() bool { return b.interactable }

func (b *InteractableBase) SetInvertColors(invert bool) { b.inverted = invert }
func (b *InteractableBase) ColorsInverted() bool        { return b.inverted }

// Default navigation hooks.
func (b *InteractableBase) OnActionUp()    {}
func (b *InteractableBase) OnActionDown()  {}
func (b *InteractableBase) OnActionLeft()  {}
func (b *InteractableBase) OnActionRight() {}
func (b *InteractableBase) OnAction()      {}

// ForegroundColor resolves the element's face color under the given
// theme, matching the paper color unless inverted. Under Dark the pair
// is swapped relative to Light, and the per-element inversion flag
// swaps it again.
func (b *InteractableBase) ForegroundColor(t theme.Theme) color.RGBA {
	if t == theme.Dark {
		return b.backgroundLight()
	}
	return b.foregroundLight()
}

// BackgroundColor resolves the contrast color used for outlines, fills
// and text against the face color, see ForegroundColor.
func (b *InteractableBase) BackgroundColor(t theme.Theme) color.RGBA {
	if t == theme.Dark {
		return b.foregroundLight()
	}
	return b.backgroundLight()
}

func (b *InteractableBase) foregroundLight() color.RGBA {
	if b.inverted {
		return display.Black
	}
	return display.White
}

func (b *InteractableBase) backgroundLight() color.RGBA {
	if b.inverted {
		return display.White
	}
	return display.Black
}

// RenderContent paints the state decorations in priority order: disabled,
// then active, then selected. Widgets that draw their own chrome override
// this entirely.
func (b *InteractableBase) RenderContent(ctrl *display.Controller, ctx *RenderContext) {
	if !b.interactable {
		b.DrawOnDisabled(ctrl, ctx, 6)
		return
	}
	if b.active {
		b.DrawOnActive(ctrl, ctx, 6)
		return
	}
	if b.selected {
		b.DrawOnSelection(ctrl, ctx, 6)
	}
}

// DrawOnSelection renders the focus hint: a sparse dot field in a rounded
// outline.
func (b *InteractableBase) DrawOnSelection(ctrl *display.Controller, ctx *RenderContext, radius int) {
	if !b.selected {
		return
	}
	ctrl.DrawPatternInRoundedArea(display.PatternSparseDots, ctx.X, ctx.Y, ctx.Width, ctx.Height, radius)
	ctrl.DrawRoundRect(ctx.X, ctx.Y, ctx.Width, ctx.Height, radius, b.BackgroundColor(ctrl.Theme()))
}

// DrawOnActive renders the engaged hint: nested rounded borders.
func (b *InteractableBase) DrawOnActive(ctrl *display.Controller, ctx *RenderContext, radius int) {
	if !b.active {
		return
	}
	ctrl.DrawMultiRoundRectBorder(ctx.X, ctx.Y, ctx.Width, ctx.Height, b.BackgroundColor(ctrl.Theme()), 3, 1, 2, radius)
}

// DrawOnDisabled renders the disabled hint: diagonal stripes.
func (b *InteractableBase) DrawOnDisabled(ctrl *display.Controller, ctx *RenderContext, radius int) {
	if b.interactable {
		return
	}
	ctrl.DrawPatternInRoundedArea(display.PatternDiagonalStripes, ctx.X, ctx.Y, ctx.Width, ctx.Height, radius)
}

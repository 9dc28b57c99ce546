package widgets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/theme"
	"github.com/rook-computer/epdui/internal/ui"
)

func TestButtonActionFiresOnConfirm(t *testing.T) {
	fired := 0
	b := NewButton("go", "go", func() { fired++ })

	b.OnAction()
	b.OnAction()

	require.Equal(t, 2, fired)
}

func TestToggleConfirmAdvancesWithWraparound(t *testing.T) {
	var changes []int
	tg := NewToggle("t", "t", []ToggleOption{
		{Label: "a", Value: 10},
		{Label: "b", Value: 20},
	}, func(opt ToggleOption) { changes = append(changes, opt.Value) })

	tg.OnAction()
	require.Equal(t, 1, tg.Index())
	require.False(t, tg.IsActive())

	tg.OnAction()
	require.Equal(t, 0, tg.Index())
	require.Equal(t, []int{20, 10}, changes)
}

func TestToggleHorizontalStepsActivate(t *testing.T) {
	tg := NewToggle("t", "t", []ToggleOption{
		{Label: "a"}, {Label: "b"}, {Label: "c"},
	}, nil)

	tg.OnActionRight()
	require.Equal(t, 1, tg.Index())
	require.True(t, tg.IsActive())

	tg.Deactivate()
	tg.OnActionLeft()
	tg.OnActionLeft()
	require.Equal(t, 2, tg.Index())
	require.True(t, tg.IsActive())
}

func TestToggleSetIndexIsSilent(t *testing.T) {
	fired := 0
	tg := NewToggle("t", "t", []ToggleOption{{Label: "a"}, {Label: "b"}}, func(ToggleOption) { fired++ })

	tg.SetIndex(1)
	require.Equal(t, 1, tg.Index())
	require.Zero(t, fired)

	tg.SetIndex(99)
	require.Equal(t, 1, tg.Index())
}

func TestSliderClampsAndSteps(t *testing.T) {
	var seen []int
	s := NewSlider("s", "s", 50, 0, 100, 30, func(v int) { seen = append(seen, v) })

	s.OnActionRight()
	require.Equal(t, 80, s.Value())
	require.True(t, s.IsActive())

	s.OnActionRight()
	require.Equal(t, 100, s.Value())
	s.OnActionRight()
	require.Equal(t, 100, s.Value())

	s.OnActionLeft()
	s.OnActionLeft()
	s.OnActionLeft()
	s.OnActionLeft()
	require.Equal(t, 0, s.Value())
	require.Equal(t, []int{80, 100, 100, 70, 40, 10, 0}, seen)
}

func TestSliderConstructorNormalizes(t *testing.T) {
	s := NewSlider("s", "s", 500, 10, 0, -3, nil)

	// Swapped bounds and a non-positive step are fixed up, the initial
	// value is clamped.
	require.Equal(t, 10, s.Value())
	s.OnActionLeft()
	require.Equal(t, 9, s.Value())
}

func TestDropdownCommitFlow(t *testing.T) {
	var committed []string
	d := NewDropdown("d", "d", []string{"auto", "fast", "clean"}, func(i int, opt string) {
		committed = append(committed, opt)
	})

	// Confirm expands without committing.
	d.OnAction()
	require.True(t, d.IsActive())
	require.Empty(t, committed)

	// The highlight wraps in both directions while expanded.
	d.OnActionUp()
	d.OnAction()
	require.False(t, d.IsActive())
	require.Equal(t, 2, d.Index())
	require.Equal(t, "clean", d.Current())
	require.Equal(t, []string{"clean"}, committed)

	d.OnAction()
	d.OnActionDown()
	d.OnAction()
	require.Equal(t, 0, d.Index())
	require.Equal(t, "auto", d.Current())
}

func TestDropdownIgnoresMovementWhenCollapsed(t *testing.T) {
	d := NewDropdown("d", "d", []string{"a", "b"}, nil)

	d.OnActionDown()
	d.OnActionUp()
	require.Equal(t, 0, d.Index())
	require.False(t, d.IsActive())
}

func TestTextInputEditingCycle(t *testing.T) {
	var changes []string
	in := NewTextInput("n", "name", "ab", func(s string) { changes = append(changes, s) })

	// Confirm enters edit mode with the cursor on the last rune.
	in.OnAction()
	require.True(t, in.IsActive())

	// Up cycles b -> c.
	in.OnActionUp()
	require.Equal(t, "ac", in.Text())

	// Right past the end appends a space.
	in.OnActionRight()
	require.Equal(t, "ac ", in.Text())
	in.OnActionUp()
	require.Equal(t, "aca", in.Text())

	// Down cycles back.
	in.OnActionDown()
	require.Equal(t, "ac ", in.Text())

	// Confirm leaves edit mode and reports the text.
	in.OnAction()
	require.False(t, in.IsActive())
	require.Equal(t, []string{"ac "}, changes)
}

func TestTextInputIgnoresKeysWhenInactive(t *testing.T) {
	in := NewTextInput("n", "name", "ab", nil)

	in.OnActionUp()
	in.OnActionRight()
	require.Equal(t, "ab", in.Text())
}

func TestModalDismissAndReengage(t *testing.T) {
	closed := 0
	m := NewModal("about", 100, 60, nil)
	m.SetOnClose(func() { closed++ })

	m.Activate()
	m.OnAction()
	require.False(t, m.IsActive())
	require.Equal(t, 1, closed)

	m.SetDismissOnAction(false)
	m.OnAction()
	require.True(t, m.IsActive())
	require.Equal(t, 1, closed)
}

func TestModalRendersOnlyWhenVisible(t *testing.T) {
	ctrl := display.NewController(display.NewImageDriver(320, 240), theme.NewMemStore(theme.Light), display.Options{}, nil)
	rendered := 0
	m := NewModal("about", 100, 60, func(c *display.Controller, ctx *ui.RenderContext) { rendered++ })

	ctx := ui.NewRenderContext(0, 0, 320, 240)
	m.RenderContent(ctrl, ctx)
	require.Zero(t, rendered)

	m.Select()
	m.RenderContent(ctrl, ctx)
	require.Equal(t, 1, rendered)
	require.Equal(t, 100, ctx.Width)
	require.Equal(t, 60, ctx.Height)
}

func TestProgressBarClamps(t *testing.T) {
	p := NewProgressBar("load", 1.4, true)
	require.Equal(t, 1.0, p.Progress())

	p.SetProgress(-0.5)
	require.Equal(t, 0.0, p.Progress())

	p.SetProgress(0.25)
	require.Equal(t, 0.25, p.Progress())
}

func TestQRCodeRegeneratesOnPayloadChange(t *testing.T) {
	q := NewQRCode("epdui://pair/a", 120)
	require.NoError(t, q.Err())
	first := q.Image()

	q.SetPayload("epdui://pair/b")
	require.NoError(t, q.Err())
	require.NotSame(t, first, q.Image())
}

func TestIconNaturalAndSquareSizing(t *testing.T) {
	ctrl := display.NewController(display.NewImageDriver(32, 32), theme.NewMemStore(theme.Light), display.Options{}, nil)
	icon := NewIcon([]byte{0xFF}, 8, 1)

	// A zero-size context falls back to the bitmap's natural size.
	ctx := ui.NewRenderContext(0, 0, 0, 0)
	icon.RenderContent(ctrl, ctx)
	require.Equal(t, 8, ctx.Width)
	require.Equal(t, 1, ctx.Height)

	// One given dimension keeps the icon square.
	ctx = ui.NewRenderContext(0, 0, 16, 0)
	icon.RenderContent(ctrl, ctx)
	require.Equal(t, 16, ctx.Width)
	require.Equal(t, 16, ctx.Height)

	ctx = ui.NewRenderContext(0, 0, 16, 4)
	icon.RenderContent(ctrl, ctx)
	require.Equal(t, 16, ctx.Width)
	require.Equal(t, 4, ctx.Height)
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/epdui/internal/ui"
)

type fakeStack struct {
	pushed []ui.Pager
}

func (f *fakeStack) PushPage(page ui.Pager) { f.pushed = append(f.pushed, page) }

type fakeRequests struct {
	menu int
	full int
}

func (f *fakeRequests) RequestMenuRender() { f.menu++ }
func (f *fakeRequests) RequestFullRender() { f.full++ }

func newTestSystem() (*System, *fakeStack, *fakeRequests) {
	s := NewSystem(nil)
	stack := &fakeStack{}
	requests := &fakeRequests{}
	s.Bind(stack, requests)
	return s, stack, requests
}

func TestFirstChildIsSelected(t *testing.T) {
	s, _, _ := newTestSystem()
	a := NewActionItem("a", nil, nil)
	b := NewActionItem("b", nil, nil)
	s.AddToRoot(a)
	s.AddToRoot(b)

	require.Equal(t, 0, s.Root().SelectedIndex())
	require.True(t, a.IsSelected())
	require.False(t, b.IsSelected())
}

func TestMoveSelectionWrapsBothWays(t *testing.T) {
	s, _, _ := newTestSystem()
	for _, id := range []string{"a", "b", "c"} {
		s.AddToRoot(NewActionItem(id, nil, nil))
	}
	s.Open()

	// n forward steps return to the start.
	for i := 0; i < 3; i++ {
		s.MoveSelection(false)
	}
	require.Equal(t, 0, s.Current().SelectedIndex())

	// One step back wraps to the last child and is the inverse of forward.
	s.MoveSelection(true)
	require.Equal(t, 2, s.Current().SelectedIndex())
	s.MoveSelection(false)
	require.Equal(t, 0, s.Current().SelectedIndex())
}

func TestSelectionMovesStateAcrossItems(t *testing.T) {
	s, _, _ := newTestSystem()
	a := NewActionItem("a", nil, nil)
	b := NewActionItem("b", nil, nil)
	s.AddToRoot(a)
	s.AddToRoot(b)

	s.MoveSelection(false)

	require.False(t, a.IsSelected())
	require.True(t, b.IsSelected())
}

func TestExecuteSelectedDescendsIntoSubMenu(t *testing.T) {
	s, _, _ := newTestSystem()
	sub := NewSubMenu("tools", nil)
	sub.AddItem(NewActionItem("inner", nil, nil))
	s.AddToRoot(sub)
	s.Open()

	s.ExecuteSelected()

	require.Equal(t, sub, s.Current())
	require.True(t, s.Active())
	require.Equal(t, "menu/tools", sub.PathTitle())
}

func TestExecuteSelectedRunsAction(t *testing.T) {
	s, _, _ := newTestSystem()
	ran := 0
	s.AddToRoot(NewActionItem("do", nil, func() { ran++ }))
	s.Open()

	s.ExecuteSelected()

	require.Equal(t, 1, ran)
	require.True(t, s.Active())
}

func TestExecuteSelectedLaunchesPageAndCloses(t *testing.T) {
	s, stack, requests := newTestSystem()
	page := ui.NewPage("settings")
	s.AddToRoot(NewPageItem("settings", nil, page))
	s.Open()
	requests.full = 0

	s.ExecuteSelected()

	require.Len(t, stack.pushed, 1)
	require.Equal(t, ui.Pager(page), stack.pushed[0])
	require.False(t, s.Active())
	require.Equal(t, 1, requests.full)
}

func TestGoBackAscendsAndClosesAtRoot(t *testing.T) {
	s, _, requests := newTestSystem()
	sub := NewSubMenu("tools", nil)
	sub.AddItem(NewActionItem("inner", nil, nil))
	s.AddToRoot(sub)
	s.Open()
	s.ExecuteSelected()
	require.Equal(t, sub, s.Current())

	s.GoBack()
	require.Equal(t, s.Root(), s.Current())
	require.True(t, s.Active())

	requests.full = 0
	s.GoBack()
	require.False(t, s.Active())
	require.Equal(t, 1, requests.full)
}

func TestReopenKeepsTreePosition(t *testing.T) {
	s, _, _ := newTestSystem()
	sub := NewSubMenu("tools", nil)
	sub.AddItem(NewActionItem("inner", nil, nil))
	s.AddToRoot(sub)
	s.Open()
	s.ExecuteSelected()
	s.Close()

	s.Open()

	require.Equal(t, sub, s.Current())
}

func TestToggle(t *testing.T) {
	s, _, _ := newTestSystem()

	s.Toggle()
	require.True(t, s.Active())
	s.Toggle()
	require.False(t, s.Active())
}

func TestPanelRectClipsToSurface(t *testing.T) {
	s, _, _ := newTestSystem()

	rect := s.PanelRect(800, 480)

	require.Equal(t, panelX, rect.Min.X)
	require.Equal(t, 800-panelX, rect.Max.X)
	require.LessOrEqual(t, rect.Max.Y, 480)
	require.Positive(t, rect.Dy())
}

func TestKindGlyphs(t *testing.T) {
	require.Equal(t, "$", KindGlyph(KindAction))
	require.Equal(t, "/", KindGlyph(KindSubMenu))
	require.Equal(t, ">", KindGlyph(KindPage))
}

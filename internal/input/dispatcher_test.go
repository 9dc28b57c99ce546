package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeNavigator struct {
	calls []string
}

func (f *fakeNavigator) OnActionUp()    { f.calls = append(f.calls, "up") }
func (f *fakeNavigator) OnActionDown()  { f.calls = append(f.calls, "down") }
func (f *fakeNavigator) OnActionLeft()  { f.calls = append(f.calls, "left") }
func (f *fakeNavigator) OnActionRight() { f.calls = append(f.calls, "right") }
func (f *fakeNavigator) OnAction()      { f.calls = append(f.calls, "confirm") }
func (f *fakeNavigator) PopPage()       { f.calls = append(f.calls, "pop") }

type fakeMenu struct {
	active  bool
	toggles int
	backs   int
}

func (f *fakeMenu) Active() bool { return f.active }
func (f *fakeMenu) Toggle()      { f.toggles++; f.active = !f.active }
func (f *fakeMenu) GoBack()      { f.backs++ }

func TestDispatchRoutesNavigation(t *testing.T) {
	nav := &fakeNavigator{}
	d := NewDispatcher(nav, &fakeMenu{}, nil, nil)

	for _, ev := range []Event{Up, Down, Left, Right, Confirm} {
		d.Dispatch(ev)
	}

	require.Equal(t, []string{"up", "down", "left", "right", "confirm"}, nav.calls)
}

func TestDispatchMenuKeyToggles(t *testing.T) {
	menu := &fakeMenu{}
	d := NewDispatcher(&fakeNavigator{}, menu, nil, nil)

	d.Dispatch(Menu)
	d.Dispatch(Menu)

	require.Equal(t, 2, menu.toggles)
}

func TestDispatchBackDependsOnMenuState(t *testing.T) {
	nav := &fakeNavigator{}
	menu := &fakeMenu{active: true}
	d := NewDispatcher(nav, menu, nil, nil)

	// While the overlay is open, back ascends the menu tree.
	d.Dispatch(Back)
	require.Equal(t, 1, menu.backs)
	require.Empty(t, nav.calls)

	// Closed: back pops a page.
	menu.active = false
	d.Dispatch(Back)
	require.Equal(t, 1, menu.backs)
	require.Equal(t, []string{"pop"}, nav.calls)
}

func TestDispatchExitFiresCallback(t *testing.T) {
	exits := 0
	d := NewDispatcher(&fakeNavigator{}, &fakeMenu{}, func() { exits++ }, nil)

	d.Dispatch(Exit)

	require.Equal(t, 1, exits)
}

func TestRunDrainsSourceUntilClosed(t *testing.T) {
	nav := &fakeNavigator{}
	d := NewDispatcher(nav, &fakeMenu{}, nil, nil)

	src := NewNoopSource()
	done := make(chan struct{})
	go func() {
		d.Run(context.Background(), src)
		close(done)
	}()

	require.NoError(t, src.Stop())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop on closed source")
	}
}

package display

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/epdui/internal/theme"
)

func newTestController(store theme.Store) (*Controller, *ImageDriver) {
	driver := NewImageDriver(64, 48)
	return NewController(driver, store, Options{}, nil), driver
}

func TestDrawPagedInvokesComposePerPage(t *testing.T) {
	ctrl, driver := newTestController(theme.NewMemStore(theme.Light))
	driver.SetPages(2)

	calls := 0
	require.NoError(t, ctrl.DrawPaged(func() { calls++ }))

	require.Equal(t, 2, calls)
	total, _ := driver.Flushes()
	require.Equal(t, 1, total)
}

func TestWindowSelection(t *testing.T) {
	ctrl, driver := newTestController(theme.NewMemStore(theme.Light))

	ctrl.SetPartialWindow(8, 8, 16, 16)
	require.Equal(t, image.Rect(8, 8, 24, 24), ctrl.Window())

	// The window never exceeds the surface.
	ctrl.SetPartialWindow(-10, -10, 1000, 1000)
	require.Equal(t, image.Rect(0, 0, 64, 48), ctrl.Window())

	ctrl.SetFullWindow()
	require.Equal(t, image.Rect(0, 0, 64, 48), ctrl.Window())
	require.NoError(t, ctrl.DrawPaged(func() {}))
	_, full := driver.Flushes()
	require.Equal(t, 1, full)
}

func TestThemeColors(t *testing.T) {
	store := theme.NewMemStore(theme.Light)
	ctrl, _ := newTestController(store)

	require.Equal(t, Black, ctrl.PrimaryColor(false))
	require.Equal(t, White, ctrl.BackgroundColor())
	require.Equal(t, White, ctrl.PrimaryColor(true))

	ctrl.SetTheme(theme.Dark)
	require.Equal(t, theme.Dark, store.Theme())
	require.Equal(t, White, ctrl.PrimaryColor(false))
	require.Equal(t, Black, ctrl.BackgroundColor())
}

func TestFillRectClipsToCanvas(t *testing.T) {
	ctrl, _ := newTestController(theme.NewMemStore(theme.Light))
	ctrl.FillScreen(White)

	ctrl.FillRect(60, 44, 10, 10, Black)

	canvas := ctrl.Canvas()
	require.Equal(t, Black, canvas.RGBAAt(63, 47))
	require.Equal(t, White, canvas.RGBAAt(59, 43))
}

func TestDrawLineEndpoints(t *testing.T) {
	ctrl, _ := newTestController(theme.NewMemStore(theme.Light))
	ctrl.FillScreen(White)

	ctrl.DrawLine(0, 0, 10, 10, Black)

	canvas := ctrl.Canvas()
	require.Equal(t, Black, canvas.RGBAAt(0, 0))
	require.Equal(t, Black, canvas.RGBAAt(10, 10))
	require.Equal(t, Black, canvas.RGBAAt(5, 5))
}

func TestPatternBits(t *testing.T) {
	require.True(t, patternBit(PatternSolid, 0, 0))
	require.True(t, patternBit(PatternSolid, 5, 3))

	// The checkerboard alternates in 4x4 blocks.
	require.True(t, patternBit(PatternCheckerboard, 0, 0))
	require.False(t, patternBit(PatternCheckerboard, 4, 0))
	require.False(t, patternBit(PatternCheckerboard, 0, 4))
	require.True(t, patternBit(PatternCheckerboard, 4, 4))

	// Patterns tile with period eight.
	for _, p := range []Pattern{PatternDiagonalStripes, PatternSparseDots, PatternVerySparseDots} {
		require.Equal(t, patternBit(p, 1, 2), patternBit(p, 9, 10))
	}
}

func TestDrawScaledBitmapMajoritySampling(t *testing.T) {
	ctrl, _ := newTestController(theme.NewMemStore(theme.Light))
	ctrl.FillScreen(White)

	// A 2x2 bitmap with the left column set, scaled to 8x8: the left half
	// lands in ink, the right half stays paper.
	bitmap := []byte{0x80, 0x80}
	ctrl.DrawScaledBitmap(0, 0, bitmap, 2, 2, 8, 8, Black)

	canvas := ctrl.Canvas()
	require.Equal(t, Black, canvas.RGBAAt(1, 1))
	require.Equal(t, White, canvas.RGBAAt(6, 6))
}

func TestTextBoundsAndDrawText(t *testing.T) {
	ctrl, _ := newTestController(theme.NewMemStore(theme.Light))
	ctrl.FillScreen(White)

	w, h := ctrl.TextBounds("hello", ctrl.Face())
	require.Positive(t, w)
	require.Positive(t, h)

	wider, _ := ctrl.TextBounds("hello world", ctrl.Face())
	require.Greater(t, wider, w)

	ctrl.DrawText("hello", 2, 20, Black, ctrl.Face())
	inked := 0
	canvas := ctrl.Canvas()
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if canvas.RGBAAt(x, y) == Black {
				inked++
			}
		}
	}
	require.Positive(t, inked)
}

func TestImageDriverFlushWindow(t *testing.T) {
	driver := NewImageDriver(32, 32)
	canvas := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			canvas.SetRGBA(x, y, Black)
		}
	}

	require.NoError(t, driver.Flush(canvas, image.Rect(0, 0, 16, 32), RefreshPartial))

	frame := driver.Frame()
	require.Equal(t, Black, frame.RGBAAt(8, 8))
	// Outside the window the frame is untouched.
	require.NotEqual(t, Black, frame.RGBAAt(24, 8))
}

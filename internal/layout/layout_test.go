package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlign8(t *testing.T) {
	require.Equal(t, 0, Align8(0))
	require.Equal(t, 8, Align8(1))
	require.Equal(t, 8, Align8(8))
	require.Equal(t, 16, Align8(9))
	require.Equal(t, 104, Align8(97))
}

func TestInset(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)

	require.Equal(t, image.Rect(10, 10, 90, 40), Inset(rect, 10))
	require.Equal(t, rect, Inset(rect, 0))

	// Over-insetting never produces an inverted rectangle.
	shrunk := Inset(rect, 40)
	require.LessOrEqual(t, shrunk.Min.X, shrunk.Max.X)
	require.LessOrEqual(t, shrunk.Min.Y, shrunk.Max.Y)
}

func TestSplitHorizontal(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)

	top, bottom := SplitHorizontal(rect, 20)
	require.Equal(t, image.Rect(0, 0, 100, 20), top)
	require.Equal(t, image.Rect(0, 20, 100, 50), bottom)

	top, bottom = SplitHorizontal(rect, 200)
	require.Equal(t, rect, top)
	require.Zero(t, bottom.Dy())
}

func TestSplitVertical(t *testing.T) {
	rect := image.Rect(10, 10, 110, 60)

	left, right := SplitVertical(rect, 40)
	require.Equal(t, image.Rect(10, 10, 50, 60), left)
	require.Equal(t, image.Rect(50, 10, 110, 60), right)

	left, right = SplitVertical(rect, -5)
	require.Zero(t, left.Dx())
	require.Equal(t, rect, right)
}

func TestCenter(t *testing.T) {
	rect := image.Rect(0, 0, 100, 100)

	centered := Center(rect, 20, 10)
	require.Equal(t, image.Rect(40, 45, 60, 55), centered)
}

// Package display owns the offscreen canvas, the drawing primitives and the
// paged flush to a hardware driver. Widgets never touch the driver; they
// draw through the Controller.
package display

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/epdui/internal/theme"
)

// The panel is two-colored; everything resolves to one of these.
var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Options configures controller construction.
type Options struct {
	// FontPath points at a TTF/OTF file. Empty uses the builtin bitmap face.
	FontPath string
	FontSize float64
}

// Controller composes frames on an offscreen RGBA canvas and flushes a
// window of it through the Driver. It also resolves the two-color palette
// from the current theme.
type Controller struct {
	driver Driver
	canvas *image.RGBA
	themes theme.Store

	face     font.Face
	boldFace font.Face

	window     image.Rectangle
	refresh    Refresh
	fullWindow bool

	log *zap.Logger
}

func NewController(driver Driver, themes theme.Store, opts Options, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	bounds := driver.Bounds()
	ctrl := &Controller{
		driver:  driver,
		canvas:  image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())),
		themes:  themes,
		window:  image.Rect(0, 0, bounds.Dx(), bounds.Dy()),
		refresh: RefreshFull,
		log:     log,
	}
	ctrl.loadFonts(opts)
	return ctrl
}

// loadFonts mirrors the fallback chain of the framebuffer renderer: try the
// configured file, fall back to the builtin face on any failure.
func (c *Controller) loadFonts(opts Options) {
	c.face = basicfont.Face7x13
	c.boldFace = basicfont.Face7x13
	if opts.FontPath == "" {
		return
	}
	size := opts.FontSize
	if size <= 0 {
		size = 14
	}
	data, err := os.ReadFile(opts.FontPath)
	if err != nil {
		c.log.Error("font read failed, using basicfont", zap.String("path", opts.FontPath), zap.Error(err))
		return
	}
	if fnt, perr := opentype.Parse(data); perr != nil {
		c.log.Error("font parse failed, using basicfont", zap.Error(perr))
	} else if face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull}); ferr != nil {
		c.log.Error("font face create failed, using basicfont", zap.Error(ferr))
	} else {
		c.face = face
		c.log.Info("font loaded", zap.String("path", opts.FontPath), zap.Float64("size", size))
	}
	// A slightly larger truetype face stands in for the bold cut.
	if tt, terr := truetype.Parse(data); terr != nil {
		c.log.Error("truetype parse failed", zap.Error(terr))
	} else {
		c.boldFace = truetype.NewFace(tt, &truetype.Options{Size: size * 1.25, DPI: 96})
	}
}

func (c *Controller) Width() int  { return c.canvas.Bounds().Dx() }
func (c *Controller) Height() int { return c.canvas.Bounds().Dy() }

func (c *Controller) Face() font.Face     { return c.face }
func (c *Controller) BoldFace() font.Face { return c.boldFace }

// Canvas exposes the composition buffer. Only the render loop and tests
// should reach for it.
func (c *Controller) Canvas() *image.RGBA { return c.canvas }

func (c *Controller) Theme() theme.Theme {
	if c.themes == nil {
		return theme.Light
	}
	return c.themes.Theme()
}

func (c *Controller) SetTheme(t theme.Theme) {
	if c.themes == nil {
		return
	}
	if err := c.themes.SetTheme(t); err != nil {
		c.log.Error("theme persist failed", zap.Error(err))
	}
}

// PrimaryColor resolves the ink color for the current theme: black on the
// light theme, white on the dark one. inverted swaps the pair.
func (c *Controller) PrimaryColor(inverted bool) color.RGBA {
	want := theme.Light
	if inverted {
		want = theme.Dark
	}
	if c.Theme() == want {
		return Black
	}
	return White
}

// BackgroundColor is the paper color for the current theme.
func (c *Controller) BackgroundColor() color.RGBA {
	return c.PrimaryColor(true)
}

// Window control

// SetFullWindow marks the whole surface for flushing with a true full
// refresh.
func (c *Controller) SetFullWindow() {
	c.window = c.canvas.Bounds()
	c.refresh = RefreshFull
	c.fullWindow = true
}

// SetPartialWindow restricts the flush to the given rectangle using the
// fast refresh mode.
func (c *Controller) SetPartialWindow(x, y, width, height int) {
	c.window = image.Rect(x, y, x+width, y+height).Intersect(c.canvas.Bounds())
	c.refresh = RefreshPartial
	c.fullWindow = false
}

// Window reports the current damage window.
func (c *Controller) Window() image.Rectangle { return c.window }

// DrawPaged invokes compose once per driver page and flushes the current
// window. Compose must be idempotent: the driver decides how many passes a
// refresh takes.
func (c *Controller) DrawPaged(compose func()) error {
	pages := c.driver.Pages()
	if pages < 1 {
		pages = 1
	}
	for i := 0; i < pages; i++ {
		compose()
	}
	return c.driver.Flush(c.canvas, c.window, c.refresh)
}

// Primitives

func (c *Controller) SetPixel(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.canvas.Bounds()) {
		return
	}
	c.canvas.Set(x, y, col)
}

func (c *Controller) FillScreen(col color.Color) {
	draw.Draw(c.canvas, c.canvas.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Controller) FillRect(x, y, width, height int, col color.Color) {
	rect := image.Rect(x, y, x+width, y+height).Intersect(c.canvas.Bounds())
	draw.Draw(c.canvas, rect, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Controller) DrawRect(x, y, width, height int, col color.Color) {
	c.DrawHLine(x, y, width, col)
	c.DrawHLine(x, y+height-1, width, col)
	c.DrawVLine(x, y, height, col)
	c.DrawVLine(x+width-1, y, height, col)
}

func (c *Controller) DrawHLine(x, y, width int, col color.Color) {
	for i := 0; i < width; i++ {
		c.SetPixel(x+i, y, col)
	}
}

func (c *Controller) DrawVLine(x, y, height int, col color.Color) {
	for i := 0; i < height; i++ {
		c.SetPixel(x, y+i, col)
	}
}

// DrawLine draws an arbitrary segment (Bresenham).
func (c *Controller) DrawLine(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// roundRectContains reports whether the pixel lies inside the rounded
// rectangle. Shared by the rounded fill, outline and pattern helpers.
func roundRectContains(px, py, x, y, width, height, radius int) bool {
	if px < x || px >= x+width || py < y || py >= y+height {
		return false
	}
	if radius <= 0 {
		return true
	}
	rSq := radius * radius
	// Corner circle tests, one quadrant each.
	if px < x+radius && py < y+radius {
		dx := x + radius - px
		dy := y + radius - py
		return dx*dx+dy*dy <= rSq
	}
	if px >= x+width-radius && py < y+radius {
		dx := px - (x + width - radius - 1)
		dy := y + radius - py
		return dx*dx+dy*dy <= rSq
	}
	if px < x+radius && py >= y+height-radius {
		dx := x + radius - px
		dy := py - (y + height - radius - 1)
		return dx*dx+dy*dy <= rSq
	}
	if px >= x+width-radius && py >= y+height-radius {
		dx := px - (x + width - radius - 1)
		dy := py - (y + height - radius - 1)
		return dx*dx+dy*dy <= rSq
	}
	return true
}

func (c *Controller) FillRoundRect(x, y, width, height, radius int, col color.Color) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if roundRectContains(px, py, x, y, width, height, radius) {
				c.SetPixel(px, py, col)
			}
		}
	}
}

func (c *Controller) DrawRoundRect(x, y, width, height, radius int, col color.Color) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if !roundRectContains(px, py, x, y, width, height, radius) {
				continue
			}
			edge := !roundRectContains(px-1, py, x, y, width, height, radius) ||
				!roundRectContains(px+1, py, x, y, width, height, radius) ||
				!roundRectContains(px, py-1, x, y, width, height, radius) ||
				!roundRectContains(px, py+1, x, y, width, height, radius)
			if edge {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// DrawMultiRoundRectBorder draws nested rounded outlines, the hallmark
// emphasis style of the framework.
func (c *Controller) DrawMultiRoundRectBorder(x, y, width, height int, col color.Color, loops, gap, gapMulti, radius int) {
	for i := 1; i <= loops; i++ {
		c.DrawRoundRect(
			x+i*gap,
			y+i*gap,
			width-i*(gap*gapMulti),
			height-i*(gap*gapMulti),
			radius,
			col,
		)
	}
}

func (c *Controller) DrawPattern(p Pattern, x, y, width, height int) {
	col := c.PrimaryColor(false)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			if patternBit(p, px, py) {
				c.SetPixel(x+px, y+py, col)
			}
		}
	}
}

// DrawPatternInRoundedArea fills a rounded rectangle with the pattern,
// clipping the corners.
func (c *Controller) DrawPatternInRoundedArea(p Pattern, x, y, width, height, radius int) {
	col := c.PrimaryColor(false)
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if roundRectContains(px, py, x, y, width, height, radius) && patternBit(p, px-x, py-y) {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// DrawScaledBitmap renders a 1-bit packed bitmap (MSB first, rows padded to
// whole bytes) scaled to the target size. Each target pixel takes the
// majority value of its source region, which keeps thin strokes readable
// when shrinking icons.
func (c *Controller) DrawScaledBitmap(x, y int, bitmap []byte, srcWidth, srcHeight, targetWidth, targetHeight int, col color.Color) {
	if len(bitmap) == 0 || srcWidth <= 0 || srcHeight <= 0 || targetWidth <= 0 || targetHeight <= 0 {
		return
	}
	stride := (srcWidth + 7) / 8
	scaleX := float64(srcWidth) / float64(targetWidth)
	scaleY := float64(srcHeight) / float64(targetHeight)
	for ty := 0; ty < targetHeight; ty++ {
		syStart := int(float64(ty) * scaleY)
		syEnd := int(float64(ty+1) * scaleY)
		if syEnd > srcHeight {
			syEnd = srcHeight
		}
		if syEnd <= syStart {
			syEnd = syStart + 1
		}
		for tx := 0; tx < targetWidth; tx++ {
			sxStart := int(float64(tx) * scaleX)
			sxEnd := int(float64(tx+1) * scaleX)
			if sxEnd > srcWidth {
				sxEnd = srcWidth
			}
			if sxEnd <= sxStart {
				sxEnd = sxStart + 1
			}
			regionPixels := (syEnd - syStart) * (sxEnd - sxStart)
			count := 0
			for sy := syStart; sy < syEnd; sy++ {
				for sx := sxStart; sx < sxEnd; sx++ {
					byteIndex := sy*stride + sx/8
					if byteIndex >= len(bitmap) {
						continue
					}
					if bitmap[byteIndex]&(1<<(7-uint(sx%8))) != 0 {
						count++
					}
				}
			}
			if count > regionPixels/2 {
				c.SetPixel(x+tx, y+ty, col)
			}
		}
	}
}

// DrawImage scales img into rect on the canvas (nearest neighbor, the same
// sampling the framebuffer blit uses).
func (c *Controller) DrawImage(img image.Image, rect image.Rectangle) {
	if img == nil {
		return
	}
	rect = rect.Intersect(c.canvas.Bounds())
	if rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.canvas, rect, img, img.Bounds(), xdraw.Over, nil)
}

// Text

// TextBounds measures text in the given face.
func (c *Controller) TextBounds(text string, face font.Face) (width, height int) {
	if face == nil {
		face = c.face
	}
	drawer := &font.Drawer{Face: face}
	width = drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height = (metrics.Ascent + metrics.Descent).Ceil()
	return width, height
}

// DrawText renders text with its baseline at (x, y).
func (c *Controller) DrawText(text string, x, baseline int, col color.Color, face font.Face) {
	if face == nil {
		face = c.face
	}
	drawer := &font.Drawer{
		Dst:  c.canvas,
		Src:  &image.Uniform{C: col},
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(text)
}

// LineHeight reports ascent+descent for a face, the usual row advance.
func (c *Controller) LineHeight(face font.Face) int {
	if face == nil {
		face = c.face
	}
	metrics := face.Metrics()
	return (metrics.Ascent + metrics.Descent).Ceil()
}

// Ascent reports the baseline offset from the top of a text row.
func (c *Controller) Ascent(face font.Face) int {
	if face == nil {
		face = c.face
	}
	return face.Metrics().Ascent.Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

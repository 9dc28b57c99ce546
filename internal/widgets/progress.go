package widgets

import (
	"fmt"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// ProgressBar is a non-interactive component: a labeled bar filled with a
// pattern, optionally printing the percentage under it.
type ProgressBar struct {
	ui.Base

	label           string
	progress        float64
	printPercentage bool
}

func NewProgressBar(label string, progress float64, printPercentage bool) *ProgressBar {
	p := &ProgressBar{label: label, printPercentage: printPercentage}
	p.SetProgress(progress)
	return p
}

// SetProgress clamps to [0, 1].
func (p *ProgressBar) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	p.progress = progress
}

func (p *ProgressBar) Progress() float64 { return p.progress }

func (p *ProgressBar) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	const padding = 12
	const barWidth = 128
	const barHeight = 24
	const radius = 4
	const percentageMargin = 8
	face := ctrl.BoldFace()
	ink := ctrl.PrimaryColor(false)

	_, labelHeight := ctrl.TextBounds(p.label, face)

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Width = layout.Align8(barWidth + padding*2)
	ctx.Height = layout.Align8(labelHeight + barHeight + percentageMargin + padding*2)

	ctrl.DrawText(p.label, ctx.X+padding, ctx.Y+labelHeight+padding, ink, face)

	barX := ctx.X + padding
	barY := ctx.Y + labelHeight + padding*2
	ctrl.DrawRoundRect(barX, barY, barWidth, barHeight, radius, ink)

	fillWidth := int(float64(barWidth) * p.progress)
	if fillWidth > 0 {
		ctrl.DrawPatternInRoundedArea(display.PatternCheckerboard, barX, barY, fillWidth, barHeight, radius)
	}

	if p.printPercentage {
		percentage := fmt.Sprintf("%d%%", int(p.progress*100))
		percWidth, percHeight := ctrl.TextBounds(percentage, face)
		ctrl.DrawText(percentage, barX+(barWidth-percWidth)/2, barY+barHeight+percentageMargin+percHeight, ink, face)
	}
}

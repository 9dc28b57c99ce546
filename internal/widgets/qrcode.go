package widgets

import (
	"image"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
)

const defaultQRCodeSizePx = 160

// QRCode renders a QR code for a payload. The image is generated once per
// payload and cached, keeping the draw path idempotent and cheap.
type QRCode struct {
	ui.Base

	payload string
	size    int
	img     image.Image
	genErr  error
}

func NewQRCode(payload string, sizePx int) *QRCode {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	q := &QRCode{payload: payload, size: sizePx}
	q.generate()
	return q
}

// SetPayload replaces the encoded payload and regenerates the image.
func (q *QRCode) SetPayload(payload string) {
	if payload == q.payload {
		return
	}
	q.payload = payload
	q.generate()
}

func (q *QRCode) Err() error { return q.genErr }

// Image returns the cached code image, nil when generation failed or the
// payload is empty.
func (q *QRCode) Image() image.Image { return q.img }

func (q *QRCode) generate() {
	q.img = nil
	q.genErr = nil
	if q.payload == "" {
		return
	}
	code, err := qrcode.New(q.payload, qrcode.Medium)
	if err != nil {
		q.genErr = err
		return
	}
	q.img = code.Image(q.size)
}

func (q *QRCode) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	if ctx.Width == 0 && ctx.Height == 0 {
		ctx.Width = q.size
		ctx.Height = q.size
	}
	if q.img == nil {
		return
	}
	ctrl.DrawImage(q.img, image.Rect(ctx.X, ctx.Y, ctx.X+ctx.Width, ctx.Y+ctx.Height))
}

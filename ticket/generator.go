package ticket

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultQRSize is the side length in pixels of the rendered code.
	DefaultQRSize = 300

	quietZoneModules = 1
)

// Generator composites a QR code onto a background template to produce a
// ticket image. The template is read from disk on every call.
type Generator struct {
	TemplatePath string
	// Top-left corner of the QR code on the template.
	QRPosition image.Point
	QRSize     int
	// When set, the recipient name and ticket id are written at this point.
	NamePosition *image.Point
}

func NewGenerator(templatePath string, qrPosition image.Point) *Generator {
	return &Generator{
		TemplatePath: templatePath,
		QRPosition:   qrPosition,
		QRSize:       DefaultQRSize,
	}
}

// Generate renders payload as a QR code, places it on the template and
// returns the result as PNG bytes.
func (g *Generator) Generate(recipientName, ticketID, payload string) ([]byte, error) {
	background, err := g.loadTemplate()
	if err != nil {
		return nil, err
	}

	code, err := RenderQRCode(payload, g.qrSize())
	if err != nil {
		return nil, err
	}

	codeRect := code.Bounds().Add(g.QRPosition)
	if !codeRect.In(background.Bounds()) {
		return nil, NewTemplateInvalidError(
			fmt.Sprintf("QR code at %v does not fit on a %dx%d template", codeRect, background.Bounds().Dx(), background.Bounds().Dy()), nil)
	}

	ticket := imaging.Overlay(background, code, g.QRPosition, 1.0)

	if g.NamePosition != nil {
		drawLabel(ticket, *g.NamePosition, recipientName)
		drawLabel(ticket, g.NamePosition.Add(image.Pt(0, basicfont.Face7x13.Height+4)), "Ticket ID: "+ticketID)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, ticket, imaging.PNG)
	if err != nil {
		return nil, NewRenderFailedError("Failed to encode ticket as PNG", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) qrSize() int {
	if g.QRSize <= 0 {
		return DefaultQRSize
	}
	return g.QRSize
}

func (g *Generator) loadTemplate() (image.Image, error) {
	img, err := imaging.Open(g.TemplatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewTemplateMissingError(fmt.Sprintf("Ticket template not found at %q", g.TemplatePath), err)
		}
		return nil, NewTemplateInvalidError(fmt.Sprintf("Ticket template at %q could not be decoded", g.TemplatePath), err)
	}
	return img, nil
}

// RenderQRCode draws payload as a black-on-white QR code filling a size x size
// square, with at least one module of quiet zone on every side.
func RenderQRCode(payload string, size int) (*image.NRGBA, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, NewEncodingFailureError(fmt.Sprintf("Failed to encode %d byte payload as a QR code", len(payload)), err)
	}
	q.DisableBorder = true

	bitmap := q.Bitmap()
	modules := len(bitmap)
	scale := size / (modules + 2*quietZoneModules)
	if scale < 1 {
		return nil, NewEncodingFailureError(fmt.Sprintf("QR code needs %d modules, too dense for %dpx", modules, size), nil)
	}

	img := imaging.New(size, size, color.White)
	offset := (size - scale*modules) / 2
	black := color.NRGBA{A: 0xff}

	for row, cells := range bitmap {
		for col, dark := range cells {
			if !dark {
				continue
			}
			x0 := offset + col*scale
			y0 := offset + row*scale
			for y := y0; y < y0+scale; y++ {
				for x := x0; x < x0+scale; x++ {
					img.SetNRGBA(x, y, black)
				}
			}
		}
	}

	return img, nil
}

func drawLabel(dst *image.NRGBA, at image.Point, text string) {
	if text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// Command ticketpreview renders a ticket locally so a new template and QR
// placement can be checked before they are deployed.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/asace-youth/event-registration/ticket"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		templatePath = flag.StringP("template", "t", "assets/ticket.png", "background template image")
		out          = flag.StringP("out", "o", "ticket-preview.png", "where to write the rendered ticket")
		qrX          = flag.Int("qr-x", 150, "left edge of the QR code in pixels")
		qrY          = flag.Int("qr-y", 250, "top edge of the QR code in pixels")
		qrSize       = flag.Int("qr-size", ticket.DefaultQRSize, "QR code side length in pixels")
		name         = flag.String("name", "Ada Lovelace", "attendee name")
		id           = flag.String("id", "", "registration id (random when empty)")
		labelAt      = flag.IntSlice("label-at", nil, "x,y of the name label; no label when unset")
	)
	flag.Parse()

	if *id == "" {
		*id = uuid.NewString()
	}

	g := ticket.NewGenerator(*templatePath, image.Pt(*qrX, *qrY))
	g.QRSize = *qrSize

	if len(*labelAt) > 0 {
		if len(*labelAt) != 2 {
			fmt.Fprintln(os.Stderr, "--label-at takes exactly two values: x,y")
			os.Exit(2)
		}
		g.NamePosition = &image.Point{X: (*labelAt)[0], Y: (*labelAt)[1]}
	}

	png, err := g.Generate(*name, *id, ticket.Payload(*id))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render ticket: %s\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %s\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (payload %q)\n", *out, ticket.Payload(*id))
}

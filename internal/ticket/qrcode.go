package ticket

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Payload is the text encoded in a reservation's QR code.
func Payload(r *domain.Reservation) string {
	return fmt.Sprintf("reservation:%s;movie:%d;seat:%d-%d;user:%s",
		r.ID, r.MovieID, r.Row, r.Number, r.UserName)
}

// QRCode renders the reservation ticket as a PNG image of size x size pixels.
func QRCode(r *domain.Reservation, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	qr, err := qrcode.New(Payload(r), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket for reservation %s: %w", r.ID, err)
	}

	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

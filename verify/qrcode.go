package verify

import (
	qrcode "github.com/skip2/go-qrcode"

	"booking-server/entities"
)

// QRCodePNG renders the verification URL as a scannable PNG receipt.
func QRCodePNG(baseURL string, booking *entities.Booking, user *entities.User, size int) ([]byte, error) {
	link, err := URL(baseURL, booking, user)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}

package qrimage

import (
	"kidcare-booking/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyPayload = errs.New("qr payload is empty")

// EncodePNG renders payload as a PNG QR code. Sizes outside 64..1024 fall
// back to DefaultSize.
func EncodePNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if size < 64 || size > 1024 {
		size = DefaultSize
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}

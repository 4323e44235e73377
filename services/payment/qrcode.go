package payment

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// RenderQRCode encodes the same text as BuildQRCodeURL into a PNG, for
// clients that cannot reach the external QR service.
func RenderQRCode(d PaymentDetails, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(PaymentText(d), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment qr code: %w", err)
	}
	return png, nil
}

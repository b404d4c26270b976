// services/qrcode_service.go
package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can inject a failing encoder.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// EventURL builds the shareable link a QR code points at.
func EventURL(baseURL string, eventID int) string {
	return fmt.Sprintf("%s/events#event-%d", baseURL, eventID)
}

// GenerateEventQRCode creates a PNG QR code linking to an event page.
func GenerateEventQRCode(baseURL string, eventID, size int, encode QRCodeEncoder) ([]byte, error) {
	png, err := encode(EventURL(baseURL, eventID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

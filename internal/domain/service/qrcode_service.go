package service

import "github.com/google/uuid"

// QRCodeService renders printable QR codes for recycling spots.
type QRCodeService interface {
	// GenerateSpotQR returns a PNG QR code linking to the spot.
	GenerateSpotQR(spotID uuid.UUID) ([]byte, error)
}

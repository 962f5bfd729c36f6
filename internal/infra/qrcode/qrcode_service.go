package qrcode

import (
	"strings"

	"ecospot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// Codes encode "{baseURL}/spots/{id}", which the mobile app opens as a deep link.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// SpotLink returns the URL a spot QR code points to.
func (s *qrcodeService) SpotLink(spotID uuid.UUID) string {
	return s.baseURL + "/spots/" + spotID.String()
}

// GenerateSpotQR renders the spot link as a PNG.
func (s *qrcodeService) GenerateSpotQR(spotID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.SpotLink(spotID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

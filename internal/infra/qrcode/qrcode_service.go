// Package qrcode renders the QR images partners print and hand to customers.
package qrcode

import (
	"fmt"
	"strings"

	"referidos/config"
	"referidos/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 512

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	errorCorrectionLevel := ""
	baseURL := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		errorCorrectionLevel = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCouponQR generates a PNG QR code pointing at the public coupon page
// for the given partner code. The encoded content is a plain URL so any phone
// camera opens it directly.
func (s *qrcodeService) GenerateCouponQR(codigo string) ([]byte, error) {
	target := fmt.Sprintf("%s/cupon/%s", s.baseURL, codigo)

	qrCode, err := qrcode.New(target, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateCouponQR generates a PNG QR code pointing at the public coupon page.
	GenerateCouponQR(codigo string) ([]byte, error)
}

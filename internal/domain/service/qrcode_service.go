package service

// QRCodeService renders share links as QR codes.
type QRCodeService interface {
	// GenerateLinkQR returns a PNG QR code encoding link.
	GenerateLinkQR(link string) ([]byte, error)
}

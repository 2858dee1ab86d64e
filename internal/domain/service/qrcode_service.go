package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStorefrontQR renders a PNG QR code that opens the storefront URL
	GenerateStorefrontQR(storefrontURL string) ([]byte, error)

	// ParseStorefrontQR validates scanned QR content and returns the storefront URL
	ParseStorefrontQR(qrData string) (string, error)
}

package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"sitesnap/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStorefrontQR encodes the storefront URL itself so that any phone
// camera opens it directly.
func (s *qrcodeService) GenerateStorefrontQR(storefrontURL string) ([]byte, error) {
	normalized, err := parseStorefrontURL(storefrontURL)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(normalized, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStorefrontQR checks that scanned content is a storefront link
func (s *qrcodeService) ParseStorefrontQR(qrData string) (string, error) {
	return parseStorefrontURL(qrData)
}

func parseStorefrontURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse storefront URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid storefront URL scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("storefront URL has no host: %q", raw)
	}

	return u.String(), nil
}

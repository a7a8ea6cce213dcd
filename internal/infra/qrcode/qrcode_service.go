package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"servicedesk/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const labelType = "complaint"

//nolint:gochecknoglobals
var complaintIDPattern = regexp.MustCompile(`^CMP-[A-Z]{3}-\d{6,}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LabelData is the payload encoded on a complaint job-card label
type LabelData struct {
	ComplaintID string `json:"complaint_id"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

// GenerateComplaintLabel generates a PNG label for a complaint
func (s *qrcodeService) GenerateComplaintLabel(complaintID string) ([]byte, error) {
	if !complaintIDPattern.MatchString(complaintID) {
		return nil, fmt.Errorf("invalid complaint ID: %q", complaintID)
	}

	data := LabelData{
		ComplaintID: complaintID,
		Type:        labelType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/complaints/" + url.PathEscape(complaintID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseComplaintLabel parses scanned label data and returns the complaint ID
func (s *qrcodeService) ParseComplaintLabel(qrData string) (string, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != labelType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if !complaintIDPattern.MatchString(data.ComplaintID) {
		return "", fmt.Errorf("invalid complaint ID: %q", data.ComplaintID)
	}

	return data.ComplaintID, nil
}

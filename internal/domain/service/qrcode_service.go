package service

// QRCodeService renders job-card labels for complaints.
type QRCodeService interface {
	// GenerateComplaintLabel renders a PNG QR code pointing at the complaint's tracking page.
	GenerateComplaintLabel(complaintID string) ([]byte, error)

	// ParseComplaintLabel extracts the complaint identifier from scanned label data.
	ParseComplaintLabel(data string) (string, error)
}

package impl

import (
	"strings"

	"servicedesk/internal/domain/entity"
)

// Variable names understood by the message templates.
const (
	varComplaintID    = "complaintId"
	varTitle          = "title"
	varLocation       = "location"
	varStatus         = "status"
	varTechnicianName = "technicianName"
)

//nolint:gochecknoglobals
var messageTemplates = map[entity.NotificationType]string{
	entity.NotificationTypeAssignment:   "Complaint {complaintId} at {location} has been assigned to you: {title}",
	entity.NotificationTypeStatusUpdate: "Your complaint {complaintId} is now {status}",
	entity.NotificationTypeCompletion:   "Work on complaint {complaintId} is complete",
}

// renderMessage fills {name} placeholders of the template for kind.
// Unknown placeholders are left as-is.
func renderMessage(kind entity.NotificationType, vars map[string]string) string {
	tmpl, ok := messageTemplates[kind]
	if !ok {
		tmpl = "Update on complaint {complaintId}"
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}

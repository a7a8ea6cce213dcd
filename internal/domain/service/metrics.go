package service

// Metrics records lifecycle counters.
type Metrics interface {
	ComplaintCreated(storeCode string)
	StatusChanged(from, to string)
	NotificationDispatched(kind, status string)
}

package metrics

// Методы безопасны для nil-receiver: при выключенных метриках
// в usecase передаётся (*Metrics)(nil)

func (m *Metrics) IncBookingCreated(eventType string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(eventType).Inc()
}

func (m *Metrics) IncAvailabilityConflict(source string) {
	if m == nil {
		return
	}
	m.AvailabilityConflictsTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) IncLookupMiss(category string) {
	if m == nil {
		return
	}
	m.QuoteLookupMissTotal.WithLabelValues(category).Inc()
}

func (m *Metrics) IncNotificationFailed(kind string) {
	if m == nil {
		return
	}
	m.NotificationsFailedTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncCacheResult(result string) {
	if m == nil {
		return
	}
	m.BookedDatesCacheTotal.WithLabelValues(result).Inc()
}

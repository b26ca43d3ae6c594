package bookings

import "time"

// MetricsObserver получает метрики операций с файловым хранилищем.
// Реализуется pkg/metrics; nil-наблюдатель допустим, когда метрики выключены.
type MetricsObserver interface {
	ObserveStorageOp(operation string, start time.Time, err error)
}

package repository

import "time"

// SetNowFn overrides the repository clock in tests.
func SetNowFn(r AccountSnapshotRepository, nowFn func() time.Time) {
	r.(*accountSnapshotRepository).nowFn = nowFn
}

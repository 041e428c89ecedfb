package service

import "time"

// SetExportClock pins the timestamp used in export filenames.
func SetExportClock(svc *ExportServiceImpl, now func() time.Time) {
	svc.now = now
}

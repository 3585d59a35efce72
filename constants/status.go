package constants

// UploadStatus is the terminal outcome of a single document upload attempt.
type UploadStatus string

// Stable values (returned over the wire; store these exact strings).
const (
	UploadStatusCompleted     UploadStatus = "completed"      // payload stored, possibly with anomaly flags
	UploadStatusDuplicate     UploadStatus = "duplicate"      // existing payload returned, no new AI call made
	UploadStatusQuotaExceeded UploadStatus = "quota_exceeded" // plan limit hit
	UploadStatusRejected      UploadStatus = "rejected"       // bad file type or size
	UploadStatusFailed        UploadStatus = "failed"         // extraction or normalization error
)

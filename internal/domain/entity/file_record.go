package entity

import (
	"strings"
	"time"
)

type SummaryStatus string

// SummaryStatusNone is the zero value: no summarization has ever been
// attempted for the record. Transitions run none/pending -> processing ->
// completed|failed; a retry after failed re-enters at processing.
const (
	SummaryStatusNone       SummaryStatus = ""
	SummaryStatusPending    SummaryStatus = "pending"
	SummaryStatusProcessing SummaryStatus = "processing"
	SummaryStatusCompleted  SummaryStatus = "completed"
	SummaryStatusFailed     SummaryStatus = "failed"
)

type FileRecord struct {
	ID              string        `json:"id" firestore:"id"`
	OwnerID         string        `json:"owner_id" firestore:"ownerId"`
	Name            string        `json:"name" firestore:"name"`
	Size            int64         `json:"size" firestore:"size"`
	ContentType     string        `json:"content_type" firestore:"contentType"`
	StorageProvider string        `json:"storage_provider" firestore:"storageProvider"`
	StorageKey      string        `json:"storage_key" firestore:"storageKey"`
	UploadTarget    string        `json:"upload_target" firestore:"uploadTarget"`
	UploadedAt      time.Time     `json:"uploaded_at" firestore:"uploadedAt"`
	Summary         string        `json:"summary,omitempty" firestore:"summary"`
	SummaryStatus   SummaryStatus `json:"summary_status,omitempty" firestore:"summaryStatus"`
}

// IsPDF reports whether the record's content type indicates a PDF.
func (f *FileRecord) IsPDF() bool {
	return strings.Contains(strings.ToLower(f.ContentType), "pdf")
}

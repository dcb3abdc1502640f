package service

import "context"

// UploadTargetIssuer produces the URL a client uses to place file bytes
// into object storage. Issuance signs locally; the binary transfer itself
// happens out-of-band between the client and the provider.
type UploadTargetIssuer interface {
	IssueUploadTarget(ctx context.Context, storageKey, contentType string) (string, error)
}

// ObjectRemover deletes the stored object behind a storage key. Removal is
// best effort: metadata deletion never waits on it.
type ObjectRemover interface {
	RemoveObject(ctx context.Context, storageKey string) error
}

package datagateway

import "context"

// ContentStorage stores immutable content in a content-addressed store and
// resolves stored documents back by locator. Store calls are not idempotent:
// re-uploading identical content may or may not yield the same locator
// depending on the backend's addressing scheme. Failures surface as
// errs.StorageUnavailable; retries are the caller's decision.
type ContentStorage interface {
	// StoreFile uploads raw bytes and returns a stable, resolvable locator.
	StoreFile(ctx context.Context, data []byte, contentType string) (string, error)

	// StoreJSON uploads a structured document and returns its locator.
	StoreJSON(ctx context.Context, doc any) (string, error)

	// FetchJSON resolves a locator and decodes the stored document into out.
	FetchJSON(ctx context.Context, locator string, out any) error
}

package errs

// ErrorKind identifies a kind of platform error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// IncompleteInput is returned by local validation before any external call is made.
	IncompleteInput = ErrorKind("incomplete input")

	// StorageUnavailable is returned when the content store is unreachable or rejects an upload.
	StorageUnavailable = ErrorKind("content storage unavailable")

	// NotConnected is returned when no signing agent account is available.
	NotConnected = ErrorKind("wallet not connected")

	// TransactionRejected is returned when the signing agent or the ledger rejects a transaction.
	TransactionRejected = ErrorKind("transaction rejected")

	// ConfirmationTimeout is returned when a submitted transaction is not confirmed within the bounded wait.
	ConfirmationTimeout = ErrorKind("transaction confirmation timeout")

	// InconsistentReceipt is returned when a confirmed transaction receipt lacks the expected mint event.
	// This is a correctness fault and is never silently defaulted to a generated identifier.
	InconsistentReceipt = ErrorKind("inconsistent transaction receipt")

	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("not found")

	// Unsupported is returned for unsupported networks or configuration values.
	Unsupported = ErrorKind("unsupported")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

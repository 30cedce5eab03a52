package storage

import "errors"

// Storage error constants
var (
	// ErrAlertNotFound is returned when an alert id is not in the index.
	// A miss is a normal negative result; the API maps it to 404.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrEmptyDataset is returned when the dataset file is missing, unreadable
	// or contains no records. This is fatal at startup: the service refuses to
	// come up with a partial or empty store.
	ErrEmptyDataset = errors.New("dataset is empty or missing")
)

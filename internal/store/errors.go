package store

import "errors"

var (
	// ErrRecordNotFound indicates the requested id is absent from the
	// named store.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMissingID indicates a Put value without a non-empty "id" key.
	ErrMissingID = errors.New("value has no id field")

	// ErrUnknownIndex indicates a GetAllByIndex call with an index name
	// that has no backing column.
	ErrUnknownIndex = errors.New("unknown index")
)

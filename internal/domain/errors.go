package domain

import "errors"

var (
	// ErrStoreUnavailable marks a failure to reach one of the record stores.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrPartitionIO marks a read or write failure on a findings partition.
	ErrPartitionIO = errors.New("partition i/o failure")
	// ErrCorruptPartition marks previously persisted findings that cannot be decoded.
	ErrCorruptPartition = errors.New("corrupt partition")
	// ErrMissingPaidStatus is returned when the terminal paid status token is not configured.
	ErrMissingPaidStatus = errors.New("terminal paid status is not configured")
)

package apply

import "errors"

var (
	// ErrHeader reports a unified/context file header without a path and date.
	ErrHeader = errors.New("could not recognize file header")
	// ErrNoDestination reports that no file to patch could be determined.
	ErrNoDestination = errors.New("could not recognize destination/output file")
	// ErrBackupNotFile reports a backup request for something that is not a regular file.
	ErrBackupNotFile = errors.New("path to backup is not a file")
	// ErrUnsupported reports an unsupported format/direction combination.
	ErrUnsupported = errors.New("unsupported patch operation")
	// ErrOutOfRange reports a hunk referencing a line past the end of the source file.
	ErrOutOfRange = errors.New("hunk line out of range")
	// ErrOverlap reports a hunk starting before the end of the previous one.
	ErrOverlap = errors.New("overlapping hunks")
)

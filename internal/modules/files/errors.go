package files

import "errors"

// Error messages double as API bodies, so they keep the wire wording.
var (
	ErrMissingName     = errors.New("Missing name")
	ErrMissingType     = errors.New("Missing type")
	ErrMissingData     = errors.New("Missing data")
	ErrParentNotFound  = errors.New("Parent not found")
	ErrParentNotFolder = errors.New("Parent is not a folder")
	ErrNotFound        = errors.New("Not found")
	ErrFolderNoContent = errors.New("A folder doesn't have content")
)

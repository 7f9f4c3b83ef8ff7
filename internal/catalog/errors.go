package catalog

import "errors"

// ErrNoContent is returned when none of the given paths holds a content file.
var ErrNoContent = errors.New("no content files found")

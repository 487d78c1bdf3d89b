package sections

import "errors"

// ErrSectionNotFound - site section not found in DB
var ErrSectionNotFound = errors.New("site section not found")

// ErrTitleTaken is returned when the title unique constraint is violated.
var ErrTitleTaken = errors.New("site section title already exists")

// ErrDuplicate is the repository-level unique constraint signal.
var ErrDuplicate = errors.New("duplicate key")

// ErrCreateSectionsRepo is returned when sections repository creation fails.
var ErrCreateSectionsRepo = errors.New("failed to create site sections repository")

package repository

import "errors"

// Store-level errors. Not-found conditions on reads come back as nil
// results instead; these cover mutations and invariant violations.
var (
	ErrEmptyTitle        = errors.New("category title is empty")
	ErrDuplicateCategory = errors.New("category with this title already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateRecord   = errors.New("record for this tracker and day already exists")
	ErrRecordNotFound    = errors.New("record not found")
)

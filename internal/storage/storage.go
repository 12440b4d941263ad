package storage

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNoCurrentVersion = errors.New("no current version for subject")
)

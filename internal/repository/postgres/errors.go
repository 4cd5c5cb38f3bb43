package postgres

import "github.com/pkg/errors"

var (
	ErrNotFound   = errors.New("row not found")
	ErrEmailTaken = errors.New("user with this email already exists")
)

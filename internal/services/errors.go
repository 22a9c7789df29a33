package services

import "errors"

var (
	ErrEmptyContent  = errors.New("content is empty")
	ErrUsernameTaken = errors.New("username already exists")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrNotOwner      = errors.New("not the owner")
	ErrNotMember     = errors.New("not a member of the community")
)

package service

import "errors"

var (
	ErrForbidden      = errors.New("not the owner")
	ErrBlogNotFound   = errors.New("blog not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrSelfAction     = errors.New("cannot target yourself")
	ErrInvalidAction  = errors.New("invalid recommendation action")
	ErrNotFound       = errors.New("record not found")
)

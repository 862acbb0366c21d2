package backend

import "errors"

var (
	ErrSchemeNotRegistered = errors.New("scheme was not registered")
	ErrInvalidParameter    = errors.New("invalid destination parameter")
)

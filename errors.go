package locale

import "errors"

var (
	ErrInvalidSubtag      = errors.New("locale: malformed extension subtag")
	ErrUnknownKey         = errors.New("locale: unknown unicode extension key")
	ErrDuplicateExtension = errors.New("locale: duplicate extension sequence")
	ErrDuplicateKeyword   = errors.New("locale: duplicate keyword")
	ErrDuplicateAttribute = errors.New("locale: duplicate attribute")
	ErrDuplicatePrivate   = errors.New("locale: duplicate private-use token")
	ErrUnexpectedEnd      = errors.New("locale: unexpected end of extension sequence")
)

package langid

import "errors"

var (
	ErrEmptyTag        = errors.New("langid: empty language identifier")
	ErrInvalidLanguage = errors.New("langid: invalid language subtag")
	ErrInvalidScript   = errors.New("langid: invalid script subtag")
	ErrInvalidRegion   = errors.New("langid: invalid region subtag")
	ErrInvalidVariant  = errors.New("langid: invalid variant subtag")
	ErrTrailingSubtags = errors.New("langid: unexpected trailing subtags")
)

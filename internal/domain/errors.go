package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file is empty")
	ErrNoPages             = errors.New("document produced no pages")
	ErrOCRFailed           = errors.New("text recognition failed")
	ErrRasterizeFailed     = errors.New("pdf rasterization failed")
	ErrInvalidSocialNumber = errors.New("social number must be 13 digits")
	ErrDuplicateCounselor  = errors.New("counselor already registered")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)

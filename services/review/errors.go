package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("you have already reviewed this doctor")
	ErrInvalidInput   = errors.New("invalid review")
	ErrForbidden      = errors.New("only the author or an admin may change this review")
	ErrUnknownDoctor  = errors.New("doctor not found")
)

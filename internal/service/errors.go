package service

import "errors"

var ErrSubjectRequired = errors.New("subject is required")

package storage

import "errors"

var ErrCorruptDocument = errors.New("stored document could not be decoded")

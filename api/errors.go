package api

import "errors"

// ErrorDeadIndex index is destroyed.
var ErrorDeadIndex = errors.New("index.dead")

// ErrorKeyMissing key is not present in index.
var ErrorKeyMissing = errors.New("index.keymissing")

// ErrorInvalidSettings settings parameter has an unacceptable value.
var ErrorInvalidSettings = errors.New("settings.invalid")

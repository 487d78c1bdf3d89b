package settings

import "errors"

// ErrSettingNotFound - setting not found in DB
var ErrSettingNotFound = errors.New("setting not found")

// ErrSectionNotFound is returned when the referenced site section title
// does not resolve to an existing section.
var ErrSectionNotFound = errors.New("site section not found")

// ErrCreateSettingsRepo is returned when settings repository creation fails.
var ErrCreateSettingsRepo = errors.New("failed to create settings repository")

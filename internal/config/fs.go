package config

import (
	"errors"
	"io/fs"
)

// viper reports an explicit SetConfigFile that does not exist as a plain fs error.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

package settings

import (
	"sort"
	"strconv"

	"github.com/Belphemur/ReaderSettings/internal/apperrors"
)

type option struct {
	get func(s *Settings) string
	set func(s *Settings, value string) error // nil for read-only options
}

var options = map[string]option{
	KeyUILanguage: {
		get: func(s *Settings) string { return s.UILanguage() },
		set: func(s *Settings, value string) error {
			if value == "" {
				return apperrors.NewInvalidValueError(KeyUILanguage, value, nil)
			}
			s.SetUILanguage(value)
			return nil
		},
	},
	KeyDownloadMedia: {
		get: func(s *Settings) string { return strconv.FormatBool(s.DownloadMedia()) },
		set: func(s *Settings, value string) error {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return apperrors.NewInvalidValueError(KeyDownloadMedia, value, err)
			}
			s.SetDownloadMedia(v)
			return nil
		},
	},
	KeyLockTimeout: {
		get: func(s *Settings) string { return strconv.Itoa(s.LockTimeout()) },
	},
	KeyFontSizeAdjustment: {
		get: func(s *Settings) string { return strconv.FormatFloat(s.FontSizeAdjustment(), 'g', -1, 64) },
		set: func(s *Settings, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return apperrors.NewInvalidValueError(KeyFontSizeAdjustment, value, err)
			}
			s.SetFontSizeAdjustment(v)
			return nil
		},
	},
}

// Options returns the sorted keys of every recognized option.
func Options() []string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the text form of the option stored under key.
func (s *Settings) Get(key string) (string, error) {
	opt, ok := options[key]
	if !ok {
		return "", apperrors.NewUnknownOptionError(key)
	}
	return opt.get(s), nil
}

// Set parses value for the option stored under key and applies it through the typed setter.
func (s *Settings) Set(key, value string) error {
	opt, ok := options[key]
	if !ok {
		return apperrors.NewUnknownOptionError(key)
	}
	if opt.set == nil {
		return apperrors.NewReadOnlyOptionError(key)
	}
	return opt.set(s, value)
}

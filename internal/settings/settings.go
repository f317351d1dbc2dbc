// Package settings holds the reader's user preferences: UI language, media
// download policy, session lock timeout and font scaling.
//
// A single Settings is built at process start from a storage.Store and passed
// to every consumer. It keeps no copy of the values: every getter reads the
// store and every setter writes it, so a value written by any Settings, any
// process or any other writer sharing the store is seen by the next getter.
package settings

import (
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/Belphemur/ReaderSettings/internal/metrics"
	"github.com/Belphemur/ReaderSettings/internal/storage"
)

// Persisted keys, one per option.
const (
	KeyUILanguage         = "ui_language"
	KeyDownloadMedia      = "download_media"
	KeyLockTimeout        = "lock_timeout"
	KeyFontSizeAdjustment = "font_size_adjustment"
)

// Record is the typed view of every option.
type Record struct {
	UILanguage         string  `json:"ui_language"`
	DownloadMedia      bool    `json:"download_media"`
	LockTimeout        int     `json:"lock_timeout"` // seconds
	FontSizeAdjustment float64 `json:"font_size_adjustment"`
}

// Defaults are returned for options that are absent from the store or hold a
// value that does not decode.
type Defaults Record

// DefaultDefaults mirror the application configuration defaults.
var DefaultDefaults = Defaults{
	UILanguage:         "en",
	DownloadMedia:      true,
	LockTimeout:        300,
	FontSizeAdjustment: 0,
}

// Settings is the preference store.
type Settings struct {
	store    storage.Store
	defaults Defaults
	logger   zerolog.Logger
}

// New returns a Settings reading and writing store.
func New(store storage.Store, defaults Defaults, logger zerolog.Logger) *Settings {
	s := &Settings{
		store:    store,
		defaults: defaults,
		logger:   logger.With().Str("component", "settings").Logger(),
	}
	s.logger.Debug().Int("persisted", store.Len()).Msg("Preferences opened")
	return s
}

func (s *Settings) warnDecode(key string, raw []byte, err error) {
	s.logger.Warn().Err(err).Str("option", key).Str("value", string(raw)).Msg("Invalid persisted value, using default")
}

// persist writes the encoded value through to the store.
func (s *Settings) persist(key, value string) {
	s.store.Set(key, []byte(value))
	metrics.SettingsWritesTotal.WithLabelValues(key).Inc()
}

// UILanguage returns the configured language code. An empty stored code counts as unset.
func (s *Settings) UILanguage() string {
	if raw, ok := s.store.Get(KeyUILanguage); ok && len(raw) > 0 {
		return string(raw)
	}
	return s.defaults.UILanguage
}

// SetUILanguage stores code as given; well-formedness is not checked.
func (s *Settings) SetUILanguage(code string) {
	s.persist(KeyUILanguage, code)
}

// LanguageTag parses the UI language, returning language.Und when the code is not a valid BCP 47 tag.
func (s *Settings) LanguageTag() language.Tag {
	tag, err := language.Parse(s.UILanguage())
	if err != nil {
		return language.Und
	}
	return tag
}

// DownloadMedia reports whether media is fetched without waiting for a tap.
func (s *Settings) DownloadMedia() bool {
	raw, ok := s.store.Get(KeyDownloadMedia)
	if !ok {
		return s.defaults.DownloadMedia
	}
	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		s.warnDecode(KeyDownloadMedia, raw, err)
		return s.defaults.DownloadMedia
	}
	return v
}

// SetDownloadMedia enables or disables automatic media download.
func (s *Settings) SetDownloadMedia(enabled bool) {
	s.persist(KeyDownloadMedia, strconv.FormatBool(enabled))
}

// LockTimeout returns the session lock timeout in seconds. It has no setter:
// the value comes from the defaults or from whatever wrote the store directly.
func (s *Settings) LockTimeout() int {
	raw, ok := s.store.Get(KeyLockTimeout)
	if !ok {
		return s.defaults.LockTimeout
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		s.warnDecode(KeyLockTimeout, raw, err)
		return s.defaults.LockTimeout
	}
	return v
}

// FontSizeAdjustment returns the font scale adjustment.
func (s *Settings) FontSizeAdjustment() float64 {
	raw, ok := s.store.Get(KeyFontSizeAdjustment)
	if !ok {
		return s.defaults.FontSizeAdjustment
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		s.warnDecode(KeyFontSizeAdjustment, raw, err)
		return s.defaults.FontSizeAdjustment
	}
	return v
}

// SetFontSizeAdjustment stores value without clamping.
func (s *Settings) SetFontSizeAdjustment(value float64) {
	s.persist(KeyFontSizeAdjustment, strconv.FormatFloat(value, 'g', -1, 64))
}

// Snapshot reads every option. Options are read one by one, so a concurrent
// writer may land between two reads.
func (s *Settings) Snapshot() Record {
	return Record{
		UILanguage:         s.UILanguage(),
		DownloadMedia:      s.DownloadMedia(),
		LockTimeout:        s.LockTimeout(),
		FontSizeAdjustment: s.FontSizeAdjustment(),
	}
}

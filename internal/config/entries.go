package config

import (
	"github.com/sandevgo/ragconf/pkg/env"
)

const settingTag = "setting"

// Entries lists the redacted settings as display key/value pairs in field order.
func (s *Settings) Entries() []env.Entry {
	entries, err := env.Entries(s.Redacted(), settingTag)
	if err != nil {
		// Settings is always a struct
		panic(err)
	}
	return entries
}

// DotEnv renders the redacted, non-empty settings in .env format.
func (s *Settings) DotEnv() (string, error) {
	return env.MarshalEnv(s.Redacted(), settingTag)
}

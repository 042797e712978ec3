package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// FieldError describes one invalid setting.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate reports every inconsistent setting at once. Loading never calls it;
// an empty API key is not an error here, see HasAPIKey.
func (s *Settings) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(s.Model) == "" {
		add("ANTHROPIC_MODEL", "must not be empty")
	}
	if err := checkBaseURL(s.BaseURL); err != nil {
		add("OPENROUTER_BASE_URL", "%v", err)
	}
	if strings.TrimSpace(s.EmbeddingModel) == "" {
		add("EMBEDDING_MODEL", "must not be empty")
	}

	if s.ChunkSize <= 0 {
		add("CHUNK_SIZE", "must be positive, got %d", s.ChunkSize)
	}
	switch {
	case s.ChunkOverlap < 0:
		add("CHUNK_OVERLAP", "must not be negative, got %d", s.ChunkOverlap)
	case s.ChunkOverlap >= s.ChunkSize && s.ChunkSize > 0:
		add("CHUNK_OVERLAP", "must be less than CHUNK_SIZE (%d), got %d", s.ChunkSize, s.ChunkOverlap)
	}

	if s.MaxResults <= 0 {
		add("MAX_RESULTS", "must be positive, got %d", s.MaxResults)
	}
	if s.MaxHistory < 0 {
		add("MAX_HISTORY", "must not be negative, got %d", s.MaxHistory)
	}
	if strings.TrimSpace(s.ChromaPath) == "" {
		add("CHROMA_PATH", "must not be empty")
	}

	return errors.Join(errs...)
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// FieldErrors unpacks the problems reported by Validate.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}

	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}

package config

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/sandevgo/ragconf/internal/core"
	"github.com/sandevgo/ragconf/pkg/log"
)

var (
	_ core.ProviderConfig  = (*Settings)(nil)
	_ core.EmbeddingConfig = (*Settings)(nil)
	_ core.ChunkingConfig  = (*Settings)(nil)
	_ core.RetrievalConfig = (*Settings)(nil)
	_ core.StorageConfig   = (*Settings)(nil)
)

// APIKeyVar is the only environment variable the settings loader reads.
const APIKeyVar = "OPENROUTER_API_KEY"

const (
	DefaultModel          = "anthropic/claude-3.5-sonnet"
	DefaultBaseURL        = "https://openrouter.ai/api/v1"
	DefaultEmbeddingModel = "all-MiniLM-L6-v2"
	DefaultChunkSize      = 800
	DefaultChunkOverlap   = 100
	DefaultMaxResults     = 5
	DefaultMaxHistory     = 2
	DefaultChromaPath     = "./chroma_db"
)

// Settings is the configuration of the RAG application. It is built once at
// process entry and treated as read-only afterwards.
//
// Only APIKey carries an env tag; every other field always holds its default.
// The setting tag names each field for display and dotenv output.
type Settings struct {
	// OpenRouter credentials and the Anthropic model served through it
	APIKey  string `env:"OPENROUTER_API_KEY" setting:"OPENROUTER_API_KEY"`
	Model   string `setting:"ANTHROPIC_MODEL"`
	BaseURL string `setting:"OPENROUTER_BASE_URL"`

	EmbeddingModel string `setting:"EMBEDDING_MODEL"`

	// Document processing
	ChunkSize    int `setting:"CHUNK_SIZE"`    // characters per chunk
	ChunkOverlap int `setting:"CHUNK_OVERLAP"` // characters shared by adjacent chunks
	MaxResults   int `setting:"MAX_RESULTS"`   // search results per query
	MaxHistory   int `setting:"MAX_HISTORY"`   // conversation messages kept

	// Vector store location
	ChromaPath string `setting:"CHROMA_PATH"`
}

// Defaults returns the settings with every field at its literal default.
func Defaults() Settings {
	return Settings{
		Model:          DefaultModel,
		BaseURL:        DefaultBaseURL,
		EmbeddingModel: DefaultEmbeddingModel,
		ChunkSize:      DefaultChunkSize,
		ChunkOverlap:   DefaultChunkOverlap,
		MaxResults:     DefaultMaxResults,
		MaxHistory:     DefaultMaxHistory,
		ChromaPath:     DefaultChromaPath,
	}
}

// LoadFrom builds Settings from the given environment. The API key is taken
// verbatim when present and left empty otherwise. No validation is done here.
// A nil environ is treated as empty, not as the process environment.
func LoadFrom(environ map[string]string) (*Settings, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	s := Defaults()
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewSettings loads Settings from the process environment. Call it after any
// .env file has been applied.
func NewSettings(ctx context.Context) *Settings {
	logger := log.FromCtx(ctx)

	s, err := LoadFrom(env.ToMap(os.Environ()))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse settings")
	}

	logger.Debug().Object("settings", s).Msg("settings loaded")
	return s
}

func (s *Settings) HasAPIKey() bool {
	return s.APIKey != ""
}

// Redacted returns a copy that is safe to print or log.
func (s *Settings) Redacted() Settings {
	c := *s
	c.APIKey = RedactSecret(s.APIKey)
	return c
}

// MarshalZerologObject never emits the raw API key.
func (s *Settings) MarshalZerologObject(e *zerolog.Event) {
	e.Str("api_key", RedactSecret(s.APIKey)).
		Str("model", s.Model).
		Str("base_url", s.BaseURL).
		Str("embedding_model", s.EmbeddingModel).
		Int("chunk_size", s.ChunkSize).
		Int("chunk_overlap", s.ChunkOverlap).
		Int("max_results", s.MaxResults).
		Int("max_history", s.MaxHistory).
		Str("chroma_path", s.ChromaPath)
}

// Prefix and suffix runes kept by RedactSecret, and how many must stay hidden
// between them before anything is shown.
const (
	redactPrefix    = 6
	redactSuffix    = 4
	redactMinHidden = 5
)

// RedactSecret masks a secret for display, keeping a short prefix and suffix
// of long values so operators can tell keys apart.
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}

	runes := []rune(secret)
	if len(runes) < redactPrefix+redactSuffix+redactMinHidden {
		return "****"
	}
	return string(runes[:redactPrefix]) + "..." + string(runes[len(runes)-redactSuffix:])
}

func (s *Settings) GetAPIKey() string         { return s.APIKey }
func (s *Settings) GetModel() string          { return s.Model }
func (s *Settings) GetBaseURL() string        { return s.BaseURL }
func (s *Settings) GetEmbeddingModel() string { return s.EmbeddingModel }
func (s *Settings) GetChunkSize() int         { return s.ChunkSize }
func (s *Settings) GetChunkOverlap() int      { return s.ChunkOverlap }
func (s *Settings) GetMaxResults() int        { return s.MaxResults }
func (s *Settings) GetMaxHistory() int        { return s.MaxHistory }
func (s *Settings) GetChromaPath() string     { return s.ChromaPath }

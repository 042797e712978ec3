package core

// ProviderConfig is what an LLM client needs to reach the OpenRouter API.
type ProviderConfig interface {
	GetAPIKey() string
	GetModel() string
	GetBaseURL() string
}

type EmbeddingConfig interface {
	GetEmbeddingModel() string
}

// ChunkingConfig sizes are measured in characters.
type ChunkingConfig interface {
	GetChunkSize() int
	GetChunkOverlap() int
}

type RetrievalConfig interface {
	GetMaxResults() int
	GetMaxHistory() int
}

type StorageConfig interface {
	GetChromaPath() string
}

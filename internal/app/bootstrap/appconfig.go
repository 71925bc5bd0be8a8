// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (ports, TLS, log level); AppConfig is everything
// specific to Postdeck.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity token verification
	TokenHMACSecret string // Shared HMAC secret used to verify bearer identity tokens

	// Ingest surface
	//
	// The post-create and post-status routes are deliberately callable
	// without a bearer token (they serve a trusted automation caller).
	// When IngestKeyHash is set, those routes require an X-Ingest-Key
	// header matching this bcrypt hash; when blank they stay open.
	IngestKeyHash string

	// PostListLimit caps GET /api/posts results.
	PostListLimit int
}

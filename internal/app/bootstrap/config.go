// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Postdeck.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_hmac_secret, etc.
//   - Environment variables: POSTDECK_MONGO_URI, POSTDECK_TOKEN_HMAC_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_hmac_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "postdeck", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity token verification
	{Name: "token_hmac_secret", Default: "", Desc: "HMAC secret for verifying bearer identity tokens (required)"},

	// Ingest surface
	{Name: "ingest_key_hash", Default: "", Desc: "bcrypt hash of the ingest key; blank leaves the ingest routes open"},

	// Listing
	{Name: "post_list_limit", Default: 10, Desc: "Maximum number of posts returned by GET /api/posts"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, POSTDECK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "POSTDECK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenHMACSecret: appValues.String("token_hmac_secret"),
		IngestKeyHash:   appValues.String("ingest_key_hash"),
		PostListLimit:   appValues.Int("post_list_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Postdeck validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and refuses to start without a
// token secret since every protected route depends on it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenHMACSecret == "" {
		return fmt.Errorf("token_hmac_secret must be set (bearer tokens cannot be verified without it)")
	}

	if appCfg.PostListLimit < 1 {
		return fmt.Errorf("post_list_limit must be at least 1, got %d", appCfg.PostListLimit)
	}

	return nil
}

// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS, body limits);
// AppConfig is everything specific to the announcements service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bootstrap teacher seeding. Without at least one teacher directory
	// entry, no write operation can ever be authorized, so a fresh
	// deployment can seed one at startup.
	SeedTeacherUsername string // Username to upsert into the directory (blank disables seeding)
	SeedTeacherName     string // Display name for the seeded teacher
}

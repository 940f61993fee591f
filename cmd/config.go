package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for PostgreSQL
	viper.BindEnv("postgres.host", "POSTGRES_HOST")
	viper.BindEnv("postgres.port", "POSTGRES_PORT")
	viper.BindEnv("postgres.user", "POSTGRES_USER")
	viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	viper.BindEnv("postgres.db", "POSTGRES_DB")

	// Map environment variables to Viper keys for the server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.BindEnv("server.request_timeout", "SERVER_REQUEST_TIMEOUT")

	// Map environment variables to Viper keys for the identity provider
	viper.BindEnv("identity.mode", "IDENTITY_MODE")
	viper.BindEnv("identity.url", "IDENTITY_URL")
	viper.BindEnv("identity.dev_token", "IDENTITY_DEV_TOKEN")
	viper.BindEnv("identity.dev_owner", "IDENTITY_DEV_OWNER")

	// Set default values for PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.db", "jobtrack")

	// Set default values for the server
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")
	viper.SetDefault("server.request_timeout", "15s")

	// Set default values for the identity provider. The "static" mode
	// resolves a single dev token to a single owner and exists for local
	// development only; production must set identity.mode=remote.
	viper.SetDefault("identity.mode", "static")
	viper.SetDefault("identity.url", "http://localhost:9100")
	viper.SetDefault("identity.dev_token", "dev-token")
	viper.SetDefault("identity.dev_owner", "user_dev_owner")

	// Set default values for seeding
	viper.BindEnv("seed.owner", "SEED_OWNER")
	viper.SetDefault("seed.owner", "user_dev_owner")
}

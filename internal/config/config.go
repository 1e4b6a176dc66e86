package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Database     DatabaseConfig     `mapstructure:"database" validate:"required"`
	Auth         AuthConfig         `mapstructure:"auth" validate:"required"`
	Notification NotificationConfig `mapstructure:"notification" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// NotificationConfig contains the settings for the status-change
// notification pipeline.
type NotificationConfig struct {
	// DefaultChannel selects the delivery strategy used for status-change
	// notifications: "email" or "webpush".
	DefaultChannel string `mapstructure:"default_channel" validate:"required,oneof=email webpush"`

	// QueueSize bounds the in-process event queue between the task
	// service and the notifier worker.
	QueueSize int `mapstructure:"queue_size" validate:"required,gt=0"`

	// MaxAttempts caps delivery retries before an event is dropped.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gt=0"`

	// EmailFrom is the sender address for email notifications.
	EmailFrom string `mapstructure:"email_from" validate:"omitempty,email"`

	// VAPID key pair and subscriber contact for web push. Empty keys
	// disable the webpush strategy at delivery time.
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	VAPIDContact    string `mapstructure:"vapid_contact"`
}

package constants

import "time"

const (
	AppName            = "flowmind"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/flowmind/flowmind.db"
	Version            = "v0.1.0"

	// EnvDBConnection names the environment variable consulted for a
	// PostgreSQL connection string when the keyring has none.
	EnvDBConnection = "FLOWMIND_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Recommendation constants
	DefaultRecommendationLimit = 3
	MaxPostponementPressure    = 3
	PostponeWarningThreshold   = 2

	// Notify constants
	NotifierLockfileName   = "flowmind-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.flowmind"
	TrayExecutablePrefix   = "flowmind-tray"
	NotifySecretHeader     = "X-Flowmind-Secret"

	// TickInterval is the resolution of the focus timer countdown.
	TickInterval = time.Second
)

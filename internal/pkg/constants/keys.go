package constants

const (
	CookieKeySecretToken = "secret_token"

	CtxKeyRequestID = "request_id"
)

const (
	ViperServerAddrKey         = "server.addr"
	ViperServerAllowOriginsKey = "server.allow_origins"

	ViperStorageDriverKey = "storage.driver"

	ViperPostgresDSNKey            = "postgres.dsn"
	ViperPostgresConnectRetriesKey = "postgres.connect_retries"

	ViperLogLevelKey = "log.level"
	ViperLogModeKey  = "log.mode"

	ViperSecretKey     = "auth.secret"
	ViperSigningKeyKey = "auth.signing_key"

	ViperBSTIntervalKey     = "bst.default_interval"
	ViperBSTPressureTypeKey = "bst.default_pressure_type"
	ViperBSTMaxPressureKey  = "bst.default_max_pressure"
	ViperBSTReversibleKey   = "bst.default_reversible"

	ViperRecomputeConcurrencyKey = "recompute.concurrency"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

package achievement

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read achievements file: %w"
	ErrMsgParseCatalogFailed = "failed to parse achievements: %w"
	ErrMsgEmptyKey           = "achievement at index %d has an empty key"
	ErrMsgDuplicateKey       = "duplicate achievement key %q"
	ErrMsgUnknownMetric      = "achievement %q uses unknown metric %q"
	ErrMsgBadThreshold       = "achievement %q needs a positive threshold"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Achievement catalog loaded"
)

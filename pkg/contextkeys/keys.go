package contextkeys

type contextKey string

const (
	RequestIDKey contextKey = "RequestID"
	LoggerKey    contextKey = "Logger"
)

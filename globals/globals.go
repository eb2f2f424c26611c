package globals

import "os"

var (
	JwtSecret = []byte(jwtSecretFromEnv())
)

func jwtSecretFromEnv() string {
	if s := os.Getenv("VIGOVIA_JWT_SECRET"); s != "" {
		return s
	}
	return "dev-only-session-secret"
}

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

package config

import (
	"os"
	"strconv"
	"time"
)

// Store mode values for TOUR_STORE.
const (
	StoreFirestore = "firestore"
	StoreProxy     = "proxy"
)

type Config struct {
	// Server
	ServerPort string
	ServerEnv  string

	// Tour store selection: "firestore" (default) or "proxy" for the
	// local JSON server. Selection is configuration, not logic; nothing
	// outside main branches on it.
	TourStore    string
	ProxyBaseURL string
	FetchTimeout time.Duration
	CacheTTL     time.Duration

	// Firebase
	FirebaseCredentialsPath string
	FirebaseProjectID       string

	// JWT (local-mode bearer tokens)
	JWTSecretKey string

	// SigNoz
	SigNozEndpoint string
}

func Load() *Config {
	return &Config{
		// Server
		ServerPort: getEnv("SERVER_PORT", "3001"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),

		// Tour store
		TourStore:    getEnv("TOUR_STORE", StoreFirestore),
		ProxyBaseURL: getEnv("PROXY_BASE_URL", "http://localhost:3002"),
		FetchTimeout: time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
		CacheTTL:     time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		// Firebase
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),

		// JWT
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),

		// SigNoz
		SigNozEndpoint: getEnv("SIGNOZ_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package app

import (
	"strings"
	"time"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
	"github.com/yungbote/neowatch-backend/internal/utils"
)

type Config struct {
	NasaAPIKey     string
	NasaBaseURL    string
	NasaTimeout    time.Duration
	CacheTTL       time.Duration
	JWTSecretKey   string
	CorsOrigins    []string
	RiskConfigPath string
	RiskWeights    neo.RiskWeights
}

func LoadConfig(log *logger.Logger) Config {
	nasaAPIKey := utils.GetEnv("NASA_API_KEY", "DEMO_KEY", log)
	nasaBaseURL := utils.GetEnv("NASA_BASE_URL", "https://api.nasa.gov/neo/rest/v1", log)
	nasaTimeoutSeconds := utils.GetEnvAsInt("NASA_TIMEOUT", 30, log)
	cacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL", 900, log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	corsOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	riskConfigPath := utils.GetEnv("RISK_CONFIG_PATH", "", log)

	weights, err := neo.LoadRiskWeights(riskConfigPath)
	if err != nil {
		log.Warn("Failed to load risk weight overrides, using defaults", "path", riskConfigPath, "error", err)
		weights = neo.DefaultRiskWeights()
	}

	return Config{
		NasaAPIKey:     nasaAPIKey,
		NasaBaseURL:    nasaBaseURL,
		NasaTimeout:    time.Duration(nasaTimeoutSeconds) * time.Second,
		CacheTTL:       time.Duration(cacheTTLSeconds) * time.Second,
		JWTSecretKey:   jwtSecretKey,
		CorsOrigins:    splitOrigins(corsOrigins),
		RiskConfigPath: riskConfigPath,
		RiskWeights:    weights,
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

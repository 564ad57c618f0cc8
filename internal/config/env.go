package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr    string
	GinMode    string
	APIBaseURL string
	// SessionDSN selects the MySQL session store; empty keeps sessions
	// in memory.
	SessionDSN           string
	CORSOrigins          []string
	CardSurchargePercent float64
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	apiBase := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if apiBase == "" {
		apiBase = "http://localhost:5000/api"
	}

	surcharge := 0.0
	if raw := strings.TrimSpace(os.Getenv("CARD_SURCHARGE_PERCENT")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			surcharge = v
		}
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:              appAddr,
		GinMode:              strings.TrimSpace(os.Getenv("GIN_MODE")),
		APIBaseURL:           apiBase,
		SessionDSN:           strings.TrimSpace(os.Getenv("SESSION_DSN")),
		CORSOrigins:          origins,
		CardSurchargePercent: surcharge,
	}
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServicePort     string
	MetricsPort     string
	LogLevel        string
	Partners        map[string]string
	PartnerTimezone string
	PolicyConfig    PolicyConfig
	KafkaConfig     KafkaConfig
	TracingConfig   TracingConfig
}

// PolicyConfig holds the security checks that can be switched on or off.
// Both are off unless explicitly enabled.
type PolicyConfig struct {
	EnforceTimestampSkew bool
	TimestampSkewMinutes int
	EnforceSignature     bool
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

const (
	DefaultTimestampSkewMinutes = 5
	DefaultPartnerTimezone      = "Asia/Kuala_Lumpur"
)

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:     getenv("SERVICE_PORT", "8080"),
		MetricsPort:     getenv("METRICS_PORT", "9090"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		Partners:        ParsePartnerCredentials(os.Getenv("PARTNER_CREDENTIALS")),
		PartnerTimezone: getenv("PARTNER_TIMEZONE", DefaultPartnerTimezone),
		PolicyConfig: PolicyConfig{
			EnforceTimestampSkew: getbool("ENFORCE_TIMESTAMP_SKEW", false),
			TimestampSkewMinutes: getint("TIMESTAMP_SKEW_MINUTES", DefaultTimestampSkewMinutes),
			EnforceSignature:     getbool("ENFORCE_SIGNATURE", false),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getenv("BROKER_TOPIC", "settlement.transactions"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

// ParsePartnerCredentials reads "KEY:secret,KEY2:secret2". Entries without a
// key, a separator or a secret are skipped. Whitespace around the key and the
// secret is trimmed. The secret may itself contain ':'.
func ParsePartnerCredentials(raw string) map[string]string {
	partners := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, secret, ok := strings.Cut(entry, ":")
		key = strings.TrimSpace(key)
		secret = strings.TrimSpace(secret)
		if !ok || key == "" || secret == "" {
			log.Warn().Str("component", "ParsePartnerCredentials").Msg("skipping malformed partner entry")
			continue
		}

		partners[key] = secret
	}

	return partners
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

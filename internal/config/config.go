package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreRedis    = "redis"

	SinkNone  = "none"
	SinkKafka = "kafka"
	SinkNats  = "nats"
)

// Config is the process configuration, read from the environment (and an
// optional .env file).
type Config struct {
	Port string

	BackendBaseURL string
	BackendTimeout time.Duration

	// JWTSecret is the HS256 key the storefront signs shopper tokens with.
	JWTSecret string

	DPFractionDefault decimal.Decimal
	DPFractionByLine  map[string]decimal.Decimal
	MaxLineQuantity   int

	ReconciliationStore string
	ReconciliationTable string
	ReconciliationTTL   time.Duration
	RedisAddr           string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	PaymentSessionTimeout time.Duration
	ConfirmPollAttempts   int
	ConfirmPollInterval   time.Duration

	EventsSink   string
	KafkaBrokers []string
	KafkaTopic   string
	NatsURL      string

	MercadoPagoAccessToken string
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] .env not loaded err=%v", err)
	}

	var (
		cfg  Config
		errs []error
	)
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg.Port = getenvDefault("APP_PORT", "8080")
	cfg.BackendBaseURL = strings.TrimSpace(os.Getenv("BACKEND_BASE_URL"))

	var err error
	cfg.BackendTimeout, err = durationEnv("BACKEND_TIMEOUT", 15*time.Second)
	collect(err)
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	cfg.DPFractionDefault, err = decimal.NewFromString(getenvDefault("DP_FRACTION_DEFAULT", "0.5"))
	if err != nil {
		collect(fmt.Errorf("DP_FRACTION_DEFAULT: %w", err))
	}
	cfg.DPFractionByLine, err = ParseFractionsByLine(os.Getenv("DP_FRACTION_BY_LINE"))
	collect(err)
	cfg.MaxLineQuantity, err = intEnv("MAX_LINE_QUANTITY", 10000)
	collect(err)

	cfg.ReconciliationStore = strings.ToLower(getenvDefault("RECONCILIATION_STORE", StoreDynamoDB))
	cfg.ReconciliationTable = getenvDefault("RECONCILIATION_TABLE", "checkout_reconciliation")
	cfg.ReconciliationTTL, err = durationEnv("RECONCILIATION_TTL", 24*time.Hour)
	collect(err)
	cfg.RedisAddr = getenvDefault("REDIS_ADDR", "localhost:6379")

	// Local DynamoDB does not validate credentials, but the SDK requires them.
	cfg.AWSRegion = getenvDefault("AWS_REGION", "us-east-1")
	cfg.AWSAccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", "local")
	cfg.AWSSecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", "local")
	cfg.DynamoDBEndpoint = strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT"))

	cfg.PaymentSessionTimeout, err = durationEnv("PAYMENT_SESSION_TIMEOUT", 30*time.Minute)
	collect(err)
	cfg.ConfirmPollAttempts, err = intEnv("CONFIRM_POLL_ATTEMPTS", 3)
	collect(err)
	cfg.ConfirmPollInterval, err = durationEnv("CONFIRM_POLL_INTERVAL", 2*time.Second)
	collect(err)

	cfg.EventsSink = strings.ToLower(getenvDefault("EVENTS_SINK", SinkNone))
	cfg.KafkaBrokers = splitList(getenvDefault("KAFKA_BROKERS", "localhost:9092"))
	cfg.KafkaTopic = getenvDefault("KAFKA_TOPIC", "checkout.events")
	cfg.NatsURL = getenvDefault("NATS_URL", "nats://localhost:4222")

	cfg.MercadoPagoAccessToken = strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.BackendBaseURL == "" {
		errs = append(errs, errors.New("BACKEND_BASE_URL is required"))
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if !c.DPFractionDefault.IsPositive() || c.DPFractionDefault.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("DP_FRACTION_DEFAULT must be between 0 and 1 exclusive (got %s)", c.DPFractionDefault))
	}
	switch c.ReconciliationStore {
	case StoreDynamoDB, StoreRedis:
	default:
		errs = append(errs, fmt.Errorf("RECONCILIATION_STORE must be %s or %s (got %q)", StoreDynamoDB, StoreRedis, c.ReconciliationStore))
	}
	switch c.EventsSink {
	case SinkNone, SinkKafka, SinkNats:
	default:
		errs = append(errs, fmt.Errorf("EVENTS_SINK must be none, kafka or nats (got %q)", c.EventsSink))
	}
	if c.EventsSink == SinkKafka && len(c.KafkaBrokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when EVENTS_SINK=kafka"))
	}
	if c.PaymentSessionTimeout <= 0 {
		errs = append(errs, errors.New("PAYMENT_SESSION_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// ParseFractionsByLine parses "seragam=0.3,kaos=0.4".
func ParseFractionsByLine(raw string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, pair := range splitList(raw) {
		line, value, ok := strings.Cut(pair, "=")
		line = strings.TrimSpace(line)
		if !ok || line == "" {
			return nil, fmt.Errorf("DP_FRACTION_BY_LINE: malformed entry %q", pair)
		}
		f, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("DP_FRACTION_BY_LINE: %s: %w", line, err)
		}
		out[line] = f
	}
	return out, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

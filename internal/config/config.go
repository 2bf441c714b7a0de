package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Redis        RedisConfig        `yaml:"redis"`
	Cache        CacheConfig        `yaml:"cache"`
	Auth         AuthConfig         `yaml:"auth"         validate:"required"`
	Stripe       StripeConfig       `yaml:"stripe"       validate:"required"`
	Email        EmailConfig        `yaml:"email"        validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	RabbitMQ     RabbitMQConfig     `yaml:"rabbitmq"`
	Mongo        MongoConfig        `yaml:"mongo"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Notification NotificationConfig `yaml:"notification" validate:"required"`
	Currency     CurrencyConfig     `yaml:"currency"     validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hotelbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// пустой addr: блокировки и дедупликация живут в процессе
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:""`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"     env-default:""`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"    validate:"min=0"`
	LockTTL     time.Duration `yaml:"lock_ttl"     env:"REDIS_LOCK_TTL"     env-default:"10s"  validate:"gt=0"`
	LockRetry   time.Duration `yaml:"lock_retry"   env:"REDIS_LOCK_RETRY"   env-default:"50ms" validate:"gt=0"`
	DedupeTTL   time.Duration `yaml:"dedupe_ttl"   env:"REDIS_DEDUPE_TTL"   env-default:"72h"  validate:"gt=0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"3s"   validate:"gt=0"`
}

type CacheConfig struct {
	MemcachedAddr string        `yaml:"memcached_addr" env:"MEMCACHED_ADDR"   env-default:""`
	LocalSize     int64         `yaml:"local_size"     env:"CACHE_LOCAL_SIZE" env-default:"1000" validate:"min=1"`
	LocalTTL      time.Duration `yaml:"local_ttl"      env:"CACHE_LOCAL_TTL"  env-default:"30s"  validate:"gt=0"`
	RemoteTTL     time.Duration `yaml:"remote_ttl"     env:"CACHE_REMOTE_TTL" env-default:"5m"   validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"      validate:"required,min=16"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"JWT_TOKEN_TTL"   env-default:"168h"        validate:"gt=0"`
	Issuer     string        `yaml:"issuer"      env:"JWT_ISSUER"      env-default:"hotelbooker" validate:"required"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"         validate:"min=4,max=31"`
}

type StripeConfig struct {
	SecretKey     string        `yaml:"secret_key"     env:"STRIPE_SECRET_KEY"     validate:"required"`
	WebhookSecret string        `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET" validate:"required"`
	Currency      string        `yaml:"currency"       env:"STRIPE_CURRENCY"       env-default:"usd" validate:"required,len=3"`
	SuccessURL    string        `yaml:"success_url"    env:"STRIPE_SUCCESS_URL"    env-default:"http://localhost:5173/loader/my-bookings" validate:"required,url"`
	CancelURL     string        `yaml:"cancel_url"     env:"STRIPE_CANCEL_URL"     env-default:"http://localhost:5173/my-bookings"        validate:"required,url"`
	// stripe не принимает expires_at раньше чем через 30 минут, сервис добавляет минуту запаса
	CheckoutTTL time.Duration `yaml:"checkout_ttl" env:"STRIPE_CHECKOUT_TTL" env-default:"30m" validate:"min=30m,max=24h"`
	Timeout     time.Duration `yaml:"timeout"      env:"STRIPE_TIMEOUT"      env-default:"10s" validate:"gt=0"`
}

type EmailConfig struct {
	Provider     string        `yaml:"provider"       env:"EMAIL_PROVIDER"       env-default:"noop"  validate:"required,oneof=smtp resend noop"`
	From         string        `yaml:"from"           env:"EMAIL_FROM"           env-default:"bookings@hotelbooker.local"`
	Host         string        `yaml:"host"           env:"SMTP_HOST"            env-default:"localhost"`
	Port         int           `yaml:"port"           env:"SMTP_PORT"            env-default:"587"   validate:"min=1,max=65535"`
	Username     string        `yaml:"username"       env:"SMTP_USER"            env-default:""`
	Password     string        `yaml:"password"       env:"SMTP_PASSWORD"        env-default:""`
	TLSPolicy    string        `yaml:"tls_policy"     env:"SMTP_TLS_POLICY"      env-default:"opportunistic" validate:"oneof=mandatory opportunistic none"`
	ResendAPIKey string        `yaml:"resend_api_key" env:"RESEND_API_KEY"       env-default:""`
	Timeout      time.Duration `yaml:"timeout"        env:"EMAIL_TIMEOUT"        env-default:"10s"   validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type RabbitMQConfig struct {
	URL   string `yaml:"url"   env:"RABBITMQ_URL"   env-default:""`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"booking.events"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-default:""`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"hotelbooker"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"5s" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
	Grace    time.Duration `yaml:"grace"    env:"SCHEDULER_GRACE"    env-default:"5m" validate:"min=0"`
}

type NotificationConfig struct {
	// сколько Create ждёт письмо перед ответом клиенту
	Wait    time.Duration `yaml:"wait"    env:"NOTIFY_WAIT"    env-default:"2s"  validate:"min=0"`
	Timeout time.Duration `yaml:"timeout" env:"NOTIFY_TIMEOUT" env-default:"15s" validate:"gt=0"`
}

type CurrencyConfig struct {
	Symbol string `yaml:"symbol" env:"CURRENCY_SYMBOL" env-default:"$" validate:"required"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

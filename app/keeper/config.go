package keeper

import (
	"github.com/dmitrymomot/sessionkeeper/core/session"
	"github.com/dmitrymomot/sessionkeeper/integration/database/mongo"
	"github.com/dmitrymomot/sessionkeeper/integration/database/pg"
	"github.com/dmitrymomot/sessionkeeper/integration/database/redis"
	"github.com/dmitrymomot/sessionkeeper/integration/formlogin"
	"github.com/dmitrymomot/sessionkeeper/integration/storage/s3"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendS3       = "s3"
)

type Config struct {
	Session   session.Config
	Redis     redis.Config
	Postgres  pg.Config
	Mongo     mongo.Config
	S3        s3.Config
	FormLogin formlogin.Config

	AppName      string   `env:"APP_NAME" envDefault:"sessionkeeper"`
	Env          string   `env:"APP_ENV" envDefault:"development"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	StoreBackend string   `env:"STORE_BACKEND" envDefault:"memory"`
	AutoMigrate  bool     `env:"PG_AUTO_MIGRATE" envDefault:"true"`
	WarmupUsers  []string `env:"WARMUP_USERS" envSeparator:","`
}

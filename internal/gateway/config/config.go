package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	ThresholdsPath string

	Store    StoreConfig
	Redis    RedisConfig
	Skeleton SkeletonConfig
	Codegen  CodegenConfig
}

// StoreConfig selects the mapping-result backend: Postgres when DSN is set,
// otherwise a JSON file store at Path.
type StoreConfig struct {
	PostgresDSN string
	Path        string
}

type RedisConfig struct {
	Enabled bool
	Addr    string
	TTLSec  int
}

// SkeletonConfig is the optional S3/minio blob store for emitted skeletons.
type SkeletonConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CodegenConfig is the optional LLM code-generation collaborator.
type CodegenConfig struct {
	Enabled bool
	Model   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetDefault("port", ":8081")
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.path", "tmp/mapping_results.json")
	v.SetDefault("redis.ttl_sec", 300)
	v.SetDefault("skeleton.region", "us-east-1")
	v.SetDefault("skeleton.bucket", "archemap-skeletons")
	v.SetDefault("codegen.model", "gemini-2.0-flash")

	cfg := &Config{
		Port:           normalizePort(firstNonEmpty(os.Getenv("PORT"), v.GetString("port"))),
		Env:            firstNonEmpty(strings.TrimSpace(os.Getenv("APP_ENV")), v.GetString("env")),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
		ThresholdsPath: strings.TrimSpace(firstNonEmpty(os.Getenv("THRESHOLDS_PATH"), v.GetString("thresholds_path"))),
		Store: StoreConfig{
			PostgresDSN: strings.TrimSpace(firstNonEmpty(os.Getenv("MAPPING_STORE_PG_DSN"), v.GetString("store.postgres_dsn"))),
			Path:        v.GetString("store.path"),
		},
		Redis: RedisConfig{
			Addr:   strings.TrimSpace(firstNonEmpty(os.Getenv("REDIS_ADDR"), v.GetString("redis.addr"))),
			TTLSec: v.GetInt("redis.ttl_sec"),
		},
		Skeleton: loadSkeletonConfig(v),
		Codegen: CodegenConfig{
			Enabled: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) != "",
			Model:   firstNonEmpty(strings.TrimSpace(os.Getenv("CODEGEN_MODEL")), v.GetString("codegen.model")),
		},
	}
	cfg.Redis.Enabled = cfg.Redis.Addr != ""
	return cfg, nil
}

func loadSkeletonConfig(v *viper.Viper) SkeletonConfig {
	endpoint := strings.TrimSpace(firstNonEmpty(os.Getenv("SKELETON_S3_ENDPOINT"), v.GetString("skeleton.endpoint")))
	return SkeletonConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("SKELETON_S3_REGION")), v.GetString("skeleton.region")),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SKELETON_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SKELETON_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("SKELETON_S3_BUCKET")), v.GetString("skeleton.bucket")),
		UseSSL:    resolveUseSSL(),
	}
}

func resolveUseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("SKELETON_S3_USE_SSL"))
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}

func normalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8081"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

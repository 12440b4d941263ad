package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Kafka      Kafka      `yaml:"kafka"`
	Storage    Storage    `yaml:"storage"`
	Fetcher    Fetcher    `yaml:"fetcher"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"0.0.0.0:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"60s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host           string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"DB_PASSWORD"`
	DBName         string `yaml:"dbname" env:"DB_NAME" env-default:"image_vault"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type Kafka struct {
	Brokers        []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	GeneratedTopic string   `yaml:"generated_topic" env-default:"image.generated"`
	StoredTopic    string   `yaml:"stored_topic" env-default:"image.stored"`
	GroupID        string   `yaml:"group_id" env-default:"image-vault"`
}

// Storage selects the blob backend once at startup; "local" writes under
// LocalRoot, "s3" pushes to the configured bucket.
type Storage struct {
	Backend   string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"local"`
	LocalRoot string `yaml:"local_root" env-default:"./blobs"`
	BaseURL   string `yaml:"base_url" env-default:"http://localhost:8082/blobs"`
	S3        S3     `yaml:"s3"`
}

type S3 struct {
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
}

type Fetcher struct {
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	MinIO    MinIOConfig
	Kafka    KafkaConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
}

// StorageConfig selects the upload backend. Driver "local" writes to
// UploadDir and serves files under PublicPrefix; driver "minio" uses the
// object store from MinIOConfig.
type StorageConfig struct {
	Driver       string
	UploadDir    string
	PublicPrefix string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
}

// KafkaConfig is optional; an empty Brokers disables event publishing.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

type MetricsConfig struct {
	Port string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
		},
		Database: DatabaseConfig{
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBName:     os.Getenv("DB_NAME"),
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
		},
		Storage: StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", "local"),
			UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
			PublicPrefix: getEnv("UPLOAD_PUBLIC_PREFIX", "/uploads"),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("MINIO_ENDPOINT"),
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
			BucketName:      getEnv("MINIO_BUCKET_NAME", "memories"),
		},
		Kafka: KafkaConfig{
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "memory.created"),
		},
		Metrics: MetricsConfig{
			Port: getEnv("METRICS_PORT", "2112"),
		},
	}
}

// Validate checks the fields that have no workable defaults.
func (c *Config) Validate() error {
	if c.Database.DBUser == "" || c.Database.DBName == "" {
		return fmt.Errorf("DB_USER and DB_NAME must be set")
	}
	if c.Storage.Driver != "local" && c.Storage.Driver != "minio" {
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "minio" && c.MinIO.Endpoint == "" {
		return fmt.Errorf("MINIO_ENDPOINT must be set for the minio storage driver")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

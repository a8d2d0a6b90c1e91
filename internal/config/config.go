package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     string
	RefreshSecret string
	Issuer        string
	BcryptCost    int
	DbHost        string
	DbPort        string
	DbUser        string
	DbPassword    string
	DbName        string
	ServerPort    string
	MinioEndpoint string
	MinioAccess   string
	MinioSecret   string
	MinioUseSSL   bool
	MinioBucket   string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "dev_secret")
	RefreshSecret = getEnv("REFRESH_SECRET", "refresh_dev_secret")
	Issuer = getEnv("ISSUER", "sickday")
	BcryptCost, _ = strconv.Atoi(getEnv("BCRYPT_COST", "10"))

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "sickday")
	ServerPort = getEnv("SERVER_PORT", "8080")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccess = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecret = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "proofs")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

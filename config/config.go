// config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	API     APIConfiguration
	Storage StorageConfiguration
	Redis   RedisConfiguration
	Audit   AuditConfiguration
	Log     LogConfiguration
}

// APIConfiguration points the client at the inspection backend
type APIConfiguration struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfiguration selects the key-value slot that holds the session
type StorageConfiguration struct {
	Backend       string // secure, local, redis, memory
	Dir           string
	EncryptionKey string
}

// RedisConfiguration stores data for the Redis session backend
type RedisConfiguration struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// AuditConfiguration stores data for the Elasticsearch audit sink
type AuditConfiguration struct {
	ElasticsearchURL string
	Index            string
}

type LogConfiguration struct {
	Dir   string
	Level string
}

var config *Configuration

func InitConfig() error {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring unreadable .env file: %v", err)
	}

	viper.AddConfigPath("config")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".pcbctl"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("PCB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Older installs export EXPO_PUBLIC_API_URL; PCB_API_BASEURL wins
	if expo := os.Getenv("EXPO_PUBLIC_API_URL"); expo != "" && os.Getenv("PCB_API_BASEURL") == "" {
		viper.SetDefault("api.baseURL", expo)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

func setDefaults() {
	dataDir := ".pcbctl"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".pcbctl")
	}

	viper.SetDefault("api.baseURL", "http://localhost:8000/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("storage.backend", "secure")
	viper.SetDefault("storage.dir", dataDir)
	viper.SetDefault("storage.encryptionKey", "")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.sessionTTL", "0s")
	viper.SetDefault("audit.elasticsearchURL", "")
	viper.SetDefault("audit.index", "pcb-client-audit")
	viper.SetDefault("log.dir", filepath.Join(dataDir, "logs"))
	viper.SetDefault("log.level", "info")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// BindFlag lets a command-line flag override key. A nil flag is ignored.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return viper.BindPFlag(key, flag)
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS        = ""                 // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""                 // MySQL will be used if this is set
	SQLITE_FILE        = "microblog.sqlite" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	MEDIA_DIR          = "media" // Local directory for uploaded post images
	S3_BUCKET          = ""      // Post images go to S3 instead of MEDIA_DIR if this is set
	S3_REGION          = ""
	SESSION_KEY        = "not-so-secret" // Cookie signing key, override in production
	REDIS_ADDR         = ""              // Backs the index page cache with Redis
	PAGE_CACHE_SECONDS = 0               // Enables the index page cache when > 0
	DEBUG_MODE         = true
)

func init() {
	// A missing .env is fine, the environment wins either way
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("REDIS_ADDR", &REDIS_ADDR)
	readEnvInt("PAGE_CACHE_SECONDS", &PAGE_CACHE_SECONDS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}

package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database described by the environment. With DB_DRIVER
// unset or "sqlite" a local file database is used, which keeps development
// setup to zero configuration.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	if driver == "mysql" {
		host := getEnv("DB_HOST", "127.0.0.1")
		port := getEnv("DB_PORT", "3306")
		user := getEnv("DB_USER", "root")
		pass := os.Getenv("DB_PASSWORD")
		name := getEnv("DB_NAME", "snapframe")

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := getEnv("DB_PATH", "snapframe.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package db

import (
	"fmt"

	"courierhub/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection. DATABASE_URL wins when set;
// otherwise the DSN is assembled from the discrete POSTGRES_* settings.
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn(cfg)), gormConfig())
}

// gormConfig enables error translation so unique-constraint violations
// surface as gorm.ErrDuplicatedKey; the repositories map that to
// repo.ErrDuplicate.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func dsn(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
	)
}

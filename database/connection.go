package database

import (
	"github.com/mapyourmemory/memorymap/config"
	"github.com/mapyourmemory/memorymap/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := "host=" + cfg.Database.DBHost +
		" user=" + cfg.Database.DBUser +
		" password=" + cfg.Database.DBPassword +
		" dbname=" + cfg.Database.DBName +
		" port=" + cfg.Database.DBPort +
		" sslmode=disable TimeZone=UTC"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	go metrics.ObserveDBPool("memorymap", sqlDB)
	return db, nil
}

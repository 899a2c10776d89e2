package database

import (
	"fmt"
	"log"
	"time"

	"coursepro_backend/internal/config"
	"coursepro_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxIdleConns    = 1
	maxOpenConns    = 20
	connMaxLifetime = time.Hour
)

// InitDB opens the pooled PostgreSQL connection and runs migrations. The
// *gorm.DB is constructed once at startup and handed to the app wiring; no
// package-level handle exists.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCourses(db)

	return db, nil
}

// Migrate creates or updates the schema. Shared with the test harness, which
// runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Test{},
		&model.Question{},
		&model.Option{},
		&model.UserTestAttempt{},
		&model.Recommendation{},
		&model.Feedback{},
	)
}

// Close releases every pooled connection. Called on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedCourses fills an empty catalog with the default course list so a fresh
// install has something to recommend. Safe to call repeatedly.
func seedCourses(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Course{
		{CourseName: "BS Computer Science", Description: "Algorithms, software engineering, and systems", RequiredStrand: "STEM", MinimumGWA: 85},
		{CourseName: "BS Civil Engineering", Description: "Structural design and construction engineering", RequiredStrand: "STEM", MinimumGWA: 83},
		{CourseName: "BS Information Technology", Description: "Applied computing and infrastructure", RequiredStrand: "STEM", MinimumGWA: 80},
		{CourseName: "BS Psychology", Description: "Human behavior and mental processes", RequiredStrand: "HUMSS", MinimumGWA: 82},
		{CourseName: "AB Communication", Description: "Media, journalism, and public communication", RequiredStrand: "HUMSS", MinimumGWA: 78},
		{CourseName: "BS Accountancy", Description: "Financial accounting and auditing", RequiredStrand: "ABM", MinimumGWA: 85},
		{CourseName: "BS Business Administration", Description: "Management and entrepreneurship", RequiredStrand: "ABM", MinimumGWA: 75},
		{CourseName: "BS Tourism Management", Description: "Hospitality and tourism operations", RequiredStrand: "HUMSS", MinimumGWA: 75},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
}

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/insure-planner/go-api-server/internal/config"
	"github.com/insure-planner/go-api-server/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB wraps the GORM instance backing the slot store
type DB struct {
	*gorm.DB
}

// New opens the local SQLite database holding the slot store
func New(cfg *config.Config) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:                 newLogger(cfg),
		SkipDefaultTransaction: true, // 슬롯 단위 단건 쓰기라 기본 트랜잭션 불필요
		NowFunc: func() time.Time {
			return time.Now().UTC() // updated_at 등에 UTC 사용
		},
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}

	// Single-user local store: one writer connection avoids SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	slog.Info("데이터베이스 연결 성공",
		"path", cfg.Database.Path,
		"auto_migrate", cfg.Database.IsAutoMigrate,
	)

	if err := Migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("마이그레이션 실패: %w", err)
	}

	return &DB{DB: db}, nil
}

// Migrate creates the slot table when auto migration is enabled
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return fmt.Errorf("%T 마이그레이션 실패: %w", &model.KVEntry{}, err)
	}

	slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", &model.KVEntry{}))
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("데이터베이스 종료 실패: %w", err)
	}

	slog.Info("데이터베이스 연결이 종료되었습니다")
	return nil
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("데이터베이스 상태 확인 실패: %w", err)
	}

	return nil
}

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SessionRecordKey is the single key under which the admin session is
// persisted. It matches the record name the web console uses.
const SessionRecordKey = "cloveraAdmin"

// SessionRecord is the durable key/value row holding the serialized admin.
type SessionRecord struct {
	Key       string `gorm:"primaryKey;column:record_key"`
	Value     string `gorm:"column:record_value"`
	UpdatedAt time.Time
}

func (SessionRecord) TableName() string {
	return "session_records"
}

// SessionStore persists the admin session across restarts in a local SQLite
// file. It is the only durable storage in the system.
type SessionStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewSessionStore(path string, logger *slog.Logger) (*SessionStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, err
	}
	return &SessionStore{db: db, logger: logger}, nil
}

// Save serializes the admin and upserts it under the session key.
func (s *SessionStore) Save(admin Admin) error {
	payload, err := json.Marshal(admin)
	if err != nil {
		return err
	}

	record := SessionRecord{
		Key:       SessionRecordKey,
		Value:     string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.Save(&record).Error
}

// Load reads the persisted session. A missing record yields (nil, nil).
// A record that no longer parses is deleted and reported as absent; the
// corruption is recovered locally and never surfaced.
func (s *SessionStore) Load() (*Admin, error) {
	var record SessionRecord
	err := s.db.First(&record, "record_key = ?", SessionRecordKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var admin Admin
	if err := json.Unmarshal([]byte(record.Value), &admin); err != nil {
		s.logger.Warn("discarding unparseable session record", "error", err)
		if delErr := s.Delete(); delErr != nil {
			s.logger.Error("failed to delete corrupt session record", "error", delErr)
		}
		return nil, nil
	}

	return &admin, nil
}

// Delete removes the persisted session unconditionally.
func (s *SessionStore) Delete() error {
	return s.db.Delete(&SessionRecord{}, "record_key = ?", SessionRecordKey).Error
}

// Ping verifies the underlying database handle for health checks.
func (s *SessionStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

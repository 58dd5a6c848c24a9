package kvstore

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// Record is one stored value. Pos preserves insertion order across both
// drivers so List replays records the way they were written.
type Record struct {
	Kind     string `gorm:"primaryKey;type:varchar(64)"`
	RecordID string `gorm:"primaryKey;column:record_id;type:varchar(64)"`
	Value    string `gorm:"type:text"`
	Pos      int64  `gorm:"index"`
}

type GormStore struct {
	db      *gorm.DB
	lastPos atomic.Int64
}

// NewGormStore migrates the record table and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate record table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(kind, id string) ([]byte, error) {
	var rec Record
	err := s.db.Where("kind = ? AND record_id = ?", kind, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (s *GormStore) List(kind string) ([][]byte, error) {
	var recs []Record
	if err := s.db.Where("kind = ?", kind).Order("pos ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(recs))
	for _, rec := range recs {
		values = append(values, []byte(rec.Value))
	}
	return values, nil
}

func (s *GormStore) Put(kind, id string, value []byte) error {
	var existing Record
	err := s.db.Where("kind = ? AND record_id = ?", kind, id).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec := Record{Kind: kind, RecordID: id, Value: string(value), Pos: s.nextPos()}
		return s.db.Create(&rec).Error
	}
	if err != nil {
		return err
	}
	// Overwrite keeps the original position.
	return s.db.Model(&Record{}).
		Where("kind = ? AND record_id = ?", kind, id).
		Update("value", string(value)).Error
}

// nextPos hands out strictly increasing positions even when the clock
// ticks coarser than a write burst.
func (s *GormStore) nextPos() int64 {
	for {
		now := time.Now().UnixNano()
		last := s.lastPos.Load()
		if now <= last {
			now = last + 1
		}
		if s.lastPos.CompareAndSwap(last, now) {
			return now
		}
	}
}

func (s *GormStore) Delete(kind, id string) error {
	return s.db.Where("kind = ? AND record_id = ?", kind, id).Delete(&Record{}).Error
}

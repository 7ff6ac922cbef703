package services

import (
	"github.com/Hicham77500/BerserkerCut-sub001/config"
	"github.com/Hicham77500/BerserkerCut-sub001/models"

	"gorm.io/gorm"
)

const overrideKeyPrefix = "SUPPLEMENT_STATUS_"

// OverrideKey builds the storage key for a plan's status override map. One
// map per plan identity: a map written under plan A can never be read while
// plan B is active.
func OverrideKey(planID string) string {
	return overrideKeyPrefix + planID
}

// OverrideStore is the local durable key→string facility holding the
// supplement status override maps. Both calls are fallible (storage full,
// platform restriction); callers treat failures as "no override available".
type OverrideStore interface {
	GetItem(key string) (string, error) // ("", nil) when the key is absent
	SetItem(key, value string) error
}

type DBOverrideStore struct {
	db *gorm.DB
}

func NewDBOverrideStore() *DBOverrideStore {
	return &DBOverrideStore{db: config.DB}
}

func (s *DBOverrideStore) GetItem(key string) (string, error) {
	var row models.StatusOverride
	err := s.db.Where("key = ?", key).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return row.Value, nil
}

func (s *DBOverrideStore) SetItem(key, value string) error {
	row := models.StatusOverride{Key: key, Value: value}

	// Upsert by key
	return s.db.
		Where("key = ?", key).
		Assign(models.StatusOverride{Value: value}).
		FirstOrCreate(&row).Error
}

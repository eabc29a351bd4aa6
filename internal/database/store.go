package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store gives typed access to one table. Every method takes the transaction
// handle to run on, so callers decide where a unit of work begins and ends.
type Store[T any] struct{}

// NewStore creates a Store for the model type T
func NewStore[T any]() Store[T] {
	return Store[T]{}
}

// Get loads the record with the given primary key, preloading the named
// relations. It returns gorm.ErrRecordNotFound when no row matches.
func (Store[T]) Get(tx *gorm.DB, id uint, preloads ...string) (T, error) {
	var record T
	err := withPreloads(tx, preloads).Where("id = ?", id).First(&record).Error
	return record, err
}

// All returns every record ordered by primary key
func (s Store[T]) All(tx *gorm.DB, preloads ...string) ([]T, error) {
	return s.Filter(tx, nil, preloads...)
}

// Filter returns the records whose columns equal the given criteria
func (Store[T]) Filter(tx *gorm.DB, criteria map[string]interface{}, preloads ...string) ([]T, error) {
	query := withPreloads(tx, preloads)
	if len(criteria) > 0 {
		query = query.Where(criteria)
	}

	var records []T
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts the record without touching its associations
func (Store[T]) Create(tx *gorm.DB, record *T) error {
	return tx.Omit(clause.Associations).Create(record).Error
}

// Update writes every column of the record without touching its associations
func (Store[T]) Update(tx *gorm.DB, record *T) error {
	return tx.Omit(clause.Associations).Save(record).Error
}

// Delete removes the record with the given primary key.
// It returns gorm.ErrRecordNotFound when nothing was deleted.
func (Store[T]) Delete(tx *gorm.DB, id uint) error {
	res := tx.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWhere removes every record matching the criteria and reports how many went
func (Store[T]) DeleteWhere(tx *gorm.DB, criteria map[string]interface{}) (int64, error) {
	res := tx.Where(criteria).Delete(new(T))
	return res.RowsAffected, res.Error
}

func withPreloads(tx *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	return tx
}

package specification

import "gorm.io/gorm"

// BySessionID filters by the external session identifier.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByDataType filters extraction records by type.
type ByDataType struct {
	DataType string
}

func (s ByDataType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("data_type = ?", s.DataType)
}

package db_models

// DeityMarker maps a deity to the map marker asset the client renders for
// destinations of that deity.
type DeityMarker struct {
	Deity     Deity  `gorm:"type:varchar(32);primaryKey"`
	MapMarker string
}

func (DeityMarker) TableName() string { return "deity" }

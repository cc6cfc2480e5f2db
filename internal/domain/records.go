package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ChampionRecord is the persisted form of a catalog entry synced from
// Data Dragon. The numeric key matches the Champion.ID used by the engine.
type ChampionRecord struct {
	ID           string         `json:"id" gorm:"primaryKey"`     // e.g., "Aatrox"
	Key          int            `json:"key" gorm:"uniqueIndex"`   // e.g., 266
	Name         string         `json:"name" gorm:"not null"`     // Display name
	Title        string         `json:"title"`                    // e.g., "the Darkin Blade"
	ImageURL     string         `json:"imageUrl" gorm:"not null"` // Full URL to champion image
	Tags         datatypes.JSON `json:"tags" gorm:"type:jsonb"`   // ["Fighter", "Tank"]
	LastSyncedAt time.Time      `json:"lastSyncedAt"`
}

// MetaStatRecord is a per-patch, per-role statistics row for one champion,
// refreshed by the sync service and served to the engine as live meta data.
type MetaStatRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChampionKey int       `json:"championKey" gorm:"index:idx_meta_champ_role,unique;not null"`
	Role        Role      `json:"role" gorm:"index:idx_meta_champ_role,unique"`
	Tier        Tier      `json:"tier" gorm:"not null"`
	WinRate     float64   `json:"winRate"`
	PickRate    float64   `json:"pickRate"`
	BanRate     float64   `json:"banRate"`
	Patch       string    `json:"patch" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

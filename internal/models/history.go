package models

// History is the append-only audit shadow of entity mutations: one row
// per change, with the acting user and a JSON field-level diff. Rows are
// written by the history service and never updated or deleted.
type History struct {
	Base
	ActorID    uint   `gorm:"not null;index" json:"actor_id"`
	Action     string `gorm:"not null;size:50" json:"action"`
	EntityType string `gorm:"not null;size:50;index:idx_history_entity" json:"entity_type"`
	EntityID   uint   `gorm:"index:idx_history_entity" json:"entity_id"`
	IPAddress  string `gorm:"size:45" json:"ip_address,omitempty"`
	Changes    string `json:"changes,omitempty"`
}

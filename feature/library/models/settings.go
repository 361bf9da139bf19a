package models

// RetentionPolicy controls what a sync does with orphaned items.
type RetentionPolicy string

const (
	// PolicyAsk leaves orphans pending so the user can decide per run.
	PolicyAsk RetentionPolicy = "always-ask"
	// PolicyKeep keeps every orphan in the library automatically.
	PolicyKeep RetentionPolicy = "always-keep"
	// PolicyDelete removes every orphan and ledgers it automatically.
	PolicyDelete RetentionPolicy = "always-delete"
)

// IsValid reports whether the policy is one of the known values.
func (p RetentionPolicy) IsValid() bool {
	switch p {
	case PolicyAsk, PolicyKeep, PolicyDelete:
		return true
	default:
		return false
	}
}

// Settings holds the persisted user preferences.
type Settings struct {
	// ID pins the settings to a single row; the document is a singleton.
	ID int `json:"-" gorm:"primaryKey"`

	// RetentionPolicy is applied to orphans after every sync.
	RetentionPolicy RetentionPolicy `json:"retentionPolicy"`
}

// TableName sets the storage table for settings.
func (Settings) TableName() string { return "settings" }

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{ID: 1, RetentionPolicy: PolicyAsk}
}

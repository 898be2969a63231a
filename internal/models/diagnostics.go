package models

// Diagnostics is the coarse status report of GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	DatabaseInUse    string   `json:"database_in_use,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	AudioStorage     string   `json:"audio_storage"`
}

// Package domain holds DTOs for catalog http and service contracts
package domain

// IntentView is one catalog record as the api shows it
type IntentView struct {
	ID       string   `json:"id" example:"driving_license"`
	Keywords []string `json:"keywords" example:"driving license,dl"`
	Steps    []string `json:"steps"`
}

// ReloadResult reports the catalog that is active after a reload
type ReloadResult struct {
	Intents int    `json:"intents" example:"12"`
	Source  string `json:"source" example:"pg"`
}

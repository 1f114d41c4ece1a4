package metrics

// DailyReport is the derived summary of one tenant's activity for one
// calendar date. It is recomputable from the event logs and never stored
// as source of truth.
type DailyReport struct {
	Date                 string          `json:"date"`
	LeadsCount           int             `json:"leads_count"`
	LeadsDetails         []LeadDetail    `json:"leads_details"`
	InteractionsCount    int             `json:"interactions_count"`
	TopQuestions         []QuestionCount `json:"top_questions"`
	MarketingAssetsCount int             `json:"marketing_assets_count"`
	MarketingAssets      []AssetPreview  `json:"marketing_assets"`
}

// LeadDetail is a normalized lead record extracted for the report.
type LeadDetail struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Topic         string `json:"topic"`
	PreferredTime string `json:"preferred_time"`
	Timestamp     string `json:"timestamp"`
}

// QuestionCount is one ranked entry in the top-questions list.
type QuestionCount struct {
	Question  string `json:"question"`
	Frequency int    `json:"frequency"`
}

// AssetPreview is a truncated view of an asset for the report. The full
// content stays in the underlying log.
type AssetPreview struct {
	ID        string `json:"id"`
	AssetType string `json:"asset_type"`
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

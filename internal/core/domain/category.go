package domain

// Category is the spending classification assigned to a transaction
// description, either by the ML sidecar or by the keyword fallback.
type Category struct {
	Name       string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	ModelUsed  string  `json:"model_used"`
}

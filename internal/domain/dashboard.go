package domain

// DashboardOverview aggregates counts across the admin collections for the
// landing page. Assembled by fanning out to each store concurrently.
type DashboardOverview struct {
	TotalProducts     int `json:"totalProducts"`
	PublishedProducts int `json:"publishedProducts"`
	TotalCategories   int `json:"totalCategories"`
	RootCategories    int `json:"rootCategories"`
	TotalStaff        int `json:"totalStaff"`
	ActiveStaff       int `json:"activeStaff"`
	PendingInvites    int `json:"pendingInvites"`
}

// AdminMetrics is a JSON snapshot of operational counters for the
// GET /v1/metrics/admin endpoint.
type AdminMetrics struct {
	TotalRequests int64   `json:"totalRequests"`
	ErrorRate     float64 `json:"errorRate"`
	CacheHitRate  float64 `json:"cacheHitRate"`
	Mutations     int64   `json:"mutations"`
	Period        string  `json:"period"`
}

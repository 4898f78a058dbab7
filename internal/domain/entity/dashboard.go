package entity

// DashboardStats is the aggregate snapshot rendered on the console landing
// page. Counts are computed by the backend; the console passes them through.
type DashboardStats struct {
	Users struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
	} `json:"users"`
	Vendors struct {
		Total    int `json:"total"`
		Verified int `json:"verified"`
		Pending  int `json:"pending"`
	} `json:"vendors"`
	Products struct {
		Total    int `json:"total"`
		Approved int `json:"approved"`
		Pending  int `json:"pending"`
		Rejected int `json:"rejected"`
	} `json:"products"`
	Orders struct {
		Total           int            `json:"total"`
		Revenue         float64        `json:"revenue"`
		ByStatus        map[string]int `json:"byStatus"`
		RevenueOverTime []RevenuePoint `json:"revenueOverTime,omitempty"`
	} `json:"orders"`
	Payments struct {
		Total int `json:"total"`
	} `json:"payments"`
	Reviews struct {
		Total    int `json:"total"`
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
		Rejected int `json:"rejected"`
	} `json:"reviews"`
	Categories struct {
		Total int `json:"total"`
	} `json:"categories"`
}

// RevenuePoint is one sample of the revenue-over-time series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

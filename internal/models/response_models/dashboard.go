package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type KPIBlock struct {
	TotalAccounts      int64   `json:"total_accounts"`
	NewAccounts        int64   `json:"new_accounts"`
	TotalTrips         int64   `json:"total_trips"`
	TotalSections      int64   `json:"total_sections"`
	TotalPlannedBudget float64 `json:"total_planned_budget"`
}

type DestinationStat struct {
	City  string `json:"city"`
	State string `json:"state"`
	Trips int64  `json:"trips"`
}

type DashboardReport struct {
	Range           TimeRange         `json:"range"`
	KPIs            KPIBlock          `json:"kpis"`
	TopDestinations []DestinationStat `json:"top_destinations"`
}

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type AccountListResponse struct {
	Accounts   []AccountResponse `json:"accounts"`
	Pagination Pagination        `json:"pagination"`
}

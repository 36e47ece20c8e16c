package response

import "contractor_pro/internal/usecase"

type DashboardResponse struct {
	Estimates int `json:"estimates"`
	Clients   int `json:"clients"`
	Photos    int `json:"photos"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{Estimates: d.Estimates, Clients: d.Clients, Photos: d.Photos}
}

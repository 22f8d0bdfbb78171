package response

import (
	"subterra_admin/internal/domain/entities"
)

type ProjectTrackingResponse struct {
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	ProjectNumber string `json:"project_number"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	ActualProgress   float64 `json:"actual_progress"`
	ExpectedProgress float64 `json:"expected_progress"`

	Status        string `json:"status"`
	Priority      string `json:"priority"`
	DaysRemaining int    `json:"days_remaining"`
	ServiceCount  int    `json:"service_count"`
}

func FromProjectTracking(p entities.ProjectTracking) ProjectTrackingResponse {
	return ProjectTrackingResponse{
		ClientID:         p.ClientID,
		ClientName:       p.ClientName,
		ProjectNumber:    p.ProjectNumber,
		StartDate:        formatDate(p.StartDate),
		EndDate:          formatDate(p.EndDate),
		ActualProgress:   p.ActualProgress,
		ExpectedProgress: p.ExpectedProgress,
		Status:           string(p.Status),
		Priority:         string(p.Priority),
		DaysRemaining:    p.DaysRemaining,
		ServiceCount:     p.ServiceCount,
	}
}

func FromProjectTrackingList(list []entities.ProjectTracking) []ProjectTrackingResponse {
	out := make([]ProjectTrackingResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProjectTracking(p))
	}
	return out
}

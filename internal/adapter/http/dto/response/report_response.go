package response

import (
	"subterra_admin/internal/domain/entities"
)

type MetricResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ReportResponse struct {
	Kind    string           `json:"kind"`
	Title   string           `json:"title"`
	Columns []string         `json:"columns"`
	Rows    [][]string       `json:"rows"`
	Metrics []MetricResponse `json:"metrics"`
}

func FromReport(r entities.Report) ReportResponse {
	metrics := make([]MetricResponse, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		metrics = append(metrics, MetricResponse{Label: m.Label, Value: m.Value})
	}
	rows := r.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return ReportResponse{
		Kind:    string(r.Kind),
		Title:   r.Title,
		Columns: r.Columns,
		Rows:    rows,
		Metrics: metrics,
	}
}

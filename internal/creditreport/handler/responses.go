package handler

import (
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/service"
)

type selectionResponse struct {
	Requested string `json:"requested,omitempty"`
	Served    string `json:"served,omitempty"`
	Provider  string `json:"provider,omitempty"`
	Fallback  bool   `json:"fallback"`
}

type resultResponse struct {
	Shape     string               `json:"shape"`
	Selection selectionResponse    `json:"selection"`
	Profile   models.CreditProfile `json:"profile"`
}

type listResultsResponse struct {
	Results []resultResponse `json:"results"`
}

type listProfilesResponse struct {
	Profiles []models.CreditProfile `json:"profiles"`
}

func toResultResponse(r *service.Result) resultResponse {
	return resultResponse{
		Shape: string(r.Shape),
		Selection: selectionResponse{
			Requested: r.Selection.Requested.String(),
			Served:    r.Selection.Served.String(),
			Provider:  r.Selection.Provider,
			Fallback:  r.Selection.Fallback,
		},
		Profile: r.Profile,
	}
}

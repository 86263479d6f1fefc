package services

import "github.com/temanskyM/scheduler-manager/models"

// KindSummary describes one record kind and the form fields it reads.
type KindSummary struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Collection string   `json:"collection"`
	Required   []string `json:"required"`
	Optional   []string `json:"optional,omitempty"`
}

func SummarizeKinds() []KindSummary {
	kinds := models.Kinds()
	summaries := make([]KindSummary, len(kinds))
	for i, kind := range kinds {
		summaries[i] = KindSummary{
			Name:       kind.Name,
			Label:      kind.Label,
			Collection: kind.Collection,
			Required:   kind.Fields.Required,
			Optional:   kind.Fields.Optional,
		}
	}
	return summaries
}

package server

import (
	"mediadex/internal/catalog"
	"mediadex/internal/report"
)

// summaryPayload is the transport shape of /api/summary.
type summaryPayload struct {
	Counts        countsPayload      `json:"counts"`
	TopCountries  []nameCountPayload `json:"topCountries"`
	TitlesPerYear []yearCountPayload `json:"titlesPerYear"`
	TopGenres     []nameCountPayload `json:"topGenres"`
	TopActors     []nameCountPayload `json:"topActors"`
}

type countsPayload struct {
	Countries      int `json:"countries"`
	Genres         int `json:"genres"`
	Actors         int `json:"actors"`
	Directors      int `json:"directors"`
	Titles         int `json:"titles"`
	TitleGenres    int `json:"titleGenres"`
	TitleActors    int `json:"titleActors"`
	TitleDirectors int `json:"titleDirectors"`
}

type nameCountPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type yearCountPayload struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

func fromSummary(summary *report.Summary) summaryPayload {
	return summaryPayload{
		Counts: countsPayload{
			Countries:      summary.Counts.Countries,
			Genres:         summary.Counts.Genres,
			Actors:         summary.Counts.Actors,
			Directors:      summary.Counts.Directors,
			Titles:         summary.Counts.Titles,
			TitleGenres:    summary.Counts.TitleGenres,
			TitleActors:    summary.Counts.TitleActors,
			TitleDirectors: summary.Counts.TitleDirectors,
		},
		TopCountries:  nameCounts(summary.TopCountries),
		TitlesPerYear: yearCounts(summary.TitlesPerYear),
		TopGenres:     nameCounts(summary.TopGenres),
		TopActors:     nameCounts(summary.TopActors),
	}
}

func nameCounts(in []catalog.NameCount) []nameCountPayload {
	out := make([]nameCountPayload, len(in))
	for i, nc := range in {
		out[i] = nameCountPayload{Name: nc.Name, Count: nc.Count}
	}
	return out
}

func yearCounts(in []catalog.YearCount) []yearCountPayload {
	out := make([]yearCountPayload, len(in))
	for i, yc := range in {
		out[i] = yearCountPayload{Year: yc.Year, Count: yc.Count}
	}
	return out
}

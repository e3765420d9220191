package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediadex/internal/catalog"
	"mediadex/internal/config"
	"mediadex/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				summary, err := report.BuildSummary(cmd.Context(), store)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()

				fmt.Fprintln(out, "Table counts")
				fmt.Fprintln(out, renderCountTable("Table", "Rows", [][2]string{
					{"country", strconv.Itoa(summary.Counts.Countries)},
					{"genre", strconv.Itoa(summary.Counts.Genres)},
					{"actor", strconv.Itoa(summary.Counts.Actors)},
					{"director", strconv.Itoa(summary.Counts.Directors)},
					{"title", strconv.Itoa(summary.Counts.Titles)},
					{"title_genre", strconv.Itoa(summary.Counts.TitleGenres)},
					{"title_actor", strconv.Itoa(summary.Counts.TitleActors)},
					{"title_director", strconv.Itoa(summary.Counts.TitleDirectors)},
				}, false))

				fmt.Fprintln(out, "Titles by country")
				fmt.Fprintln(out, renderCountTable("Country", "Titles", nameCountRows(summary.TopCountries), false))

				yearRows := make([][2]string, 0, len(summary.TitlesPerYear))
				for _, yc := range summary.TitlesPerYear {
					yearRows = append(yearRows, [2]string{strconv.Itoa(yc.Year), strconv.Itoa(yc.Count)})
				}
				fmt.Fprintln(out, "Titles by year")
				fmt.Fprintln(out, renderCountTable("Year", "Titles", yearRows, true))

				fmt.Fprintln(out, "Top genres")
				fmt.Fprintln(out, renderCountTable("Genre", "Titles", nameCountRows(summary.TopGenres), false))

				fmt.Fprintln(out, "Top actors")
				fmt.Fprintln(out, renderCountTable("Actor", "Titles", nameCountRows(summary.TopActors), false))

				return nil
			})
		},
	}
}

func nameCountRows(counts []catalog.NameCount) [][2]string {
	rows := make([][2]string, 0, len(counts))
	for _, nc := range counts {
		rows = append(rows, [2]string{nc.Name, strconv.Itoa(nc.Count)})
	}
	return rows
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/data"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataprep"
)

func newTagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Count and encode tag values",
	}
	cmd.AddCommand(newTagsCountCmd(a))
	cmd.AddCommand(newTagsEncodeCmd(a))
	return cmd
}

func newTagsCountCmd(a *app) *cobra.Command {
	var workers int
	var limit int

	cmd := &cobra.Command{
		Use:   "count <input>",
		Short: "Print how often each tag occurs",
		Long: `Print the tag frequency table of the tags column, most frequent first.
Only tags occurring at least --min-count times are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := data.Load(args[0], a.csvOptions())
			if err != nil {
				return err
			}

			opts := a.cfg.Tags.Options()
			var counts dataprep.TagCounts
			if workers > 1 {
				counts, err = dataprep.CountTagsParallel(ds, opts, workers)
			} else {
				counts, err = dataprep.CountTags(ds, opts)
			}
			if err != nil {
				return err
			}

			log.Info().Int("rows", ds.Len()).Int("distinct", len(counts)).
				Int("occurrences", counts.Total()).Msg("counted tags")
			renderCounts(cmd.OutOrStdout(), counts, opts.MinCount, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, "Count rows in this many goroutines")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many tags (0 = all)")
	return cmd
}

// renderCounts prints the ranked table of tags seen at least minCount
// times.
func renderCounts(w io.Writer, counts dataprep.TagCounts, minCount, limit int) {
	var rows [][]string
	for _, tc := range counts.Ranked() {
		if tc.Count < minCount {
			continue
		}
		if limit > 0 && len(rows) == limit {
			break
		}
		rows = append(rows, []string{tc.Tag, strconv.Itoa(tc.Count)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "Count"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func newTagsEncodeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <input>",
		Short: "Add a 0/1 column for every common tag",
		Long: `Add one indicator column per tag seen at least --min-count times.
Columns are named <prefix><tag> and appended in tag order; existing
columns and rows are left as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}
			ds, err := data.Load(args[0], a.csvOptions())
			if err != nil {
				return err
			}

			out, err := dataprep.EncodeCommonTags(ds, a.cfg.Tags.Options())
			if err != nil {
				return err
			}
			if err := data.Save(output, out); err != nil {
				return err
			}

			added := len(out.Columns()) - len(ds.Columns())
			log.Info().Str("output", output).Int("indicator_columns", added).Msg("encoded tags")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows with %d indicator columns to %s\n", out.Len(), added, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.csv or .json)")
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/config"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/data"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataprep"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/pipeline"
)

// buildPipeline orders the configured helpers: drop listed columns, drop
// all-null columns, impute means, encode tags. The tags column survives
// the null-column drop while encoding is on.
func buildPipeline(cfg *config.Config) *pipeline.Pipeline {
	p := pipeline.NewPipeline()
	if len(cfg.Clean.DropColumns) > 0 {
		p.Add(dataprep.DropColumnsStep(cfg.Clean.DropColumns...))
	}
	if cfg.Clean.DropNullColumns {
		var keep []string
		if cfg.Tags.Encode {
			keep = append(keep, cfg.Tags.Column)
		}
		p.Add(dataprep.DropAllNullColumnsStep(keep...))
	}
	if len(cfg.Clean.MeanColumns) > 0 {
		p.Add(dataprep.FillMissingWithMeanStep(cfg.Clean.MeanColumns...))
	}
	if cfg.Tags.Encode {
		p.Add(dataprep.EncodeCommonTagsStep(cfg.Tags.Options()))
	}
	return p
}

func newCleanCmd(a *app) *cobra.Command {
	var (
		output   string
		drop     []string
		mean     []string
		noEncode bool
		keepNull bool
	)

	cmd := &cobra.Command{
		Use:   "clean <input>",
		Short: "Run the configured cleaning steps",
		Long: `Run the cleaning steps in order:

  1. drop the columns listed in clean.drop_columns (--drop)
  2. drop columns whose every value is missing (unless --keep-null)
  3. fill missing values of clean.mean_columns with the column mean (--mean)
  4. add indicator columns for common tags (unless --no-encode)

Without --output the result is written next to the input as
cleaned_<input>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			flags := cmd.Flags()
			if flags.Changed("drop") {
				cfg.Clean.DropColumns = drop
			}
			if flags.Changed("mean") {
				cfg.Clean.MeanColumns = mean
			}
			if noEncode {
				cfg.Tags.Encode = false
			}
			if keepNull {
				cfg.Clean.DropNullColumns = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			input := args[0]
			if output == "" {
				output = filepath.Join(filepath.Dir(input), "cleaned_"+filepath.Base(input))
			}
			if output == input {
				return errors.New("refusing to overwrite the input file")
			}

			ds, err := data.Load(input, a.csvOptions())
			if err != nil {
				return err
			}
			log.Info().Int("rows", ds.Len()).Int("columns", len(ds.Columns())).Msg("loaded dataset")

			p := buildPipeline(&cfg)
			out, err := p.Run(ds)
			if err != nil {
				return err
			}
			if err := data.Save(output, out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleaned data saved to: %s (%d rows, %d columns)\n",
				output, out.Len(), len(out.Columns()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "Output file (.csv or .json)")
	f.StringSliceVar(&drop, "drop", nil, "Columns to drop")
	f.StringSliceVar(&mean, "mean", nil, "Numeric columns to impute with the mean")
	f.BoolVar(&noEncode, "no-encode", false, "Skip tag encoding")
	f.BoolVar(&keepNull, "keep-null", false, "Keep columns whose every value is missing")
	return cmd
}

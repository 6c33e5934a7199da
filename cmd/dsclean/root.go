package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/config"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/data"
	"github.com/Ikenna1414/DS-Midterm-Project/pkg/logging"
)

// app carries the flag values and the resolved config between the root
// command and its subcommands.
type app struct {
	cfgFile    string
	verbose    bool
	tagsColumn string
	minCount   int
	strict     bool
	delimiter  string

	cfg *config.Config
}

func (a *app) csvOptions() data.CSVOptions {
	return data.CSVOptions{
		TagsColumn:   a.cfg.Tags.Column,
		TagDelimiter: a.cfg.IO.TagDelimiter,
	}
}

// load resolves the config file, then lets explicitly set flags win.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tags-column") {
		cfg.Tags.Column = a.tagsColumn
	}
	if flags.Changed("min-count") {
		cfg.Tags.MinCount = a.minCount
	}
	if flags.Changed("strict") {
		cfg.Tags.Strict = a.strict
	}
	if flags.Changed("tag-delimiter") {
		cfg.IO.TagDelimiter = a.delimiter
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	return logging.Init(cfg.Log.Level)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dsclean",
		Short: "Clean tabular datasets and encode tag columns",
		Long: `dsclean prepares a tabular dataset for analysis.

It counts the tags stored per row in a list column, adds 0/1 indicator
columns for tags that are common enough, drops unwanted or empty columns
and fills missing numeric values with the column mean.

Input and output files may be CSV or a JSON array of records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "Configuration file path (YAML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	pf.StringVar(&a.tagsColumn, "tags-column", "tags", "Column holding the per-row tag lists")
	pf.IntVar(&a.minCount, "min-count", 1, "Minimum tag frequency for an indicator column")
	pf.BoolVar(&a.strict, "strict", false, "Fail on tags cells that are not lists instead of treating them as empty")
	pf.StringVar(&a.delimiter, "tag-delimiter", "|", "Separator of tags inside a CSV cell")

	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))

	return rootCmd
}

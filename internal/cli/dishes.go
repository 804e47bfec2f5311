package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func init() {
	dishes := &cobra.Command{
		Use:   "dishes",
		Short: "List the dishes matching a filter",
		Args:  cobra.NoArgs,
		RunE:  runDishes,
	}
	filterFlags(dishes)

	tags := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in the catalog",
		Args:  cobra.NoArgs,
		RunE:  runTags,
	}

	RootCmd.AddCommand(dishes, tags)
}

func runDishes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := newCatalog(cfg, nil, newLogger(cfg.LogLevel, io.Discard))
	if err != nil {
		return err
	}

	matched := catalog.Matching(readFilter(cmd))
	out := make([]dishOutput, 0, len(matched))
	for _, d := range matched {
		out = append(out, toOutput(d))
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runTags(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := newCatalog(cfg, nil, newLogger(cfg.LogLevel, io.Discard))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), catalog.Tags())
}

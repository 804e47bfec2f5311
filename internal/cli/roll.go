package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkordes/whattoeat/internal/browser"
	"github.com/pkordes/whattoeat/internal/handler"
)

// openURL is swapped out in tests.
var openURL = browser.Open

func init() {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Pick one dish at random",
		Args:  cobra.NoArgs,
		RunE:  runRoll,
	}
	filterFlags(cmd)
	cmd.Flags().Bool("open", false, "Open the dish's search page in the browser")

	RootCmd.AddCommand(cmd)
}

func runRoll(cmd *cobra.Command, _ []string) error {
	open, _ := cmd.Flags().GetBool("open")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := newCatalog(cfg, nil, newLogger(cfg.LogLevel, io.Discard))
	if err != nil {
		return err
	}

	d, ok := catalog.Roll(readFilter(cmd))
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), handler.NoMatchMessage)
		return nil
	}
	if err := printJSON(cmd.OutOrStdout(), toOutput(d)); err != nil {
		return err
	}

	if open {
		if link, ok := d.SearchURL(); ok {
			if err := openURL(link); err != nil {
				return err
			}
		}
	}
	return nil
}

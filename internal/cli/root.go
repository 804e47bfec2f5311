// Package cli implements the whattoeat commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pkordes/whattoeat/internal/config"
	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/picker"
	"github.com/pkordes/whattoeat/internal/repo"
	"github.com/pkordes/whattoeat/internal/seed"
	"github.com/pkordes/whattoeat/internal/service"
)

var (
	catalogPath string
	randomSeed  uint64
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:          "whattoeat",
	Short:        "Can't decide what to eat? Roll for it.",
	Long:         "A dish catalog with keyword and tag filters and a random pick. Everything lives in memory and resets on every launch.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Seed catalog YAML file (default: $CATALOG_FILE or the built-in dishes)")
	RootCmd.PersistentFlags().Uint64Var(&randomSeed, "seed", 0, "Random seed for reproducible rolls (default: $RANDOM_SEED or random)")
}

// loadConfig reads the environment and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if catalogPath != "" {
		cfg.CatalogFile = catalogPath
	}
	if cmd.Flags().Changed("seed") {
		s := randomSeed
		cfg.RandomSeed = &s
	}
	return cfg, nil
}

// newLogger returns a JSON logger at the named level, falling back to info.
func newLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// newCatalog seeds a fresh catalog from cfg.
func newCatalog(cfg config.Config, pub service.Publisher, log *slog.Logger) (*service.CatalogService, error) {
	dishes, err := seed.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return service.NewCatalogService(
		repo.NewDishRepo(dishes),
		repo.NewHistoryRepo(),
		newSource(cfg.RandomSeed),
		pub,
		log,
	), nil
}

func newSource(seed *uint64) picker.Source {
	if seed != nil {
		return picker.NewSeededSource(*seed)
	}
	return picker.NewSource()
}

// filterFlags registers -k/--keyword and repeatable -t/--tag on cmd.
func filterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("keyword", "k", "", "Only dishes whose name or a tag contains this text")
	cmd.Flags().StringArrayP("tag", "t", nil, "Only dishes carrying this tag (repeatable, all must match)")
}

func readFilter(cmd *cobra.Command) domain.Filter {
	keyword, _ := cmd.Flags().GetString("keyword")
	tags, _ := cmd.Flags().GetStringArray("tag")
	return domain.Filter{Keyword: keyword, Tags: domain.NormalizeTags(tags)}
}

// dishOutput is how a dish is printed: the stored fields plus its search link.
type dishOutput struct {
	domain.Dish
	Link string `json:"search_url,omitempty"`
}

func toOutput(d domain.Dish) dishOutput {
	link, _ := d.SearchURL()
	return dishOutput{Dish: d.Clone(), Link: link}
}

// printJSON writes v indented, leaving '&' and non-ASCII text readable.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cli.printJSON: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"media-library/core/config"
	"media-library/core/logger"
	"media-library/feature/library/models"

	"github.com/spf13/cobra"
)

var (
	searchInclude []string
	searchExclude []string
)

// searchCmd evaluates a condition pair against the stored library.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the library with include/exclude conditions",
	Long: `Evaluates conditions against the stored library. Include conditions
must all match; an item matching any exclude condition is dropped.

Conditions are written as kind=operand, e.g.:

  media-library search --include rating=">=4" --include channel=veritasium
  media-library search --include keyword=rocket --exclude hasComment=true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		include, err := parseConditions(searchInclude)
		if err != nil {
			return err
		}
		exclude, err := parseConditions(searchExclude)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		svc, err := buildService(cfg, logg)
		if err != nil {
			return err
		}

		items, err := svc.Search(context.Background(), include, exclude)
		if err != nil {
			return err
		}

		for _, item := range items {
			rating := "unrated"
			if item.Rated() {
				rating = fmt.Sprintf("%d/5", item.Rating)
			}
			cmd.Printf("%s  %-10s  %s (%s)\n", item.YoutubeID, rating, item.Title, item.ChannelTitle)
		}
		cmd.Printf("%d item(s)\n", len(items))
		return nil
	},
}

// parseConditions turns kind=operand strings into search conditions.
func parseConditions(raw []string) ([]models.SearchCondition, error) {
	conditions := make([]models.SearchCondition, 0, len(raw))
	for _, r := range raw {
		kind, operand, found := strings.Cut(r, "=")
		if !found {
			return nil, fmt.Errorf("invalid condition %q, expected kind=operand", r)
		}
		k := models.ConditionKind(kind)
		if !k.IsValid() {
			return nil, fmt.Errorf("unknown condition kind %q", kind)
		}
		conditions = append(conditions, models.SearchCondition{Kind: k, Operand: operand})
	}
	return conditions, nil
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchInclude, "include", nil, "condition every match must satisfy (kind=operand)")
	searchCmd.Flags().StringArrayVar(&searchExclude, "exclude", nil, "condition that disqualifies a match (kind=operand)")
	RootCmd.AddCommand(searchCmd)
}

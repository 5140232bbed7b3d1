package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/internal/interpretation/searchmeta"
	"trip-date-interpreter/internal/interpretation/usecase"
	"trip-date-interpreter/pkg/lexdate"
	"trip-date-interpreter/pkg/log"
)

var (
	flagReference string
	flagTimezone  string

	rootCmd = &cobra.Command{
		Use:   "tripdatectl",
		Short: "Trip date phrase interpreter CLI",
		Long:  `tripdatectl resolves free-text travel date phrases into concrete calendar dates and flight-search metadata.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() {
	interpretCmd.Flags().StringVar(&flagReference, "reference", "", "ISO-8601 reference instant (defaults to now)")
	interpretCmd.Flags().StringVar(&flagTimezone, "timezone", "UTC", "IANA zone name")
	rootCmd.AddCommand(interpretCmd)
}

var interpretCmd = &cobra.Command{
	Use:   "interpret <phrase>",
	Short: "Interpret a date phrase",
	Long:  `Resolve a phrase like "easter weekend" or "flight to Rome in December" and print the result as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})

		uc := usecase.New(logger, usecase.Config{
			Parser:          interpretation.LexicalParserFunc(lexdate.Parse),
			Deriver:         searchmeta.New(0, 0),
			DefaultTimezone: flagTimezone,
		})

		output, err := uc.Interpret(context.Background(), interpretation.InterpretInput{
			Phrase:        strings.Join(args, " "),
			ReferenceDate: flagReference,
			TimeZone:      flagTimezone,
		})
		if err != nil {
			return fmt.Errorf("interpret failed: %w", err)
		}

		pretty, err := json.MarshalIndent(output.Interpretation, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		fmt.Println(string(pretty))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

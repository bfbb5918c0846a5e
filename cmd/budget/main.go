package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/payme/budget-calculator/internal/calculation"
	"github.com/payme/budget-calculator/internal/config"
	"github.com/payme/budget-calculator/internal/domain"
	"github.com/payme/budget-calculator/internal/output"
)

var (
	planFile  string
	format    string
	outputDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "budget",
		Short: "Personal budget summaries and reports",
		Long:  "budget aggregates a YAML budget plan into month summaries, category breakdowns, and printable reports.",
	}
	rootCmd.PersistentFlags().StringVarP(&planFile, "plan", "p", "budget.yaml", "path to the budget plan file")

	summaryCmd := &cobra.Command{
		Use:   "summary [month]",
		Short: "Print a summary of the plan, or of a single month (YYYY-MM)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := loadComparison(args)
			if err != nil {
				return err
			}
			data, err := output.ConsoleFormatter{}.Format(comparison)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write a report file (console-lite, csv, json, html)",
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := loadComparison(nil)
			if err != nil {
				return err
			}
			path, err := output.GenerateReport(comparison, format, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	reportCmd.Flags().StringVarP(&format, "format", "f", "html", "output format")
	reportCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "output directory")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example budget plan to the plan path",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := config.SavePlan(parser.CreateExamplePlan(), planFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", planFile)
			return nil
		},
	}

	rootCmd.AddCommand(summaryCmd, reportCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadComparison(args []string) (*domain.PlanComparison, error) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(planFile)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngine()
	if len(args) == 1 {
		s, err := engine.SummarizeMonth(plan, args[0])
		if err != nil {
			return nil, err
		}
		return &domain.PlanComparison{
			PlanName:    plan.Name,
			Currency:    plan.Currency,
			Months:      []domain.MonthSummary{*s},
			TotalIncome: s.Income,
			TotalSpent:  s.TotalSpent,
		}, nil
	}
	return engine.SummarizePlan(plan)
}

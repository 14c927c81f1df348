package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nesaboz/finance/internal/breakeven"
	"github.com/nesaboz/finance/internal/calculation"
	"github.com/nesaboz/finance/internal/config"
	"github.com/nesaboz/finance/internal/domain"
	"github.com/nesaboz/finance/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finproj %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "finproj",
	Short: "Personal finance projection CLI",
	Long:  "Projects household finances forward in time: compound investment growth plus tax-adjusted income and expense streams on a shared calendar-year axis",
}

// loadPlan parses and validates the plan file, applying the shared
// engine setup flags.
func loadPlan(cmd *cobra.Command, path string) (*domain.Plan, *calculation.Engine, error) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return plan, engine, nil
}

// horizonAndYear resolves the projection horizon (flag override beats
// the plan default) and the injected current year (flag override beats
// the system clock).
func horizonAndYear(cmd *cobra.Command, plan *domain.Plan) (int, int) {
	horizon := plan.ProjectionYears
	if flagYears, _ := cmd.Flags().GetInt("years"); flagYears > 0 {
		horizon = flagYears
	}
	currentYear, _ := cmd.Flags().GetInt("current-year")
	if currentYear == 0 {
		currentYear = time.Now().UTC().Year()
	}
	return horizon, currentYear
}

var projectCmd = &cobra.Command{
	Use:   "project [plan-file]",
	Short: "Project investment value and cumulative profit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, engine, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}
		horizon, currentYear := horizonAndYear(cmd, plan)
		proj := engine.Project(plan, horizon, currentYear)

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := f.Format(proj)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets [plan-file]",
	Short: "Project total assets including contributions and expenses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, engine, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}
		horizon, currentYear := horizonAndYear(cmd, plan)
		ap := engine.ProjectAssets(plan, horizon, currentYear)

		fmt.Printf("%-6s  %16s\n", "Year", "Total Assets")
		for i, year := range ap.Years {
			fmt.Printf("%-6d  %16s\n", year, output.FormatCurrency(ap.Total[i]))
		}
		return nil
	},
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven [plan-file]",
	Short: "Find the first profitable year, or when assets reach a target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, engine, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}
		horizon, currentYear := horizonAndYear(cmd, plan)
		solver := breakeven.NewSolver(engine)

		targetFlag, _ := cmd.Flags().GetString("target")
		if targetFlag != "" {
			target, err := decimal.NewFromString(targetFlag)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", targetFlag, err)
			}
			result := solver.FirstYearAssetsReach(plan, horizon, currentYear, target)
			if !result.Reached {
				fmt.Printf("Total assets do not reach %s within %d years (final: %s)\n",
					output.FormatCurrency(target), horizon, output.FormatCurrency(result.Value))
				return nil
			}
			fmt.Printf("Total assets reach %s in %d (%s)\n",
				output.FormatCurrency(target), result.Year, output.FormatCurrency(result.Value))
			return nil
		}

		result := solver.FirstProfitableYear(plan, horizon, currentYear)
		if !result.Reached {
			fmt.Printf("Cumulative profit stays negative through %d (final: %s)\n",
				result.Year, output.FormatCurrency(result.Value))
			return nil
		}
		fmt.Printf("Cumulative profit turns non-negative in %d (%s)\n",
			result.Year, output.FormatCurrency(result.Value))
		return nil
	},
}

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Compute a fixed-rate mortgage monthly payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		principalFlag, _ := cmd.Flags().GetString("principal")
		principal, err := decimal.NewFromString(principalFlag)
		if err != nil {
			return fmt.Errorf("invalid principal %q: %w", principalFlag, err)
		}
		rateFlag, _ := cmd.Flags().GetString("rate")
		rate, err := decimal.NewFromString(rateFlag)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", rateFlag, err)
		}
		years, _ := cmd.Flags().GetInt("years")

		payment := calculation.MortgageMonthlyPayment(principal, rate, years)
		fmt.Printf("Monthly payment: %s\n", output.FormatCurrency(payment))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file without running a projection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Plan is valid: %d investments, %d income sources, %d expenses, %d people, %d children\n",
			len(plan.Investments), len(plan.Income), len(plan.Expenses), len(plan.People), len(plan.Children))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{projectCmd, assetsCmd, breakevenCmd} {
		cmd.Flags().Int("years", 0, "Projection horizon in years (overrides the plan default)")
		cmd.Flags().Int("current-year", 0, "First year of the projection (defaults to the current UTC year)")
		cmd.Flags().Bool("debug", false, "Enable debug logging")
	}
	projectCmd.Flags().String("format", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	breakevenCmd.Flags().String("target", "", "Report when total assets reach this amount instead of profit break-even")
	mortgageCmd.Flags().String("principal", "0", "Loan principal")
	mortgageCmd.Flags().String("rate", "0", "Annual interest rate in percent")
	mortgageCmd.Flags().Int("years", 30, "Loan term in years")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(mortgageCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

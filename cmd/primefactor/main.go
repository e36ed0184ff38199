package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Mr128Bit/cryptography/factor"
	"github.com/Mr128Bit/cryptography/internal/config"
	"github.com/Mr128Bit/cryptography/internal/history"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const invalidNumberMsg = "Please submit a valid number"

// FactorOptions for running command handlers with custom output in tests
type FactorOptions struct {
	Stdout io.Writer
}

// Flag parsing stays disabled on the root command so a leading dash in the
// argument (a negative number) reaches the parser instead of pflag. Help is
// routed by hand in the handler. Usage is suppressed on errors so stdout
// carries only result lines; errors still reach stderr through cobra.
var rootCmd = &cobra.Command{
	Use:                "primefactor <number>",
	Short:              "primefactor - factor a number into its two primes",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runFactor,
}

var primesCmd = &cobra.Command{
	Use:                "primes <limit>",
	Short:              "List all primes up to a limit",
	DisableFlagParsing: true,
	RunE:               runPrimes,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently factored numbers",
	RunE:  runHistory,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show primefactor status",
	RunE:  runStatus,
}

var historyLimitFlag int

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "number", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(primesCmd, historyCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFactor is the command handler that uses default options
func runFactor(cmd *cobra.Command, args []string) error {
	return runFactorWithOptions(cmd, args, FactorOptions{})
}

// runFactorWithOptions factors the first argument with injectable output for
// testing. Arguments beyond the first are ignored.
func runFactorWithOptions(cmd *cobra.Command, args []string, opts FactorOptions) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(stdout, invalidNumberMsg)
		return fmt.Errorf("parse number: %w", err)
	}
	if n <= 1 {
		fmt.Fprintln(stdout, invalidNumberMsg)
		return nil
	}

	start := time.Now()
	factors, err := factor.Factorize(uint64(n))
	took := time.Since(start)
	if err != nil {
		// The error text is the user-facing result line.
		fmt.Fprintln(stdout, err)
		return nil
	}

	fmt.Fprintln(stdout, factors)
	recordHistory(uint64(n), factors, took)
	return nil
}

// recordHistory stores a successful factorization when history is enabled.
// Best-effort: failures are logged and never change output or exit code.
func recordHistory(n uint64, factors []uint64, took time.Duration) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("[history] load config: %v", err)
		return
	}
	if !cfg.History.Enabled {
		return
	}

	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		log.Printf("[history] open store: %v", err)
		return
	}
	defer store.Close()

	if err := store.Record(n, factors, took); err != nil {
		log.Printf("[history] record: %v", err)
		return
	}
	if err := store.Prune(cfg.History.Keep); err != nil {
		log.Printf("[history] prune: %v", err)
	}
}

func runPrimes(cmd *cobra.Command, args []string) error {
	return runPrimesWithOptions(cmd, args, FactorOptions{})
}

func runPrimesWithOptions(cmd *cobra.Command, args []string, opts FactorOptions) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}

	limit, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(stdout, invalidNumberMsg)
		return fmt.Errorf("parse limit: %w", err)
	}
	if limit < 0 {
		fmt.Fprintln(stdout, invalidNumberMsg)
		return fmt.Errorf("negative limit %d", limit)
	}

	for _, p := range factor.Primes(uint64(limit)) {
		fmt.Fprintln(stdout, p)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.History.Enabled {
		fmt.Printf("History is disabled. Enable it in %s or set PRIMEFACTOR_HISTORY_ENABLED=true.\n", config.ConfigPath())
		return nil
	}

	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(historyLimitFlag)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No factorizations recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
	return nil
}

func formatEntry(e history.Entry) string {
	took := time.Duration(e.DurationUS) * time.Microsecond
	when := e.CreatedAt
	if t, err := time.Parse("2006-01-02 15:04:05", e.CreatedAt); err == nil {
		when = humanize.Time(t)
	}
	return fmt.Sprintf("%s = %s  (%s, %s)", e.Number, strings.ReplaceAll(e.Factors, " ", " * "), took, when)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Config: error (%v)\n", err)
		return nil
	}

	fmt.Printf("Config: %s\n", config.ConfigPath())
	fmt.Printf("History: enabled=%v\n", cfg.History.Enabled)
	if !cfg.History.Enabled {
		return nil
	}

	dbPath := cfg.HistoryDBPath()
	fmt.Printf("Database: %s\n", dbPath)
	if cfg.History.Keep > 0 {
		fmt.Printf("Keep: %d entries\n", cfg.History.Keep)
	} else {
		fmt.Println("Keep: unlimited")
	}

	// Stat first so a bare status check does not create the database.
	info, err := os.Stat(dbPath)
	if err != nil {
		fmt.Println("Entries: none (database not created yet)")
		return nil
	}

	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Printf("Entries: error (%v)\n", err)
		return nil
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		fmt.Printf("Entries: error (%v)\n", err)
		return nil
	}
	fmt.Printf("Entries: %d (%s on disk)\n", count, humanize.Bytes(uint64(info.Size())))
	return nil
}

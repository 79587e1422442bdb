package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/flights-cli/internal/api"
	"github.com/mobil-koeln/flights-cli/internal/cache"
	"github.com/mobil-koeln/flights-cli/internal/config"
	"github.com/mobil-koeln/flights-cli/internal/logger"
	"github.com/mobil-koeln/flights-cli/internal/models"
	"github.com/mobil-koeln/flights-cli/internal/output"
	"github.com/mobil-koeln/flights-cli/internal/search"
	"github.com/mobil-koeln/flights-cli/internal/session"
	"github.com/mobil-koeln/flights-cli/internal/tui"
)

var version = "0.1.0"

const retryWait = 500 * time.Millisecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flights",
	Short: "Search flights from the terminal",
	Long: `flights is a terminal flight-search client.

Features:
  - Interactive search form with round trip / one way, dates and passengers
  - Results sorted by best, cheapest or fastest
  - Popular destinations to explore
  - JSON output for scripting
  - Optional live offers backend with response caching

Without FLIGHTS_API_URL the built-in offer catalog answers every search
after a short simulated delay (SEARCH_DELAY).

Quick Start:
  1. Launch TUI:              flights (or flights tui)
  2. Search from the shell:   flights search --from JFK --to LAX --depart 2025-06-01
  3. List destinations:       flights destinations`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagNoCache bool
	flagDelay   string
	flagJSON    bool
	flagColor   string
)

// TUI flags
var flagView string

// Search flags
var (
	flagFrom       string
	flagTo         string
	flagDepart     string
	flagReturn     string
	flagPassengers int
	flagTrip       string
	flagSort       string
)

func init() {
	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(destinationsCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")
	rootCmd.PersistentFlags().StringVar(&flagDelay, "delay", "", "Simulated search latency, e.g. 500ms (default from SEARCH_DELAY)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")

	// TUI flags, also accepted by the bare root command
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&flagView, "view", "search", "Start view: search, explore, trips")
	}

	// Search-specific flags
	searchCmd.Flags().StringVarP(&flagFrom, "from", "f", "", "Origin airport or city code (required)")
	searchCmd.Flags().StringVarP(&flagTo, "to", "t", "", "Destination airport or city code (required)")
	searchCmd.Flags().StringVarP(&flagDepart, "depart", "d", "", "Departure date YYYY-MM-DD (required)")
	searchCmd.Flags().StringVarP(&flagReturn, "return", "r", "", "Return date YYYY-MM-DD (round trips only)")
	searchCmd.Flags().IntVarP(&flagPassengers, "passengers", "p", models.MinPassengers, "Number of passengers (1-6)")
	searchCmd.Flags().StringVar(&flagTrip, "trip", string(models.TripRoundTrip), "Trip type: roundtrip, oneway")
	searchCmd.Flags().StringVarP(&flagSort, "sort", "s", "best", "Sort order: best, cheapest, fastest")
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch an interactive terminal UI for searching flights.

Navigation:
  F1-F4        Switch between Search, Results, Explore and My Trips
  1-4          Same, when no text field is focused
  Tab          Move to the next field (Shift+Tab: previous)
  Enter        Search, or activate the focused control
  Ctrl+X       Swap origin and destination
  -/+          Fewer/more passengers
  s            Cycle sort order on the results
  j/k          Move through results
  e, Esc       Back to the search form
  q, Ctrl+C    Quit`,
	RunE: runTUI,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search flights",
	Long: `Search flights and print the offers.

Origin, destination and departure date are required. The return date is
ignored for one-way trips.

Examples:
  flights search --from JFK --to LAX --depart 2025-06-01
  flights search -f JFK -t LAX -d 2025-06-01 -r 2025-06-08 -p 2
  flights search -f JFK -t LAX -d 2025-06-01 --trip oneway --sort cheapest
  flights search -f JFK -t LAX -d 2025-06-01 --json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List popular destinations",
	Args:  cobra.NoArgs,
	RunE:  runDestinations,
}

// loadConfig reads the environment and applies the global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagDelay != "" {
		d, err := time.ParseDuration(flagDelay)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid --delay %q: want a non-negative duration like 500ms", flagDelay)
		}
		cfg.Search.Delay = d
	}
	if flagNoCache {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

// createSearcher builds the searcher for the configuration: the live backend
// when FLIGHTS_API_URL is set, the built-in catalog otherwise.
func createSearcher(cfg *config.Config, log *logger.Logger) (search.Searcher, error) {
	if !cfg.UsesLiveAPI() {
		catalog := search.NewCatalogSearcher(search.WithDelay(cfg.Search.Delay))
		log.Debug().Dur("delay", catalog.Delay()).Msg("using built-in offer catalog")
		return search.WithLogging(catalog, log), nil
	}

	opts := []api.ClientOption{
		api.WithBaseURL(cfg.API.URL),
		api.WithAPIKey(cfg.API.Key),
		api.WithAPIHost(cfg.API.Host),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.Retries, retryWait),
		api.WithLogger(log.Logger),
	}

	// Enable caching unless disabled
	if cfg.Cache.Enabled {
		fc, err := cache.NewFileCache(cfg.Cache.Dir, cfg.Cache.TTL)
		if err != nil {
			log.Warn().Err(err).Msg("response cache unavailable")
		} else {
			_ = fc.Cleanup()
			log.Debug().Str("dir", fc.Dir()).Dur("ttl", cfg.Cache.TTL).Msg("response cache enabled")
			opts = append(opts, api.WithCache(fc))
		}
	}

	client, err := api.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return search.WithLogging(search.NewRemoteSearcher(client), log), nil
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// parseStartView resolves --view. Results need a submitted search first.
func parseStartView() (session.View, error) {
	v, err := session.ParseView(flagView)
	if err != nil {
		return session.ViewSearch, fmt.Errorf("invalid --view: %w", err)
	}
	if v == session.ViewResults {
		return session.ViewSearch, fmt.Errorf("invalid --view %q: results are only available after a search", flagView)
	}
	return v, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	view, err := parseStartView()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The UI owns the terminal: log to LOG_FILE or nowhere
	log, closer, err := logger.New(cfg.Logging, nil)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	searcher, err := createSearcher(cfg, log)
	if err != nil {
		return err
	}

	model := tui.New(tui.Options{
		Searcher:  searcher,
		Logger:    log,
		Timeout:   cfg.Search.Timeout,
		StartView: view,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

// searchResult is the JSON shape of the search command
type searchResult struct {
	Query  models.SearchQuery   `json:"query"`
	Sort   string               `json:"sort"`
	Offers []models.FlightOffer `json:"offers"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	tripType, err := models.ParseTripType(flagTrip)
	if err != nil {
		return err
	}
	order, err := models.ParseSortOrder(flagSort)
	if err != nil {
		return err
	}
	if flagPassengers < models.MinPassengers || flagPassengers > models.MaxPassengers {
		return fmt.Errorf("--passengers must be between %d and %d, got %d",
			models.MinPassengers, models.MaxPassengers, flagPassengers)
	}

	query := models.SearchQuery{
		Origin:      flagFrom,
		Destination: flagTo,
		DepartDate:  flagDepart,
		ReturnDate:  flagReturn,
		Passengers:  flagPassengers,
		TripType:    tripType,
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("%s: %w", models.MissingFieldsMessage, err)
	}
	query = query.Normalized()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Quiet by default on the command line unless LOG_LEVEL asks otherwise
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Logging.Level = "warn"
	}
	log, closer, err := logger.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	searcher, err := createSearcher(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Search.Timeout)
	defer cancel()

	offers, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: %w", session.SearchFailedMessage, err)
	}
	offers = models.SortOffers(offers, order)

	// JSON output
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), searchResult{
			Query:  query,
			Sort:   strings.ToLower(order.String()),
			Offers: offers,
		})
	}

	// Text output with colors
	opts := output.TableOptions{Colors: output.NewColors(getColorMode())}
	output.RenderSummary(cmd.OutOrStdout(), query, opts)
	output.RenderOffers(cmd.OutOrStdout(), offers, opts)

	return nil
}

func runDestinations(cmd *cobra.Command, args []string) error {
	dests := models.PopularDestinations()

	// JSON output
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), dests)
	}

	output.RenderDestinations(cmd.OutOrStdout(), dests, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

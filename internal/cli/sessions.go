package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avlasov/marketlens/pkg/aggregate"
	"github.com/avlasov/marketlens/pkg/filter"
	"github.com/avlasov/marketlens/pkg/pagination"
)

var sessionsFlags struct {
	search    string
	role      string
	dateRange string
	dateFrom  string
	dateTo    string
	pages     int
	all       bool
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List analysis sessions",
	Long: `List built-in and user-created analysis sessions, most recently
touched first. Filters combine: a session must match every filter given.`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().StringVar(&sessionsFlags.search, "search", "", "substring match over title, description, comment, thoughts and owner")
	sessionsCmd.Flags().StringVar(&sessionsFlags.role, "role", "", "exact owner role match")
	sessionsCmd.Flags().StringVar(&sessionsFlags.dateRange, "range", "", "date window: today, week, month, quarter, year or custom")
	sessionsCmd.Flags().StringVar(&sessionsFlags.dateFrom, "from", "", "custom window start (YYYY-MM-DD)")
	sessionsCmd.Flags().StringVar(&sessionsFlags.dateTo, "to", "", "custom window end (YYYY-MM-DD, inclusive)")
	sessionsCmd.Flags().IntVar(&sessionsFlags.pages, "pages", 1, "number of pages to show")
	sessionsCmd.Flags().BoolVar(&sessionsFlags.all, "all", false, "show all matching sessions")
}

func runSessions(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	merged := aggregate.Build(a.catalog.RawSessions, a.store.LoadAll(), a.catalog.Users)

	spec := filter.SessionSpec{
		Search:    sessionsFlags.search,
		Role:      sessionsFlags.role,
		DateRange: filter.DateRange(sessionsFlags.dateRange),
		DateFrom:  sessionsFlags.dateFrom,
		DateTo:    sessionsFlags.dateTo,
	}
	matched := filter.Sessions(merged, spec, time.Now())

	cursor := pagination.New(matched, a.cfg.Listing.SessionsPerPage)
	for i := 1; i < sessionsFlags.pages; i++ {
		cursor.LoadMore()
	}
	if sessionsFlags.all {
		for cursor.HasMore() {
			cursor.LoadMore()
		}
	}

	page := cursor.Page()
	if len(page) == 0 {
		fmt.Println("No sessions match the given filters.")
		return nil
	}

	for _, s := range page {
		printSession(s)
	}
	fmt.Printf("Showing %d of %d sessions", len(page), len(matched))
	if cursor.HasMore() {
		fmt.Print(" (use --pages or --all for more)")
	}
	fmt.Println()

	return nil
}

func printSession(s aggregate.Annotated) {
	fmt.Printf("%s  %s\n", s.ID, s.Title)
	fmt.Printf("    owner: %s (%s)\n", s.User.DisplayName, s.User.Role)
	if s.Period != nil {
		fmt.Printf("    period: %s — %s\n", s.Period.From, s.Period.To)
	}
	if len(s.ProductIDs) > 0 {
		ids := make([]string, len(s.ProductIDs))
		for i, id := range s.ProductIDs {
			ids[i] = string(id)
		}
		fmt.Printf("    products: %s\n", strings.Join(ids, ", "))
	}
	fmt.Printf("    updated: %s\n", s.Touched().Format(time.RFC3339))
}

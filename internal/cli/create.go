package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/session"
)

var createFlags struct {
	title       string
	description string
	thoughts    string
	comment     string
	dateFrom    string
	dateTo      string
	products    []string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom analysis session",
	Long: `Create a custom analysis session comparing two or more products.
All fields are required; nothing is saved if validation fails. The session
is owned by the currently logged-in user.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createFlags.title, "title", "", "session title")
	createCmd.Flags().StringVar(&createFlags.description, "description", "", "analysis goal description")
	createCmd.Flags().StringVar(&createFlags.thoughts, "thoughts", "", "thoughts or hypotheses")
	createCmd.Flags().StringVar(&createFlags.comment, "comment", "", "team comment")
	createCmd.Flags().StringVar(&createFlags.dateFrom, "from", "", "analysis period start (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createFlags.dateTo, "to", "", "analysis period end (YYYY-MM-DD)")
	createCmd.Flags().StringSliceVar(&createFlags.products, "product", nil, "product id to compare (repeatable, at least 2 distinct)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	current, ok := a.auth.Current()
	if !ok {
		return fmt.Errorf("not logged in; run 'marketlens login' first")
	}

	ids := make([]catalog.ID, len(createFlags.products))
	for i, p := range createFlags.products {
		ids[i] = catalog.ID(p)
	}

	draft := session.Draft{
		Title:       createFlags.title,
		Description: createFlags.description,
		Thoughts:    createFlags.thoughts,
		Comment:     createFlags.comment,
		DateFrom:    createFlags.dateFrom,
		DateTo:      createFlags.dateTo,
		ProductIDs:  ids,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	created := a.store.Append(session.NewFromDraft(draft, current.ID))

	fmt.Printf("Created session %s\n", created.ID)
	for _, p := range a.catalog.ResolveProducts(created.ProductIDs) {
		fmt.Printf("    %s  %s\n", p.ID, p.Name)
	}

	return nil
}

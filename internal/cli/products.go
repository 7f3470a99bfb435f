package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/filter"
	"github.com/avlasov/marketlens/pkg/pagination"
)

var productsFlags struct {
	search    string
	category  string
	rating    string
	sentiment string
	source    string
	theme     string
	pages     int
	all       bool
	facets    bool
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `List products from the seed catalog with review statistics.
Filters combine: a product must match every filter given.`,
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)

	productsCmd.Flags().StringVar(&productsFlags.search, "search", "", "substring match over the product name")
	productsCmd.Flags().StringVar(&productsFlags.category, "category", "", "exact category match")
	productsCmd.Flags().StringVar(&productsFlags.rating, "rating", "", "whole-star rating match (e.g. 4 matches 4.0-4.9)")
	productsCmd.Flags().StringVar(&productsFlags.sentiment, "sentiment", "", "dominant review sentiment: positive, negative or neutral")
	productsCmd.Flags().StringVar(&productsFlags.source, "source", "", "sales channel the product is listed on")
	productsCmd.Flags().StringVar(&productsFlags.theme, "theme", "", "discussion theme present in the reviews")
	productsCmd.Flags().IntVar(&productsFlags.pages, "pages", 1, "number of pages to show")
	productsCmd.Flags().BoolVar(&productsFlags.all, "all", false, "show all matching products")
	productsCmd.Flags().BoolVar(&productsFlags.facets, "facets", false, "print the available filter values and exit")
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if productsFlags.facets {
		printFacets(a.catalog)
		return nil
	}

	spec := filter.ProductSpec{
		Search:    productsFlags.search,
		Category:  productsFlags.category,
		Rating:    productsFlags.rating,
		Sentiment: productsFlags.sentiment,
		Source:    productsFlags.source,
		Theme:     productsFlags.theme,
	}
	matched := filter.Products(a.catalog.Products, spec)

	cursor := pagination.New(matched, a.cfg.Listing.ProductsPerPage)
	for i := 1; i < productsFlags.pages; i++ {
		cursor.LoadMore()
	}
	if productsFlags.all {
		for cursor.HasMore() {
			cursor.LoadMore()
		}
	}

	page := cursor.Page()
	if len(page) == 0 {
		fmt.Println("No products match the given filters.")
		return nil
	}

	for _, p := range page {
		printProduct(p)
	}
	fmt.Printf("Showing %d of %d products", len(page), len(matched))
	if cursor.HasMore() {
		fmt.Print(" (use --pages or --all for more)")
	}
	fmt.Println()

	return nil
}

func printProduct(p catalog.Product) {
	fmt.Printf("%s  %s\n", p.ID, p.Name)
	fmt.Printf("    category: %s\n", p.Category.Name)
	fmt.Printf("    rating: %.1f (%d reviews", p.ReviewStats.AverageRating, p.ReviewStats.TotalReviews)
	if band := p.RatingBand(); band != "" {
		fmt.Printf(", %s", band)
	}
	fmt.Println(")")
	fmt.Printf("    sentiment: %.0f%% positive / %.0f%% negative\n", p.PositivePercent(), p.NegativePercent())
	fmt.Printf("    est. sales/month: %d\n", p.SalesPerMonth())
}

func printFacets(cat *catalog.Catalog) {
	printFacet("Categories", catalog.Categories(cat.Products))
	printFacet("Sources", catalog.Sources(cat.Products))
	printFacet("Themes", catalog.Themes(cat.Products))
	printFacet("Roles", catalog.Roles(cat.Users))
}

func printFacet(title string, values []string) {
	fmt.Printf("%s:\n", title)
	for _, v := range values {
		fmt.Printf("  %s\n", v)
	}
}

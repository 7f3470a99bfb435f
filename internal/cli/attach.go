package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avlasov/marketlens/pkg/catalog"
)

var attachCmd = &cobra.Command{
	Use:   "attach <session-id> <product-id>",
	Short: "Attach a product to a custom session",
	Long: `Attach a product to an existing custom session's comparison list.
Attaching a product that is already present leaves the session unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sessionID := catalog.ID(args[0])
	productID := catalog.ID(args[1])

	result, err := a.store.AttachProduct(sessionID, productID)
	if err != nil {
		return err
	}

	switch {
	case result.SessionNotFound:
		return fmt.Errorf("no custom session with id %s", sessionID)
	case result.AlreadyExists:
		fmt.Printf("Product %s is already part of session %s\n", productID, sessionID)
	default:
		fmt.Printf("Attached product %s to session %s (%d products)\n",
			productID, sessionID, len(result.Session.ProductIDs))
	}

	return nil
}

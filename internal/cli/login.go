package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginFlags struct {
	login    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a directory user",
	Long: `Log in by matching credentials against the user directory. The
authenticated user owns sessions created afterwards.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current user",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginFlags.login, "login", "", "user login")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "user password")
	_ = loginCmd.MarkFlagRequired("login")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := a.auth.Login(a.catalog.Users, loginFlags.login, loginFlags.password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", u.DisplayName(), u.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.auth.Logout()
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	u, ok := a.auth.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("%s (%s)\n", u.FullName(), u.Role)
	if a.auth.IsAdmin() {
		fmt.Println("Administrator privileges are active.")
	}
	return nil
}

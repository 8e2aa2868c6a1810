package auth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/config"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
)

// AuthCmd represents the auth command
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long: `Authentication commands for the Soley admin CLI.

Only super admin accounts can sign in. The session token is stored in the
config file and sent with every request until logout.`,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login as a super admin",
	Long:  "Authenticate with email and password. The password is prompted for when not given.",
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout",
	Long:  "Forget the stored session token. Language and device id are kept.",
	RunE:  runLogout,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long:  "Display current authentication status and user information",
	RunE:  runStatus,
}

func runLogin(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" && email != "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		line, err := a.In.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	form := forms.LoginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		return err
	}

	resp, err := a.Client.Login(cmd.Context(), strings.TrimSpace(email), password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	u := resp.User
	err = config.UpdateSession(resp.Token, config.SessionUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	format.PrintSuccess("✓ Successfully logged in as %s", u.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)
	cfg := config.Get()
	if cfg.Session.AuthToken == "" {
		return fmt.Errorf("not logged in")
	}

	email := cfg.Session.User.Email
	if err := config.ClearSession(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	a.Client.SetToken("")

	format.PrintSuccess("✓ Successfully logged out %s", email)
	return nil
}

type status struct {
	LoggedIn bool   `json:"loggedIn" yaml:"logged_in"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Server   string `json:"server" yaml:"server"`
	Language string `json:"language" yaml:"language"`
	DeviceID string `json:"deviceId" yaml:"device_id"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)
	s := a.Config.Session

	return format.Print(status{
		LoggedIn: s.AuthToken != "",
		Email:    s.User.Email,
		Name:     strings.TrimSpace(s.User.FirstName + " " + s.User.LastName),
		Role:     s.User.Role,
		Server:   a.Config.Server.URL,
		Language: a.Client.Language(),
		DeviceID: a.Client.DeviceID(),
	})
}

func init() {
	// Add login command flags
	loginCmd.Flags().StringP("email", "e", "", "Email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.MarkFlagRequired("email")

	// Add subcommands
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(pushCmd)
}

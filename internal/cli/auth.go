package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/silebat/zenodo-go/pkg/errors"
	"github.com/silebat/zenodo-go/pkg/session"
	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// loginCommand creates the login command.
func (c *CLI) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Save an access token for future commands",
		Long: `Verify a personal access token against the deposition API and save it.

Create a token in your account settings (with the deposit:write and
deposit:actions scopes) and paste it when prompted, or pass it via --token.
The token is stored in ~/.config/zenodo-go/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if existing, _ := loadSession(); existing != nil {
				printWarning("Already logged in (%s)", existing.Environment())
				printDetail("Run 'zenodo logout' first to switch tokens")
				return nil
			}

			token := c.token
			if token == "" {
				var err error
				token, err = promptToken()
				if err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			client, err := zenodo.New(zenodo.Config{AccessToken: token, Sandbox: c.sandbox})
			if err != nil {
				return err
			}

			spinner := newSpinner(ctx, "Verifying token...")
			resp, err := client.ListDepositions(ctx)
			if err != nil {
				spinner.StopWithError("Verification failed")
				return errors.Wrap(errors.ErrCodeNetwork, err, "verify token")
			}
			if !zenodo.Success(resp.StatusCode) {
				spinner.StopWithError("Token rejected")
				return errors.New(errors.ErrCodeUnauthorized, "verify token: %s", resp.Status)
			}
			spinner.Stop()

			store, err := session.NewStore()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "open session store")
			}
			sess := session.New(token, c.sandbox, session.DefaultTTL)
			if err := store.Save(sess); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "save session")
			}

			printSuccess("Logged in (%s)", sess.Environment())
			printDetail("Session expires %s", sess.ExpiresAt.Format("Jan 2, 2006"))
			return nil
		},
	}
}

// logoutCommand creates the logout command.
func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "open session store")
			}
			if err := store.Delete(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "delete session")
			}
			printSuccess("Logged out")
			return nil
		},
	}
}

// promptToken reads an access token from stdin.
func promptToken() (string, error) {
	fmt.Print(StyleDim.Render("Access token: "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read token")
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "empty token")
	}
	return token, nil
}

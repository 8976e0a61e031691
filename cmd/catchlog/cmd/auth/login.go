// Package auth provides the login, logout and status commands.
package auth

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/errors"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(app application.Application) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:     "login",
		GroupID: "session",
		Short:   "Sign in to the catch service",
		Long: `Login exchanges an email and password for a token and keeps it for
later commands. Without --password the password is read from the first
line of standard input.`,
		Example: `  catchlog login --email moi@exemple.org
  echo "$PASS" | catchlog login --email moi@exemple.org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session()
			if err != nil {
				return err
			}

			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Mot de passe : ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.WrapIO("read", "stdin", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			v := views.NewLoginView(sess)
			if !v.Submit(cmd.Context(), email, password) {
				return errors.New(v.Error())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connecté en tant que %s\n", v.Email())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (courriel)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (motPasse)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		GroupID: "session",
		Short:   "Forget the stored token",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session()
			if err != nil {
				return err
			}
			sess.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Déconnecté")
			return nil
		},
	}
}

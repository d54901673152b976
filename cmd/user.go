package cmd

import (
	"bloggo/blog"
	"bloggo/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	userCmd.AddCommand(userAddCmd)
	RootCmd.AddCommand(userCmd)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Create a user, even when sign up is disabled",
	Args:  cobra.ExactArgs(2),
	RunE:  addUser,
}

func addUser(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	u, err := blog.New(s).Register(cmd.Context(), domain.CredentialsForm{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	success("Created user %s (id %d)", color.New(color.Bold).Sprint(u.Username), u.ID)
	return nil
}

package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// actionsCommand creates the actions command with the lifecycle subcommands.
func (c *CLI) actionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Deposition lifecycle actions",
		Long: `Walk a deposition through its lifecycle.

The remote service enforces all transitions; these commands just issue the
request and report the verdict. Publishing is irreversible: a published
deposition can no longer be deleted.`,
	}

	cmd.AddCommand(c.actionCommand("publish", "Publish a deposition (irreversible)", (*zenodo.Client).Publish))
	cmd.AddCommand(c.actionCommand("edit", "Unlock a published deposition for editing", (*zenodo.Client).Edit))
	cmd.AddCommand(c.actionCommand("discard", "Discard changes of the current editing session", (*zenodo.Client).Discard))
	cmd.AddCommand(c.newVersionCommand())

	return cmd
}

// actionCommand builds a subcommand for a single bodyless lifecycle action.
func (c *CLI) actionCommand(name, short string, call func(*zenodo.Client, context.Context, string) (*zenodo.Response, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <deposition-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := call(client, ctx, args[0])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("%s: deposition %s", name, args[0])
			return nil
		},
	}
}

// newVersionCommand builds the newversion subcommand. Unlike the other
// actions it reports the freshly created draft's id.
func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "newversion <deposition-id>",
		Short: "Create a new draft version of a published deposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.NewVersion(ctx, args[0])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}

			dep, err := resp.Deposition()
			if err != nil {
				return err
			}
			printSuccess("New version of deposition %s", strconv.Itoa(dep.ID))
			if dep.Links.Latest != "" {
				printKeyValue("Draft", StyleLink.Render(dep.Links.Latest))
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// depositionCommand creates the deposition command with subcommands.
func (c *CLI) depositionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deposition",
		Aliases: []string{"dep"},
		Short:   "Manage depositions",
	}

	cmd.AddCommand(c.depositionListCommand())
	cmd.AddCommand(c.depositionCreateCommand())
	cmd.AddCommand(c.depositionGetCommand())
	cmd.AddCommand(c.depositionUpdateCommand())
	cmd.AddCommand(c.depositionDeleteCommand())

	return cmd
}

// depositionListCommand creates the "deposition list" subcommand.
func (c *CLI) depositionListCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your depositions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			spinner := newSpinner(ctx, "Fetching depositions...")
			resp, err := client.ListDepositions(ctx)
			spinner.Stop()
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}

			deps, err := resp.Depositions()
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				printInfo("No depositions")
				return nil
			}

			if pick {
				selected, err := pickDeposition(deps)
				if err != nil {
					return err
				}
				if selected != nil {
					fmt.Println(selected.ID)
				}
				return nil
			}

			for _, d := range deps {
				printDeposition(d)
			}
			printDetail("%d depositions", len(deps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "select a deposition interactively and print its id")
	return cmd
}

// depositionCreateCommand creates the "deposition create" subcommand.
func (c *CLI) depositionCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new empty deposition",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.CreateDeposition(ctx)
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
			printSuccess("Created deposition %s", StyleNumber.Render(strconv.Itoa(dep.ID)))
			if dep.Links.Bucket != "" {
				printKeyValue("Bucket", dep.Links.Bucket)
			}
			return nil
		},
	}
}

// depositionGetCommand creates the "deposition get" subcommand.
func (c *CLI) depositionGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single deposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.GetDeposition(ctx, args[0])
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

			printKeyValue("ID", strconv.Itoa(dep.ID))
			printKeyValue("Title", orDash(dep.Title))
			printKeyValue("State", orDash(dep.State))
			printKeyValue("Published", strconv.FormatBool(dep.Submitted))
			if dep.DOI != "" {
				printKeyValue("DOI", dep.DOI)
			}
			if dep.Links.Bucket != "" {
				printKeyValue("Bucket", dep.Links.Bucket)
			}
			if len(dep.Files) > 0 {
				printNewline()
				for _, f := range dep.Files {
					printDetail("%s %s (%d bytes)", f.ID, f.Filename, f.Filesize)
				}
			}
			return nil
		},
	}
}

// depositionUpdateCommand creates the "deposition update" subcommand.
func (c *CLI) depositionUpdateCommand() *cobra.Command {
	var (
		title       string
		description string
		uploadType  string
		license     string
		version     string
		keywords    []string
		creators    []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update deposition metadata",
		Long: `Replace the metadata of a draft deposition.

Creators are given as "Name" or "Name;Affiliation;ORCID", repeatable:

  zenodo deposition update 12345 --title "Survey data" \
      --creator "Doe, Jane;BfR" --creator "Roe, Riley"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			metadata := zenodo.DepositionMetadata{
				Title:       title,
				Description: description,
				UploadType:  uploadType,
				License:     license,
				Version:     version,
				Keywords:    keywords,
			}
			for _, raw := range creators {
				metadata.Creators = append(metadata.Creators, parseCreator(raw))
			}

			resp, err := client.UpdateDeposition(ctx, args[0], metadata)
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("Updated deposition %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "deposition title")
	cmd.Flags().StringVar(&description, "description", "", "deposition description")
	cmd.Flags().StringVar(&uploadType, "upload-type", "dataset", "upload type (publication, dataset, software, ...)")
	cmd.Flags().StringVar(&license, "license", "", "license identifier (e.g. cc-by-4.0)")
	cmd.Flags().StringVar(&version, "version", "", "version string")
	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "keyword (repeatable)")
	cmd.Flags().StringArrayVar(&creators, "creator", nil, `creator as "Name;Affiliation;ORCID" (repeatable)`)
	return cmd
}

// depositionDeleteCommand creates the "deposition delete" subcommand.
func (c *CLI) depositionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an unpublished deposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.DeleteDeposition(ctx, args[0])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("Deleted deposition %s", args[0])
			return nil
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

// printDeposition prints a one-line deposition summary.
func printDeposition(d zenodo.Deposition) {
	state := d.State
	if d.Submitted {
		state = "published"
	}
	fmt.Println("  " + StyleNumber.Render(strconv.Itoa(d.ID)) + "  " +
		StyleValue.Render(orDash(d.Title)) + "  " + StyleDim.Render(state))
}

// parseCreator splits a "Name;Affiliation;ORCID" flag value.
func parseCreator(raw string) zenodo.Creator {
	parts := strings.SplitN(raw, ";", 3)
	creator := zenodo.Creator{Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		creator.Affiliation = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		creator.ORCID = strings.TrimSpace(parts[2])
	}
	return creator
}

// responseError converts a non-success API response into a CLI error.
func responseError(resp *zenodo.Response) error {
	status := resp.Status
	if zenodo.Known(resp.StatusCode) {
		status = fmt.Sprintf("%d %s", resp.StatusCode, zenodo.StatusCode(resp.StatusCode))
	}
	body := strings.TrimSpace(string(resp.Body))
	if body == "" {
		return fmt.Errorf("request failed: %s", status)
	}
	return fmt.Errorf("request failed: %s: %s", status, body)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

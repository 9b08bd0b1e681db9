package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// filesCommand creates the files command with subcommands.
func (c *CLI) filesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage deposition files",
	}

	cmd.AddCommand(c.filesListCommand())
	cmd.AddCommand(c.filesUploadCommand())
	cmd.AddCommand(c.filesSortCommand())
	cmd.AddCommand(c.filesGetCommand())
	cmd.AddCommand(c.filesRenameCommand())
	cmd.AddCommand(c.filesDeleteCommand())

	return cmd
}

// filesListCommand creates the "files list" subcommand.
func (c *CLI) filesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <deposition-id>",
		Short: "List the files of a deposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.ListFiles(ctx, args[0])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}

			files, err := resp.Files()
			if err != nil {
				return err
			}
			if len(files) == 0 {
				printInfo("No files")
				return nil
			}
			for _, f := range files {
				fmt.Println("  " + StyleDim.Render(f.ID) + "  " +
					StyleValue.Render(f.Filename) + "  " +
					StyleDim.Render(fmt.Sprintf("%d bytes", f.Filesize)))
			}
			return nil
		},
	}
}

// filesUploadCommand creates the "files upload" subcommand.
func (c *CLI) filesUploadCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "upload <deposition-id> <path>",
		Short: "Upload a local file to a deposition",
		Long: `Stream a local file into the deposition's upload bucket.

The deposition is fetched first to resolve its current bucket URL, then the
file content is streamed directly from disk; large files are not buffered in
memory. By default the file keeps its local name; use --name to store it
under a different one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			depositionID, path := args[0], args[1]

			target := name
			if target == "" {
				target = filepath.Base(path)
			}

			client, err := c.newClient()
			if err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			track := newProgress(logger)

			spinner := newSpinner(ctx, fmt.Sprintf("Uploading %s...", target))
			resp, err := client.UploadFile(ctx, depositionID, target, path)
			spinner.Stop()
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}

			file, err := resp.File()
			if err != nil {
				return err
			}
			track.done(fmt.Sprintf("Uploaded %s", target))
			printSuccess("Stored as %s", StyleValue.Render(file.Filename))
			if file.Checksum != "" {
				printDetail("checksum %s", file.Checksum)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "target filename (defaults to the local name)")
	return cmd
}

// filesSortCommand creates the "files sort" subcommand.
func (c *CLI) filesSortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <deposition-id> <file-id>...",
		Short: "Set the display order of deposition files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.SortFiles(ctx, args[0], args[1:])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("Reordered %d files", len(args)-1)
			return nil
		},
	}
}

// filesGetCommand creates the "files get" subcommand.
func (c *CLI) filesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <deposition-id> <file-id>",
		Short: "Show a single deposition file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.GetFile(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}

			file, err := resp.File()
			if err != nil {
				return err
			}
			printKeyValue("ID", file.ID)
			printKeyValue("Filename", file.Filename)
			printKeyValue("Size", fmt.Sprintf("%d bytes", file.Filesize))
			if file.Checksum != "" {
				printKeyValue("Checksum", file.Checksum)
			}
			return nil
		},
	}
}

// filesRenameCommand creates the "files rename" subcommand.
func (c *CLI) filesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <deposition-id> <file-id> <new-name>",
		Short: "Rename an uploaded file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.RenameFile(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("Renamed to %s", StyleValue.Render(args[2]))
			return nil
		},
	}
}

// filesDeleteCommand creates the "files delete" subcommand.
func (c *CLI) filesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deposition-id> <file-id>",
		Short: "Delete a file from an unpublished deposition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient()
			if err != nil {
				return err
			}

			resp, err := client.DeleteFile(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if !zenodo.Success(resp.StatusCode) {
				return responseError(resp)
			}
			printSuccess("Deleted file %s", args[1])
			return nil
		},
	}
}

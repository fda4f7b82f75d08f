package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newPostCmd() *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post [URL]",
		Short: "Create a resource at URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, http.MethodPost, args)
		},
	}
	addBodyFlags(postCmd)
	return postCmd
}

// addBodyFlags registers the payload flags shared by the write commands.
func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "Data to send in the request body, @file reads it from a file")
	cmd.Flags().StringArrayP("form", "F", []string{}, "Form field key=value (can be used multiple times)")
	cmd.Flags().StringArray("file", []string{}, "File to upload; the first file sets the Content-Type")
	cmd.Flags().Bool("empty", false, "Send the request without a body")
}

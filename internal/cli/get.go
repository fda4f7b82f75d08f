package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get [URL] [ID]",
		Short: "Fetch all resources at URL, or the one identified by ID",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, http.MethodGet, args)
		},
	}
	return getCmd
}

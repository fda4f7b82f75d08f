// Copyright (c) 2025, Wesley Brown
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete [URL]",
		Short: "Delete the resource at URL",
		Long: `Delete the resource at URL. Like the other write commands it sends a
body; pass --empty to send none.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, http.MethodDelete, args)
		},
	}
	addBodyFlags(deleteCmd)
	return deleteCmd
}

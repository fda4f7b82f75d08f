// Copyright (c) 2025, Wesley Brown
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newPutCmd() *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put [URL]",
		Short: "Replace the resource at URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, http.MethodPut, args)
		},
	}
	addBodyFlags(putCmd)
	return putCmd
}

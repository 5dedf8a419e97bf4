// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"piiscan/internal/signatures"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in signature catalog",
	Long:  "Patterns prints every built-in signature catalog entry with its entity type and base confidence. Expressions themselves are not printed.",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tENTITY\tCONFIDENCE\tCONTEXT\tDESCRIPTION")
		for _, p := range signatures.DefaultPatterns() {
			context := ""
			if p.NeedsContext {
				context = "required"
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n",
				p.Name, p.EntityType, p.Confidence, context, p.Description)
		}
		w.Flush()
	},
}

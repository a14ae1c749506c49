package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/ui/output"
	"go.trai.ch/jarlock/internal/ui/style"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.options()
			doc, err := c.app.Read(opts.Lockfile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderDocument(out, doc, output.IsTerminal(out))
			return nil
		},
	}
}

// renderDocument writes a human readable summary of doc. Styles are only
// applied when styled is set.
func renderDocument(w io.Writer, doc *domain.LockDocument, styled bool) {
	heading, muted := style.Heading.Render, style.Muted.Render
	if !styled {
		heading = plain
		muted = plain
	}

	var b strings.Builder

	if len(doc.Repositories) > 0 {
		b.WriteString(heading("repositories") + "\n")
		for _, r := range doc.Repositories {
			b.WriteString("  " + r + "\n")
		}
	}

	if len(doc.Maps) > 0 {
		b.WriteString(heading("maps") + "\n")
		for _, m := range doc.Maps {
			fmt.Fprintf(&b, "  %s %s %s\n", m.Key, muted(style.Arrow), strings.Join(m.Paths, ", "))
		}
	}

	if len(doc.Excludes) > 0 {
		b.WriteString(heading("excludes") + "\n")
		for _, e := range doc.Excludes {
			b.WriteString("  " + e.String() + "\n")
		}
	}

	for _, s := range doc.Scopes {
		fmt.Fprintf(&b, "%s %s\n",
			heading(s.Name),
			muted(fmt.Sprintf("(%d declared, %d resolved)", len(s.Dependencies), len(s.ResolvedDependencies))))
		for _, r := range s.ResolvedDependencies {
			b.WriteString("  " + r + "\n")
		}
	}

	_, _ = io.WriteString(w, b.String())
}

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// Package docs generates reference documentation for the snipgen CLI in
// Markdown and man-page formats.
package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// GenMarkdownTree generates markdown documentation for a command and all
// its non-hidden subcommands, one file per command under dir.
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	for _, c := range cmd.Commands() {
		if c.Hidden {
			continue
		}
		if err := GenMarkdownTree(c, dir); err != nil {
			return err
		}
	}

	filename := filepath.Join(dir, markdownFilename(cmd))
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	return GenMarkdown(cmd, f)
}

// GenMarkdown generates markdown documentation for a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	name := cmd.CommandPath()

	buf.WriteString("## " + name + "\n\n")
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Runnable() {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	if subcommands := visibleCommands(cmd); len(subcommands) > 0 {
		buf.WriteString("### Subcommands\n\n")
		for _, c := range subcommands {
			fmt.Fprintf(buf, "* [%s](%s) - %s\n", c.CommandPath(), markdownFilename(c), c.Short)
		}
		buf.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n")
		buf.WriteString("```\n" + flags.FlagUsages() + "```\n\n")
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n")
		buf.WriteString("```\n" + flags.FlagUsages() + "```\n\n")
	}

	if cmd.HasParent() {
		parent := cmd.Parent()
		buf.WriteString("### See also\n\n")
		fmt.Fprintf(buf, "* [%s](%s) - %s\n", parent.CommandPath(), markdownFilename(parent), parent.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}

func markdownFilename(cmd *cobra.Command) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", "_") + ".md"
}

// visibleCommands returns non-hidden subcommands sorted by name, excluding
// the implicit help command.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.Hidden && c.Name() != "help" {
			commands = append(commands, c)
		}
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

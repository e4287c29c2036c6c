package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
)

// GenManHeader contains man page metadata.
type GenManHeader struct {
	Title   string
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// GenManTree generates man pages for cmd and all non-hidden subcommands
// under dir.
func GenManTree(cmd *cobra.Command, dir string) error {
	header := &GenManHeader{
		Section: "1",
		Source:  "Snipgen",
		Manual:  "Snipgen Manual",
	}

	for _, c := range cmd.Commands() {
		if c.Hidden {
			continue
		}
		if err := GenManTree(c, dir); err != nil {
			return err
		}
	}

	filename := filepath.Join(dir, manFilename(cmd, header.Section))
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	return GenMan(cmd, header, f)
}

// GenMan generates a man page for a single command.
func GenMan(cmd *cobra.Command, header *GenManHeader, w io.Writer) error {
	if header == nil {
		header = &GenManHeader{Section: "1"}
	}
	if header.Section == "" {
		header.Section = "1"
	}

	_, err := w.Write(md2man.Render(genMan(cmd, header)))
	return err
}

func genMan(cmd *cobra.Command, header *GenManHeader) []byte {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	name := cmd.CommandPath()

	date := time.Now()
	if header.Date != nil {
		date = *header.Date
	}
	title := header.Title
	if title == "" {
		title = strings.ToUpper(strings.ReplaceAll(name, " ", "\\-"))
	}
	fmt.Fprintf(buf, "%% %s(%s) %s | %s\n\n", title, header.Section, date.Format("Jan 2006"), header.Manual)

	buf.WriteString("# NAME\n")
	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(buf, "%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n")
	buf.WriteString("**" + name + "**")
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n")
		buf.WriteString(cmd.Long + "\n\n")
	}

	if subcommands := visibleCommands(cmd); len(subcommands) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subcommands {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		buf.WriteString("```\n" + flags.FlagUsages() + "```\n\n")
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	return buf.Bytes()
}

func manFilename(cmd *cobra.Command, section string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", "-") + "." + section
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// writePrompter asks before overwriting existing files. One prompter serves a
// whole command run so every answer comes from the same stdin buffer.
type writePrompter struct {
	cmd    *cobra.Command
	skip   bool
	reader *bufio.Reader
}

func newWritePrompter(cmd *cobra.Command, skipPrompt bool) *writePrompter {
	return &writePrompter{
		cmd:    cmd,
		skip:   skipPrompt,
		reader: bufio.NewReader(cmd.InOrStdin()),
	}
}

func (p *writePrompter) confirmWrite(target string) error {
	if p.skip {
		return nil
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("check write target %s: %w", target, err)
	}
	if info.IsDir() {
		return fmt.Errorf("write target is a directory: %s", target)
	}

	fmt.Fprintf(p.cmd.ErrOrStderr(), "Warning! this operation will overwrite: %s\n", target)
	fmt.Fprint(p.cmd.ErrOrStderr(), "Continue? [y/N]: ")

	input, err := p.reader.ReadString('\n')
	if err != nil && len(input) == 0 {
		return fmt.Errorf("write aborted for %s (no confirmation provided; use --yes to skip prompts)", target)
	}

	answer := strings.ToLower(strings.TrimSpace(input))
	if answer != "y" && answer != "yes" {
		return fmt.Errorf("write aborted for %s", target)
	}

	return nil
}

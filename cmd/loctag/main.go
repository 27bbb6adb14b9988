// Command loctag is a small inspection tool for BCP 47 locale tags: it
// canonicalizes tags, checks whether two tags match, and runs the
// likely-subtags expansion in both directions.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/locale"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	root := newRootCommand()
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "loctag",
		Short: "Parse, canonicalize, and compare BCP 47 locale tags",
	}
	root.AddCommand(
		newCanonicalizeCommand(),
		newMatchCommand(),
		newExpandCommand(),
		newMinimizeCommand(),
	)
	return root
}

func newCanonicalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "canonicalize [tags...]",
		Short: "Print the canonical form of each tag (reads stdin when no args are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return canonicalizeAll(args)
			}
			var tags []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					tags = append(tags, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			return canonicalizeAll(tags)
		},
	}
}

func canonicalizeAll(tags []string) error {
	failed := 0
	for _, tag := range tags {
		canonical, err := locale.Canonicalize(tag)
		if err != nil {
			logger.Error("skipping malformed tag", "tag", tag, "err", err)
			failed++
			continue
		}
		fmt.Println(canonical)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tags were malformed", failed, len(tags))
	}
	return nil
}

func newMatchCommand() *cobra.Command {
	var aRange, bRange bool
	cmd := &cobra.Command{
		Use:   "match <a> <b>",
		Short: "Check whether two locale tags match (exit status 1 when they do not)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := locale.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := locale.Parse(args[1])
			if err != nil {
				return err
			}
			if !a.Matches(b, aRange, bRange) {
				fmt.Println("false")
				os.Exit(1)
			}
			fmt.Println("true")
			return nil
		},
	}
	cmd.Flags().BoolVar(&aRange, "a-range", false, "treat the first tag as a range (unset fields are wildcards)")
	cmd.Flags().BoolVar(&bRange, "b-range", false, "treat the second tag as a range")
	return cmd
}

func newExpandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <tag>",
		Short: "Fill in the likely script and region subtags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale.Parse(args[0])
			if err != nil {
				return err
			}
			if !loc.AddLikelySubtags() {
				logger.Debug("tag not covered by the likely-subtags table", "tag", args[0])
			}
			fmt.Println(loc.String())
			return nil
		},
	}
}

func newMinimizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "minimize <tag>",
		Short: "Remove the likely script and region subtags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale.Parse(args[0])
			if err != nil {
				return err
			}
			loc.RemoveLikelySubtags()
			fmt.Println(loc.String())
			return nil
		},
	}
}

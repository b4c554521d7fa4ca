package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mushafapp/ghareeb/internal/tahfeez"
)

func newTahfeezCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tahfeez <page>",
		Short: "Run an interactive memorization drill over a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageNumber, err := parsePageNumber(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, service, _, err := openReader(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			page, err := service.Page(cmd.Context(), pageNumber)
			if err != nil {
				return fmt.Errorf("service.Page() > %w", err)
			}
			if page == nil {
				return fmt.Errorf("page %d is not in the local data", pageNumber)
			}
			if len(page.Sequence) == 0 {
				return fmt.Errorf("page %d has no glossary entries to drill", pageNumber)
			}

			return runDrill(cmd, tahfeez.NewPlayer(page.Sequence))
		},
	}
}

// runDrill loops over stdin commands: n(ext), p(rev), r(eveal), a number to
// jump, q(uit). Every meaning starts hidden.
func runDrill(cmd *cobra.Command, player *tahfeez.Player) error {
	out := cmd.OutOrStdout()
	player.HideAll()
	player.Play()

	fmt.Fprintf(out, "%d words. Commands: n = next, p = previous, r = reveal, <number> = jump, q = quit\n", player.Len())
	printDrillItem(cmd, player)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "q":
			return nil
		case "n", "":
			if _, moved := player.Next(); !moved {
				fmt.Fprintln(out, "End of the page.")
				continue
			}
		case "p":
			if _, moved := player.Prev(); !moved {
				fmt.Fprintln(out, "Start of the page.")
				continue
			}
		case "r":
			if index := player.Index(); index >= 0 {
				player.Reveal(index)
			}
		default:
			position, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintf(out, "Unknown command %q\n", input)
				continue
			}
			if _, ok := player.JumpTo(position - 1); !ok {
				fmt.Fprintf(out, "No word %d on this page\n", position)
				continue
			}
		}
		printDrillItem(cmd, player)
	}
	return scanner.Err()
}

func printDrillItem(cmd *cobra.Command, player *tahfeez.Player) {
	item, ok := player.Current()
	if !ok {
		return
	}
	index := player.Index()

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(out, "[%d/%d] %s", index+1, player.Len(), item.Entry.WordText)
	if player.Hidden(index) {
		fmt.Fprintln(out, "  (r to reveal)")
		return
	}
	fmt.Fprintf(out, "  %s\n", item.Entry.Meaning)
}

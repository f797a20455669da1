package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"shortlist/internal/tags"
	"shortlist/internal/triage"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var noTags bool

	cmd := &cobra.Command{
		Use:   "run <folder>",
		Short: "Triage a folder interactively",
		Long: "Loads every photo in the folder, then reads commands from stdin:\n" +
			"pick beats the current champion, bank closes the round, reject drops\n" +
			"the photo. Decisions are written back as color labels.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := triage.Options{Logger: logger}
			if noTags {
				opts.TagStore = tags.Disabled{}
			}
			session := triage.NewSession(cfg, opts)

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			session.Start(runCtx)
			defer session.Stop()

			bar := progressbar.NewOptions(100,
				progressbar.OptionSetDescription("loading thumbnails"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionClearOnFinish(),
			)
			if err := session.LoadFolder(runCtx, args[0], func(fraction float64) {
				_ = bar.Set(int(fraction * 100))
			}); err != nil {
				return err
			}
			_ = bar.Finish()

			out := cmd.OutOrStdout()
			snap := session.Snapshot()
			if len(snap.Photos) == 0 {
				fmt.Fprintln(out, "no candidate photos found")
				return nil
			}
			fmt.Fprintf(out, "loaded %d photos from %s\n", len(snap.Photos), snap.Folder)
			printCursorLine(out, session)

			return commandLoop(runCtx, cmd, session)
		},
	}

	cmd.Flags().BoolVar(&noTags, "no-tags", false, "Do not write color labels back to files")
	return cmd
}

func commandLoop(ctx context.Context, cmd *cobra.Command, session *triage.Session) error {
	out := cmd.OutOrStdout()
	interactive := false
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		switch line {
		case "":
			continue
		case "pick", "p", "win":
			session.Challenge()
			printChampionLine(out, session)
		case "bank", "f", "finalize":
			session.Finalize()
			fmt.Fprintf(out, "round banked; round %d open\n", len(session.Snapshot().Arenas))
			printChampionLine(out, session)
		case "reject", "x":
			session.Reject()
			printCursorLine(out, session)
		case "next", "n":
			if !session.Navigate(1) {
				fmt.Fprintln(out, "already at the last photo")
			}
			printCursorLine(out, session)
		case "prev", "b":
			if !session.Navigate(-1) {
				fmt.Fprintln(out, "already at the first photo")
			}
			printCursorLine(out, session)
		case "compare", "c":
			snap := session.Snapshot()
			session.SetCompareMode(!snap.CompareMode)
			fmt.Fprintf(out, "compare mode %s\n", onOff(!snap.CompareMode))
		case "status", "s":
			printStatus(out, session.Snapshot())
		case "help", "h", "?":
			printHelp(out)
		case "quit", "q", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q (try 'help')\n", line)
		}

		if err := session.Snapshot().LastErr; err != nil {
			fmt.Fprintf(out, "note: %v\n", err)
		}
	}
}

func printCursorLine(w io.Writer, session *triage.Session) {
	snap := session.Snapshot()
	if len(snap.Photos) == 0 {
		return
	}
	current := snap.Photos[snap.Cursor]
	fmt.Fprintf(w, "[%d/%d] %s (%s)\n", snap.Cursor+1, len(snap.Photos), current.Name, current.Status)
}

func printChampionLine(w io.Writer, session *triage.Session) {
	snap := session.Snapshot()
	active := snap.Arenas[len(snap.Arenas)-1]
	if active.Champion == "" {
		fmt.Fprintln(w, "no champion yet")
		return
	}
	fmt.Fprintf(w, "champion: %s (%d displaced)\n", snap.Name(active.Champion), len(active.Displaced))
}

func printStatus(w io.Writer, snap triage.Snapshot) {
	rows := make([][]string, 0, len(snap.Photos))
	for i, p := range snap.Photos {
		marker := ""
		if i == snap.Cursor {
			marker = ">"
		}
		thumb := "yes"
		if !p.HasThumbnail {
			thumb = "no"
		}
		rows = append(rows, []string{marker, p.Name, p.Status.String(), thumb})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"", "Photo", "Status", "Thumb"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	))

	arenaRows := make([][]string, 0, len(snap.Arenas))
	for i, arena := range snap.Arenas {
		state := "active"
		if arena.Archived {
			state = "archived"
		}
		displaced := make([]string, 0, len(arena.Displaced))
		for _, id := range arena.Displaced {
			displaced = append(displaced, snap.Name(id))
		}
		arenaRows = append(arenaRows, []string{
			fmt.Sprintf("%d", i+1),
			state,
			snap.Name(arena.Champion),
			strings.Join(displaced, ", "),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Round", "State", "Champion", "Displaced (newest first)"},
		arenaRows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(w, "stage: %s  compare: %s\n", snap.Stage, onOff(snap.CompareMode))
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `commands:
  pick | p      this photo beats the current champion
  bank | f      close the round; this photo opens the next one
  reject | x    drop this photo and move on
  next | n      move to the next photo
  prev | b      move to the previous photo
  compare | c   toggle the champion comparison view
  status | s    show the photo list and rounds
  quit | q      exit
`)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

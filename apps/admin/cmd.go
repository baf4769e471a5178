package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/admin"
	"github.com/trezcool/masomo-admin/storage/remote"
)

var (
	isTerminalFunc = isTerminal // mockable

	errAborted = errors.New("aborted")
)

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	std    *log.Logger // output of logger
	in     io.Reader
	out    io.Writer

	// global flags
	apiURL  string
	timeout time.Duration
	verbose bool
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args)
	root.SetIn(cli.in)
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	return root.ExecuteContext(context.Background())
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "masomo-admin",
		Short:         "Manage the courses, instructors and school year periods of Masomo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cli.verbose {
				cli.std.SetOutput(cmd.ErrOrStderr())
			}
		},
	}
	root.PersistentFlags().StringVar(&cli.apiURL, "api", cli.conf.API.BaseURL, "base URL of the admin API")
	root.PersistentFlags().DurationVar(&cli.timeout, "timeout", cli.conf.API.Timeout, "timeout of each API request")
	root.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "log every API request")

	root.AddCommand(
		cli.courseCmd(),
		cli.instructorCmd(),
		cli.periodCmd(),
		cli.migrateCmd(),
	)
	return root
}

// adminDeps returns the API client and the collaborators of the admin controllers.
// Notices are printed to the command output.
func (cli *commandLine) adminDeps(cmd *cobra.Command) (*remote.Client, admin.Deps, error) {
	client, err := remote.NewClient(cli.apiURL, cli.timeout, cli.logger)
	if err != nil {
		return nil, admin.Deps{}, err
	}
	translator := core.NewTranslator()
	deps := admin.Deps{
		Validate:   core.NewValidator(translator),
		Translator: translator,
		Notifier:   admin.NewBoard(cli.conf.NoticeTTL, admin.WithPrinter(cmd.OutOrStdout())),
		Logger:     cli.logger,
	}
	return client, deps, nil
}

// isTerminal reports whether `r` is a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks `question` when the command input is a terminal; anything but yes aborts.
func confirm(cmd *cobra.Command, question string, yes bool) error {
	if yes || !isTerminalFunc(cmd.InOrStdin()) {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	}
	return errAborted
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func printTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// errorText renders err, with one line per invalid field.
func errorText(err error) string {
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Fields) == 0 {
		return err.Error()
	}
	var sb strings.Builder
	sb.WriteString(err.Error())
	for _, fErr := range vErr.Fields {
		fmt.Fprintf(&sb, "\n  %s: %s", fErr.Field, fErr.Error)
	}
	return sb.String()
}

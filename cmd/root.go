package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nomoyu/create-prev-app/internal/config"
	"github.com/nomoyu/create-prev-app/internal/logging"
	"github.com/nomoyu/create-prev-app/internal/scaffold"
	"github.com/nomoyu/create-prev-app/internal/shell"
	"github.com/nomoyu/create-prev-app/internal/vcs"
)

const usage = "Usage: create-prev-app <project-name>"

type rootOptions struct {
	packageManager string
	configPath     string
	skipGit        bool
	gitBinary      bool
	verbose        bool
}

func Execute() {
	rootCmd := NewRootCommand(shell.ExecRunner{}, os.Getenv)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(ExitCode(err))
	}
}

// NewRootCommand builds the CLI. runner starts every external program and
// getenv reads the environment, so tests can swap both.
func NewRootCommand(runner shell.Runner, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "create-prev-app <project-name>",
		Short:         "Create a Next.js app with Prev.js styles",
		Long:          "create-prev-app runs create-next-app with your package manager, mirrors the page via globals.css and commits the result.",
		Args:          projectNameArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts, runner, getenv, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVarP(&opts.packageManager, "package-manager", "p", "", "package manager to run create-next-app with (npm|yarn|pnpm|bun)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML defaults file (env "+config.PathEnv+")")
	cmd.Flags().BoolVar(&opts.skipGit, "skip-git", false, "do not init or commit a git repository")
	cmd.Flags().BoolVar(&opts.gitBinary, "git-binary", false, "commit with the git executable instead of the built-in implementation")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func projectNameArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return &ExitError{Code: ExitFailure, Message: usage}
	}
	return nil
}

func runCreate(cmd *cobra.Command, opts *rootOptions, runner shell.Runner, getenv func(string) string, project string) error {
	log := logging.New(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(config.PathFromCLIorEnv(opts.configPath, getenv))
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "invalid config", Err: err}
	}

	pm, err := scaffold.ResolvePackageManager(opts.packageManager, cfg.PackageManager, getenv(scaffold.UserAgentEnv))
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: usage, Err: err}
	}

	var committer scaffold.Committer
	switch {
	case opts.skipGit || !cfg.Git.Enabled:
	case opts.gitBinary || cfg.Git.Binary:
		committer = vcs.Binary{Runner: runner, AuthorName: cfg.Git.AuthorName, AuthorEmail: cfg.Git.AuthorEmail}
	default:
		committer = vcs.Library{AuthorName: cfg.Git.AuthorName, AuthorEmail: cfg.Git.AuthorEmail}
	}

	res, err := scaffold.NewCreator(runner, committer, log).Create(cmd.Context(), scaffold.Options{
		Project:        project,
		PackageManager: pm,
		Styles:         cfg.Styles,
		CommitMessage:  cfg.Git.Message,
		SkipGit:        committer == nil,
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "scaffold failed", Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✅ Created with", res.PackageManager)
	if res.Stylesheet != "" {
		fmt.Fprintln(out, "✅ Prev.js styles added to", res.Stylesheet)
	}
	if res.Committed {
		fmt.Fprintln(out, "✅ Committed:", cfg.Git.Message)
	}
	fmt.Fprintln(out, "✅ Prev.js app created:", project)
	return nil
}

package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nomoyu/create-prev-app/internal/shell"
)

// DefaultCommitMessage is used when Options.CommitMessage is empty.
const DefaultCommitMessage = "add prev.js styles"

// ErrProjectName is returned when no usable project name was given.
var ErrProjectName = errors.New("project name is required")

// Committer initializes a repository in dir, stages everything and commits.
type Committer interface {
	Commit(ctx context.Context, dir, message string) error
}

type Options struct {
	// Project is both the name handed to the generator and the directory it
	// creates, relative to the working directory.
	Project        string
	PackageManager PackageManager
	Styles         string
	CommitMessage  string
	SkipGit        bool
}

type Result struct {
	// Stylesheet is the patched file, empty when none was found.
	Stylesheet     string
	PackageManager PackageManager
	Committed      bool
}

type Creator struct {
	runner    shell.Runner
	committer Committer
	log       *zap.SugaredLogger
}

// NewCreator wires a Creator. committer may be nil, which skips git.
func NewCreator(runner shell.Runner, committer Committer, log *zap.SugaredLogger) *Creator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Creator{runner: runner, committer: committer, log: log}
}

// Create runs the generator, patches the stylesheet and commits. Only a
// missing project name or a generator failure is returned as an error;
// everything after that is best effort and reported as a warning.
func (c *Creator) Create(ctx context.Context, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Project) == "" {
		return nil, ErrProjectName
	}
	pm := opts.PackageManager
	if pm == "" {
		pm = NPM
	}
	res := &Result{PackageManager: pm}

	// 1) create-next-app
	name, args := CreateCommand(pm, opts.Project)
	c.log.Debugw("running generator", "package_manager", pm, "command", name, "args", args)
	if err := c.runner.Run(ctx, shell.Cmd{Name: name, Args: args, Inherit: true}); err != nil {
		return nil, fmt.Errorf("failed to create Prev.js app: %w", err)
	}

	// 2) stylesheet
	styles := opts.Styles
	if styles == "" {
		styles = DefaultStyles
	}
	if path, ok := FindStylesheet(opts.Project); ok {
		if err := AppendStyles(path, styles); err != nil {
			c.log.Warnw("Could not patch globals.css, add these styles manually", "path", path, "styles", strings.TrimSpace(styles), "error", err)
		} else {
			res.Stylesheet = path
			c.log.Debugw("patched stylesheet", "path", path)
		}
	} else {
		c.log.Warnf("Could not find globals.css, add this manually: %s", strings.TrimSpace(styles))
	}

	// 3) git
	if opts.SkipGit || c.committer == nil {
		c.log.Debugw("skipping git")
		return res, nil
	}
	msg := opts.CommitMessage
	if msg == "" {
		msg = DefaultCommitMessage
	}
	if err := c.committer.Commit(ctx, opts.Project, msg); err != nil {
		c.log.Warn("Skipped Git init — make sure Git is installed.")
		c.log.Debugw("git failed", "error", err)
		return res, nil
	}
	res.Committed = true
	return res, nil
}

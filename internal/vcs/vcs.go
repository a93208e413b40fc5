// Package vcs commits a freshly generated project.
//
// Library does it in process with go-git, Binary shells out to the git
// executable. Both init the repository (reusing one that already exists),
// stage every change and commit.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/nomoyu/create-prev-app/internal/shell"
)

// ErrNoAuthor is returned when neither the Library fields nor git config
// provide both an author name and email.
var ErrNoAuthor = errors.New("author name and email are required")

// Library commits with go-git. Author fields are optional; a missing one is
// read from git config like the git binary does.
type Library struct {
	AuthorName  string
	AuthorEmail string
	now         func() time.Time
}

func (l Library) Commit(ctx context.Context, dir, message string) error {
	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(dir)
	}
	if err != nil {
		return fmt.Errorf("init repository %s: %w", dir, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	// go-git only reads the repository's own ignore files; git add -A also
	// honors core.excludesfile from the system and global config.
	excludes, err := userExcludes()
	if err != nil {
		return err
	}
	wt.Excludes = append(wt.Excludes, excludes...)

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := &git.CommitOptions{}
	if l.AuthorName != "" || l.AuthorEmail != "" {
		sig, err := l.signature(repo)
		if err != nil {
			return err
		}
		opts.Author = sig
	}
	if _, err := wt.Commit(message, opts); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func userExcludes() ([]gitignore.Pattern, error) {
	root := osfs.New("/")
	system, err := gitignore.LoadSystemPatterns(root)
	if err != nil {
		return nil, fmt.Errorf("load system excludes: %w", err)
	}
	global, err := gitignore.LoadGlobalPatterns(root)
	if err != nil {
		return nil, fmt.Errorf("load global excludes: %w", err)
	}
	return append(system, global...), nil
}

// signature fills whichever author field is unset from git config.
func (l Library) signature(repo *git.Repository) (*object.Signature, error) {
	name, email := l.AuthorName, l.AuthorEmail
	if name == "" || email == "" {
		cfg, err := repo.ConfigScoped(config.SystemScope)
		if err != nil {
			return nil, fmt.Errorf("read git config: %w", err)
		}
		if name == "" {
			name = cfg.User.Name
		}
		if email == "" {
			email = cfg.User.Email
		}
	}
	if name == "" || email == "" {
		return nil, ErrNoAuthor
	}

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	return &object.Signature{Name: name, Email: email, When: now()}, nil
}

// Binary commits by running git from $PATH. Author fields, when set, are
// passed to the commit step with -c and override git config.
type Binary struct {
	Runner      shell.Runner
	AuthorName  string
	AuthorEmail string
}

func (b Binary) Commit(ctx context.Context, dir, message string) error {
	var identity []string
	if b.AuthorName != "" {
		identity = append(identity, "-c", "user.name="+b.AuthorName)
	}
	if b.AuthorEmail != "" {
		identity = append(identity, "-c", "user.email="+b.AuthorEmail)
	}

	steps := []struct {
		label string
		args  []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "-A"}},
		{"commit", append(identity, "commit", "-m", message)},
	}
	for _, s := range steps {
		if err := b.Runner.Run(ctx, shell.Cmd{Name: "git", Args: s.args, Dir: dir}); err != nil {
			return fmt.Errorf("git %s: %w", s.label, err)
		}
	}
	return nil
}

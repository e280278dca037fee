package toolchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInitializer creates an empty, non-bare git repository.
type GitInitializer struct{}

// Init runs the equivalent of `git init` in root. An existing repository is
// left untouched and reported as success.
func (GitInitializer) Init(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := git.PlainInit(root, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("initializing git repository at %s: %w", root, err)
	}
	return nil
}

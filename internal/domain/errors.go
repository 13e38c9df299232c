package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

const repoHint = "You can manually set PERCY_REPO_SLUG to fix this."

var ErrInvalidParallelTotal = errors.New("PERCY_PARALLEL_TOTAL must be a positive integer")

// RepoNotFoundError is returned when no tier could determine the repository slug.
type RepoNotFoundError struct {
	Message string
}

func (e *RepoNotFoundError) Error() string { return e.Message }

func NewRepoNotFound() *RepoNotFoundError {
	return &RepoNotFoundError{Message: "No local git repository found. " + repoHint}
}

func NewRepoNotParsed(url string) *RepoNotFoundError {
	return &RepoNotFoundError{
		Message: fmt.Sprintf("Could not determine repository name from URL: %s\n%s", url, repoHint),
	}
}

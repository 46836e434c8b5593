package domain

import "errors"

// Validation errors, rejected before any query is issued
var (
	ErrValidation           = errors.New("invalid input")
	ErrInvalidVoteDirection = errors.New("vote direction must be one of -1, 0, 1")
)

// Storage-constraint violations translated at the failing query
var (
	ErrDuplicateUsername  = errors.New("a user with this username already exists")
	ErrDuplicateSubreddit = errors.New("a subreddit with this name already exists")
	ErrMissingSubreddit   = errors.New("post requires an existing subreddit")
)

// ErrInvalidCredentials covers both an unknown username and a failed password
// comparison; callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("username or password incorrect")

package service_test

import (
	"context"
	"testing"

	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository/postgres"
	"github.com/adufour/goddit/internal/service"
	"github.com/adufour/goddit/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentService(t *testing.T) (*testutil.TestDB, *service.ContentService) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	return testDB, service.NewContentService(repos.Subreddit, repos.Post, repos.Vote, repos.Comment, cfg)
}

func TestContentService_CreateSubreddit(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		subName     string
		description string
		setup       func()
		wantErr     error
	}{
		{
			name:        "successful creation",
			subName:     "cats",
			description: "all about cats",
		},
		{
			name:    "empty name",
			subName: "",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "duplicate name",
			subName: "dogs",
			setup: func() {
				testutil.NewSubredditBuilder().WithName("dogs").Build(t, testDB.DB)
			},
			wantErr: domain.ErrDuplicateSubreddit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			id, err := contentService.CreateSubreddit(ctx, tt.subName, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestContentService_GetSubredditByName(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	created := testutil.NewSubredditBuilder().
		WithName("programming").
		WithDescription("talk shop").
		Build(t, testDB.DB)

	t.Run("existing name", func(t *testing.T) {
		subreddit, err := contentService.GetSubredditByName(ctx, "programming")
		require.NoError(t, err)
		require.NotNil(t, subreddit)
		assert.Equal(t, created.ID, subreddit.ID)
		assert.Equal(t, "talk shop", subreddit.Description)
	})

	t.Run("unknown name is nil, not an error", func(t *testing.T) {
		subreddit, err := contentService.GetSubredditByName(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, subreddit)
	})
}

func TestContentService_ListSubreddits(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	subreddits, err := contentService.ListSubreddits(ctx)
	require.NoError(t, err)
	assert.Empty(t, subreddits)

	testutil.NewSubredditBuilder().WithName("older").Build(t, testDB.DB)
	testutil.NewSubredditBuilder().WithName("newer").Build(t, testDB.DB)

	subreddits, err = contentService.ListSubreddits(ctx)
	require.NoError(t, err)
	require.Len(t, subreddits, 2)

	// Newest first.
	for i := 1; i < len(subreddits); i++ {
		assert.False(t, subreddits[i].CreatedAt.After(subreddits[i-1].CreatedAt))
	}
}

func TestContentService_CreatePost(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	subreddit := testutil.NewSubredditBuilder().Build(t, testDB.DB)

	tests := []struct {
		name        string
		title       string
		subredditID uuid.UUID
		wantErr     error
	}{
		{
			name:        "successful creation",
			title:       "a fine link",
			subredditID: subreddit.ID,
		},
		{
			name:        "missing subreddit id",
			title:       "orphan",
			subredditID: uuid.Nil,
			wantErr:     domain.ErrMissingSubreddit,
		},
		{
			name:        "unknown subreddit id",
			title:       "orphan",
			subredditID: uuid.New(),
			wantErr:     domain.ErrMissingSubreddit,
		},
		{
			name:        "empty title",
			title:       "",
			subredditID: subreddit.ID,
			wantErr:     domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before int64
			require.NoError(t, testDB.DB.Model(&domain.Post{}).Count(&before).Error)

			id, err := contentService.CreatePost(ctx, author.ID, tt.title, "http://x", tt.subredditID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// Failed creation must leave no new row behind.
				var after int64
				require.NoError(t, testDB.DB.Model(&domain.Post{}).Count(&after).Error)
				assert.Equal(t, before, after)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestContentService_CastVote(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	repos := postgres.NewRepositories(testDB.DB)
	post := testutil.NewPostBuilder().Build(t, testDB.DB)
	voter, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("invalid direction", func(t *testing.T) {
		err := contentService.CastVote(ctx, post.ID, voter.ID, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidVoteDirection)
	})

	t.Run("second vote overwrites the first", func(t *testing.T) {
		require.NoError(t, contentService.CastVote(ctx, post.ID, voter.ID, 1))
		require.NoError(t, contentService.CastVote(ctx, post.ID, voter.ID, -1))

		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Vote{}).
			Where("post_id = ? AND user_id = ?", post.ID, voter.ID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)

		vote, err := repos.Vote.GetByPostAndUser(ctx, post.ID, voter.ID)
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.Equal(t, -1, vote.Direction)
	})

	t.Run("zero direction retracts", func(t *testing.T) {
		require.NoError(t, contentService.CastVote(ctx, post.ID, voter.ID, 0))

		vote, err := repos.Vote.GetByPostAndUser(ctx, post.ID, voter.ID)
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.Equal(t, 0, vote.Direction)
	})
}

func TestContentService_Comments(t *testing.T) {
	testDB, contentService := newContentService(t)
	ctx := context.Background()

	post := testutil.NewPostBuilder().Build(t, testDB.DB)
	author, _ := testutil.NewUserBuilder().WithUsername("commenter").Build(t, testDB.DB)

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := contentService.CreateComment(ctx, post.ID, author.ID, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("newest first with author summary", func(t *testing.T) {
		first, err := contentService.CreateComment(ctx, post.ID, author.ID, "first")
		require.NoError(t, err)
		second, err := contentService.CreateComment(ctx, post.ID, author.ID, "second")
		require.NoError(t, err)

		comments, err := contentService.ListCommentsForPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)

		assert.Equal(t, second, comments[0].ID)
		assert.Equal(t, first, comments[1].ID)
		assert.Equal(t, "second", comments[0].Text)
		assert.Equal(t, author.ID, comments[0].Author.ID)
		assert.Equal(t, "commenter", comments[0].Author.Username)
	})

	t.Run("listing is capped", func(t *testing.T) {
		for i := 0; i < 30; i++ {
			_, err := contentService.CreateComment(ctx, post.ID, author.ID, "more")
			require.NoError(t, err)
		}

		comments, err := contentService.ListCommentsForPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, comments, 25)
	})
}

package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/adboard/chats"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
	"github.com/poiesic/adboard/storage/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatStore(t *testing.T) *chats.Store {
	t.Helper()
	_, _, repo, err := file.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	store, err := chats.NewStore(repo)
	require.NoError(t, err)
	return store
}

func TestNewAggregator_RequiresSource(t *testing.T) {
	_, err := NewAggregator(nil)
	assert.ErrorIs(t, err, ErrChatSourceRequired)
}

func TestSummary_Empty(t *testing.T) {
	agg, err := NewAggregator(newTestChatStore(t))
	require.NoError(t, err)
	defer agg.Close()

	summary, err := agg.Summary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Unread)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.PerChat)
}

func TestSummary_SumsAcrossChats(t *testing.T) {
	store := newTestChatStore(t)
	ctx := context.Background()

	// Chat with user 2: two unread incoming messages
	withTwo, err := store.Create(ctx, "1", "2")
	require.NoError(t, err)
	for _, text := range []string{"hi", "still there?"} {
		_, err = store.AppendMessage(ctx, withTwo, &core.Message{AuthorId: "2", Text: text}, false)
		require.NoError(t, err)
	}

	// Chat with user 3: one outgoing, one unread incoming
	withThree, err := store.Create(ctx, "1", "3")
	require.NoError(t, err)
	_, err = store.AppendMessage(ctx, withThree, &core.Message{AuthorId: "1", Text: "selling a bike"}, false)
	require.NoError(t, err)
	_, err = store.AppendMessage(ctx, withThree, &core.Message{AuthorId: "3", Text: "interested!"}, false)
	require.NoError(t, err)

	agg, err := NewAggregator(store, WithPoolSize(2))
	require.NoError(t, err)
	defer agg.Close()

	summary, err := agg.Summary(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Unread)
	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.PerChat, 2)

	perChat := map[core.ID]*core.ChatStats{}
	for _, s := range summary.PerChat {
		perChat[s.ChatId] = s
	}
	assert.Equal(t, 2, perChat[withTwo].Unread)
	assert.Equal(t, 1, perChat[withThree].Unread)
}

type flakySource struct {
	chats []*core.Chat
	err   error
}

func (f *flakySource) GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error) {
	return f.chats, nil
}

func (f *flakySource) GetStatistics(ctx context.Context, a, b core.ID) (*core.ChatStats, error) {
	return nil, f.err
}

func TestSummary_MissingPairCountsAsZero(t *testing.T) {
	source := &flakySource{
		chats: []*core.Chat{{Id: "1", Users: []core.ID{"1", "2"}}},
		err:   storage.ErrNotFound,
	}

	agg, err := NewAggregator(source, WithPoolSize(1))
	require.NoError(t, err)
	defer agg.Close()

	summary, err := agg.Summary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Unread)
	assert.Equal(t, 0, summary.Total)
}

func TestSummary_PropagatesBackendFailure(t *testing.T) {
	backendErr := errors.New("backend down")
	source := &flakySource{
		chats: []*core.Chat{{Id: "1", Users: []core.ID{"1", "2"}}},
		err:   backendErr,
	}

	agg, err := NewAggregator(source, WithPoolSize(1))
	require.NoError(t, err)
	defer agg.Close()

	_, err = agg.Summary(context.Background(), "1")
	assert.ErrorIs(t, err, backendErr)
}

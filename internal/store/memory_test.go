package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/pet-qa-forum/internal/models"
)

func TestMemoryStoreUserUniqueness(t *testing.T) {
	t.Parallel()
	st := NewMemoryStore()
	ctx := context.Background()

	u, err := st.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	require.False(t, u.ID.IsZero())

	_, err = st.CreateUser(ctx, "alice", "other")
	require.ErrorIs(t, err, ErrDuplicate)

	got, err := st.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = st.UserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCategoriesSortedByName(t *testing.T) {
	t.Parallel()
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.InsertCategories(ctx, []string{"Rabbits", "Dogs", "Cats"})
	require.NoError(t, err)

	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	names := []string{cats[0].Name, cats[1].Name, cats[2].Name}
	require.Equal(t, []string{"Cats", "Dogs", "Rabbits"}, names)
}

func TestMemoryStoreQuestionOrderIsStable(t *testing.T) {
	t.Parallel()
	st := NewMemoryStore()
	ctx := context.Background()

	catID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	// Insert quickly enough that timestamps can collide; insertion order
	// must still win.
	var ids []primitive.ObjectID
	for i := 0; i < 10; i++ {
		q, err := st.InsertQuestion(ctx, &models.Question{
			Text:       "q",
			CategoryID: catID,
			UserID:     userID,
		})
		require.NoError(t, err)
		ids = append(ids, q.ID)
	}

	qs, err := st.ListQuestionsByCategory(ctx, catID)
	require.NoError(t, err)
	require.Len(t, qs, len(ids))
	for i, q := range qs {
		require.Equal(t, ids[i], q.ID)
	}
}

func TestMemoryStoreUsernamesByID(t *testing.T) {
	t.Parallel()
	st := NewMemoryStore()
	ctx := context.Background()

	a, err := st.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	b, err := st.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	names, err := st.UsernamesByID(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	require.NoError(t, err)
	require.Equal(t, map[primitive.ObjectID]string{a.ID: "alice", b.ID: "bob"}, names)
}

func TestMemoryStoreWipe(t *testing.T) {
	t.Parallel()
	st := NewMemoryStore()
	ctx := context.Background()

	catID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	q, err := st.InsertQuestion(ctx, &models.Question{Text: "q", CategoryID: catID, UserID: userID})
	require.NoError(t, err)
	_, err = st.InsertAnswer(ctx, &models.Answer{Text: "a", QuestionID: q.ID, UserID: userID})
	require.NoError(t, err)

	require.NoError(t, st.DeleteAllAnswers(ctx))
	require.NoError(t, st.DeleteAllQuestions(ctx))

	n, err := st.CountQuestions(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	as, err := st.ListAnswersByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Empty(t, as)
}

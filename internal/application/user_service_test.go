package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyamd/todo-graph-api/pkg/helpers"
)

func newUserService(mirror *fakeMirror) *UserService {
	jwt := helpers.NewJWTManager("testsecret", time.Minute)
	sync := NewSyncCoordinator(mirror, nil, time.Second)
	return NewUserService(newFakeUserRepo(), jwt, sync, nil)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc := newUserService(&fakeMirror{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserService(&fakeMirror{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Register_PropagatesUserNode(t *testing.T) {
	mirror := &fakeMirror{}
	svc := newUserService(mirror)

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	nodes := mirror.nodesOf("user")
	require.Len(t, nodes, 1)
	assert.Equal(t, u.ID, nodes[0].id)
	assert.Equal(t, "alice", nodes[0].title)
}

func TestUserService_Register_DoesNotStorePlaintext(t *testing.T) {
	svc := newUserService(&fakeMirror{})

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))
}

func TestUserService_Register_SurvivesMirrorFailure(t *testing.T) {
	svc := newUserService(&fakeMirror{fail: true})

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
}

func TestUserService_Login_IssuesTokenWithSubject(t *testing.T) {
	svc := newUserService(&fakeMirror{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, exp, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := newUserService(&fakeMirror{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc := newUserService(&fakeMirror{})

	_, _, err := svc.Login(context.Background(), "ghost", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_GetByUsername_InactiveRejected(t *testing.T) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("testsecret", time.Minute)
	svc := NewUserService(repo, jwt, NewSyncCoordinator(&fakeMirror{}, nil, time.Second), nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	repo.mu.Lock()
	stored := repo.users[u.ID]
	stored.IsActive = false
	repo.users[u.ID] = stored
	repo.mu.Unlock()

	_, err = svc.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserInactive)
}

package catches_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/catches"
	mockapp "github.com/agentstation/catchlog/internal/cmd/application"
	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/transport"
	"github.com/agentstation/catchlog/internal/views"
	pkgcatches "github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// setup returns a mock app logged in to a fresh development service.
func setup(t *testing.T) (*mockapp.Mock, *remote.Client, string) {
	t.Helper()
	cfg := devapi.DefaultConfig()
	cfg.Database = ":memory:"
	cfg.Password = "secret"

	api, closeStore, err := devapi.Open(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore() })
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	client := remote.New(srv.URL+devapi.PathPrefix, &transport.BearerAuth{})
	sess := session.New(client, session.NewMemoryStore(""))
	require.True(t, sess.Login(context.Background(), cfg.User, "secret"))

	mock := &mockapp.Mock{
		SessionFunc: func() (session.Handle, error) { return sess, nil },
		CatchesFunc: func() (views.CatchService, error) { return client, nil },
	}
	return mock, client, sess.Token()
}

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := catches.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, c *remote.Client, token string, list ...pkgcatches.Catch) []string {
	t.Helper()
	var ids []string
	for _, in := range list {
		res, err := c.CreateCatch(context.Background(), token, in)
		require.NoError(t, err)
		ids = append(ids, res.Catch.ID)
	}
	return ids
}

func TestLoggedOut(t *testing.T) {
	mock := &mockapp.Mock{}

	_, err := run(t, mock, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrLoginRequired)
	assert.True(t, errors.IsNotLoggedIn(err))
}

func TestList(t *testing.T) {
	mock, client, token := setup(t)
	seed(t, client, token,
		pkgcatches.Catch{Species: "Doré jaune", LengthCm: 45, CapturedAt: "2024-05-01T10:00:00.000Z"},
		pkgcatches.Catch{Species: "Truite brune", LengthCm: 30, CapturedAt: "2024-06-10T10:00:00.000Z"},
	)

	out, err := run(t, mock, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Doré jaune")
	assert.Contains(t, out, "Truite brune")

	out, err = run(t, mock, "list", "--before", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Doré jaune")
	assert.NotContains(t, out, "Truite brune")

	_, err = run(t, mock, "list", "--after", "juin")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), views.MsgListFailed))

	_, err = run(t, mock, "list", "--species", "x", "--after", "2024-01-01")
	assert.Error(t, err, "filters are mutually exclusive")
}

func TestShow(t *testing.T) {
	mock, client, token := setup(t)
	ids := seed(t, client, token, pkgcatches.Catch{
		Species: "Brochet du Nord", LengthCm: 72, Location: "Lac Memphrémagog",
		Notes: []string{"cuillère"},
	})

	out, err := run(t, mock, "show", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, "Brochet du Nord")
	assert.Contains(t, out, "Lac Memphrémagog")

	_, err = run(t, mock, "show", "inconnu")
	assert.True(t, errors.IsNotFound(err))
}

func TestAddRejectsUnknownSpecies(t *testing.T) {
	mock, _, _ := setup(t)

	_, err := run(t, mock, "add", "--species", "Requin blanc", "--length", "10")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), views.MsgCreateFailed))
}

func TestAddKeepsNotesWhole(t *testing.T) {
	mock, client, token := setup(t)

	out, err := run(t, mock, "add", "--species", "Truite brune", "--length", "38,5",
		"--note", "mouche, sèche", "--note", "matin")
	require.NoError(t, err)
	assert.Contains(t, out, views.MsgCreated)

	list, err := client.ListCatches(context.Background(), token, pkgcatches.Filter{Kind: pkgcatches.KindNone})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"mouche, sèche", "matin"}, list[0].Notes)
}

func TestEditAndDelete(t *testing.T) {
	mock, client, token := setup(t)
	ids := seed(t, client, token,
		pkgcatches.Catch{Species: "Doré jaune", LengthCm: 45, Location: "Rivière"},
		pkgcatches.Catch{Species: "Truite brune", LengthCm: 30},
	)

	out, err := run(t, mock, "edit", ids[0], "--location", "Lac Brome", "--length", "46,5")
	require.NoError(t, err)
	assert.Contains(t, out, views.MsgUpdated)

	got, err := client.GetCatch(context.Background(), token, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Lac Brome", got.Location)
	assert.InDelta(t, 46.5, got.LengthCm, 0.001)
	assert.Equal(t, "Doré jaune", got.Species, "untouched flags keep their value")

	out, err = run(t, mock, "delete", ids[1])
	require.NoError(t, err)
	assert.Contains(t, out, "1 restantes")

	_, err = client.GetCatch(context.Background(), token, ids[1])
	assert.True(t, errors.IsNotFound(err))
}

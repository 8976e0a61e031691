package devapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/internal/transport"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

func newAPI(t *testing.T) (*remote.Client, *httptest.Server) {
	t.Helper()
	cfg := devapi.DefaultConfig()
	cfg.Database = ":memory:"
	cfg.User = "demo@catchlog.local"
	cfg.Password = "secret"

	api, closeStore, err := devapi.Open(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore() })

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return remote.New(srv.URL+devapi.PathPrefix, &transport.BearerAuth{}), srv
}

func login(t *testing.T, c *remote.Client) string {
	t.Helper()
	token, err := c.IssueToken(context.Background(), "Demo@catchlog.local", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return token
}

func TestIssueToken(t *testing.T) {
	c, _ := newAPI(t)

	_, err := c.IssueToken(context.Background(), "demo@catchlog.local", "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))

	login(t, c)
}

func TestRequiresToken(t *testing.T) {
	c, srv := newAPI(t)

	_, err := c.ListCatches(context.Background(), "forged", catches.Filter{Kind: catches.KindNone})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))

	resp, err := http.Post(srv.URL+"/api/generatetoken/", "application/json",
		strings.NewReader(`{"utilisateur":{"courriel":"demo@catchlog.local","motPasse":"secret"}}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "trailing slash is accepted")
}

func TestCatchLifecycle(t *testing.T) {
	c, _ := newAPI(t)
	ctx := context.Background()
	token := login(t, c)

	res, err := c.CreateCatch(ctx, token, catches.Catch{
		Species:    "Truite brune",
		LengthCm:   38,
		CapturedAt: "2024-05-01T14:30:00+02:00",
		Released:   true,
		Notes:      []string{"matin"},
	})
	require.NoError(t, err)
	require.True(t, res.Created())
	require.NotNil(t, res.Catch)
	id := res.Catch.ID
	assert.NotEmpty(t, id)
	assert.Equal(t, "2024-05-01T12:30:00.000Z", res.Catch.CapturedAt)

	got, err := c.GetCatch(ctx, token, id)
	require.NoError(t, err)
	assert.Equal(t, "Truite brune", got.Species)
	assert.True(t, got.Released)
	assert.Equal(t, []string{"matin"}, got.Notes)

	got.Location = "Lac Memphrémagog"
	got.Notes = nil
	updated, err := c.UpdateCatch(ctx, token, *got)
	require.NoError(t, err)
	assert.Equal(t, "Lac Memphrémagog", updated.Location)
	assert.Equal(t, []string{}, updated.Notes)

	require.NoError(t, c.DeleteCatch(ctx, token, id))

	_, err = c.GetCatch(ctx, token, id)
	assert.True(t, errors.IsNotFound(err))

	err = c.DeleteCatch(ctx, token, id)
	require.Error(t, err)
	assert.Equal(t, "Capture introuvable", errors.Message(err))
}

func TestListFilters(t *testing.T) {
	c, _ := newAPI(t)
	ctx := context.Background()
	token := login(t, c)

	for _, in := range []catches.Catch{
		{Species: "Doré jaune", CapturedAt: "2024-04-30T23:59:59.000Z"},
		{Species: "Doré jaune", CapturedAt: "2024-05-01T10:00:00.000Z"},
		{Species: "Maskinongé", CapturedAt: "2024-05-02T00:00:00.000Z"},
	} {
		_, err := c.CreateCatch(ctx, token, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter catches.Filter
		want   int
	}{
		{"all", catches.Filter{Kind: catches.KindNone}, 3},
		{"species", catches.Filter{Kind: catches.KindSpecies, Value: "Doré jaune"}, 2},
		{"species with no match", catches.Filter{Kind: catches.KindSpecies, Value: "Perchaude"}, 0},
		{"before", catches.Filter{Kind: catches.KindBefore, Value: "2024-05-01"}, 1},
		{"after", catches.Filter{Kind: catches.KindAfter, Value: "2024-05-01"}, 1},
		{"blank value lists all", catches.Filter{Kind: catches.KindSpecies, Value: " "}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := c.ListCatches(ctx, token, tt.filter)
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestListBySpeciesWithSlash(t *testing.T) {
	c, _ := newAPI(t)
	ctx := context.Background()
	token := login(t, c)

	for _, species := range []string{"Omble/Truite hybride", "Omble", "Doré jaune"} {
		_, err := c.CreateCatch(ctx, token, catches.Catch{Species: species})
		require.NoError(t, err)
	}

	list, err := c.ListCatches(ctx, token, catches.Filter{Kind: catches.KindSpecies, Value: "Omble/Truite hybride"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Omble/Truite hybride", list[0].Species)

	list, err = c.ListCatches(ctx, token, catches.Filter{Kind: catches.KindSpecies, Value: "Doré jaune"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateValidation(t *testing.T) {
	c, _ := newAPI(t)
	token := login(t, c)

	res, err := c.CreateCatch(context.Background(), token, catches.Catch{Species: ""})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, "species is required", errors.Message(err))
}

func TestListSpecies(t *testing.T) {
	c, _ := newAPI(t)
	token := login(t, c)

	list, err := c.ListSpecies(context.Background(), token)
	require.NoError(t, err)
	names := catches.SpeciesNames(list)
	assert.Len(t, names, len(devapi.DefaultSpecies))
	assert.Equal(t, "Achigan à grande bouche", names[0])
	assert.Contains(t, names, "Doré jaune")
}

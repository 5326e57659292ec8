package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/devis-board/internal/config"
	"github.com/diewo77/devis-board/internal/db"
	"github.com/diewo77/devis-board/internal/devapi"
	"github.com/diewo77/devis-board/internal/models"
)

func devAPI(t *testing.T) string {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := d.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(d))
	require.NoError(t, db.Seed(d))
	srv := httptest.NewServer(devapi.New(d))
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestParseSetStatus(t *testing.T) {
	id, status, err := parseSetStatus(" 42 = sent ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, models.QuoteStatusSent, status)

	_, _, err = parseSetStatus("42")
	assert.Error(t, err)
	_, _, err = parseSetStatus("x=SENT")
	assert.Error(t, err)
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderBoard(&buf, []*models.Devis{{
		APIID: 7, ID: "Q-007", Client: "Client inconnu", Circuit: "—", Formula: "—",
		Date: "—", Participants: []string{"Participant 1", "Ana"}, Amount: "—", Status: models.StatusConfirmed,
	}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Q-007")
	assert.Contains(t, lines[1], "Participant 1, Ana")
	assert.Contains(t, lines[1], "confirmed")
}

func TestRun_JSONAfterMutations(t *testing.T) {
	o := options{
		baseURL:   devAPI(t),
		lang:      "fr",
		asJSON:    true,
		deleteID:  3,
		setStatus: "2=CONFIRMED",
		customer:  2,
		phone:     "09 87 65 43 21",
	}
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), o, &config.Config{}, &stdout, &stderr))

	var items []models.Devis
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, models.StatusConfirmed, items[1].Status)
	assert.Equal(t, "09 87 65 43 21", items[1].Phone)
}

func TestRun_Stats(t *testing.T) {
	o := options{baseURL: devAPI(t), quiet: true, stats: true}
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), o, &config.Config{}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "DEV-2025-001")
	assert.Contains(t, stderr.String(), "GET /quotes 200: 1")
}

func TestRun_LoadFailure(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	err := run(context.Background(), options{baseURL: url, quiet: true}, &config.Config{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, "Erreur chargement devis", err.Error())
}

func TestRun_CustomerNeedsField(t *testing.T) {
	err := run(context.Background(), options{baseURL: devAPI(t), quiet: true, customer: 1}, &config.Config{}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.EqualError(t, err, "-customer needs -phone or -email")
}

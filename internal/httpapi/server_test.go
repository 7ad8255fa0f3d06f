package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/registry"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

const testGameID = "httpapi-test"

type stubGame struct{}

func (stubGame) ID() string                           { return testGameID }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func init() {
	registry.Register(testGameID, func() registry.Game { return stubGame{} })
}

type fakeScores struct {
	entries   []storage.ScoreEntry
	best      int
	err       error
	lastLimit int
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *fakeScores) ReadBest(gameID string) (int, error) {
	return f.best, f.err
}

func newTestServer(t *testing.T, scores *fakeScores) *httptest.Server {
	t.Helper()
	h := NewHandler(scores, log.New(io.Discard))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeScores{})

	var body map[string]string
	if status := getJSON(t, srv.URL+"/api/health", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestListGames(t *testing.T) {
	srv := newTestServer(t, &fakeScores{})

	var games []GameView
	if status := getJSON(t, srv.URL+"/api/games", &games); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	found := false
	for _, g := range games {
		if g.ID == testGameID && g.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("registered game missing from %v", games)
	}
}

func TestTopScores(t *testing.T) {
	scores := &fakeScores{entries: []storage.ScoreEntry{
		{ID: 2, GameID: testGameID, Score: 90},
		{ID: 1, GameID: testGameID, Score: 40},
	}}
	srv := newTestServer(t, scores)

	var body struct {
		Game   string      `json:"game"`
		Scores []ScoreView `json:"scores"`
	}
	status := getJSON(t, srv.URL+"/api/games/"+testGameID+"/scores?limit=5", &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if scores.lastLimit != 5 {
		t.Errorf("limit passed = %d, want 5", scores.lastLimit)
	}
	if body.Game != testGameID || len(body.Scores) != 2 || body.Scores[0].Score != 90 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestTopScoresDefaultLimit(t *testing.T) {
	scores := &fakeScores{}
	srv := newTestServer(t, scores)

	getJSON(t, srv.URL+"/api/games/"+testGameID+"/scores", nil)
	if scores.lastLimit != 10 {
		t.Errorf("default limit = %d, want 10", scores.lastLimit)
	}
}

func TestBest(t *testing.T) {
	srv := newTestServer(t, &fakeScores{best: 1230})

	var body struct {
		Game string `json:"game"`
		Best int    `json:"best"`
	}
	if status := getJSON(t, srv.URL+"/api/games/"+testGameID+"/best", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body.Best != 1230 {
		t.Errorf("best = %d, want 1230", body.Best)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		scores *fakeScores
		path   string
		want   int
	}{
		{"unknown game scores", &fakeScores{}, "/api/games/nope/scores", http.StatusNotFound},
		{"unknown game best", &fakeScores{}, "/api/games/nope/best", http.StatusNotFound},
		{"bad limit", &fakeScores{}, "/api/games/" + testGameID + "/scores?limit=abc", http.StatusBadRequest},
		{"zero limit", &fakeScores{}, "/api/games/" + testGameID + "/scores?limit=0", http.StatusBadRequest},
		{"store failure", &fakeScores{err: errors.New("boom")}, "/api/games/" + testGameID + "/best", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.scores)
			var body map[string]string
			if status := getJSON(t, srv.URL+tt.path, &body); status != tt.want {
				t.Errorf("status = %d, want %d", status, tt.want)
			}
			if body["error"] == "" {
				t.Error("expected error message in body")
			}
		})
	}
}

func TestRealStoreSatisfiesScoreSource(t *testing.T) {
	var _ ScoreSource = (*storage.Store)(nil)
}

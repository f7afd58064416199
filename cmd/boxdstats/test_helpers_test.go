package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"boxdstats/internal/config"
	"boxdstats/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	server     *httptest.Server
}

// fakeTMDB serves search results keyed by title and details keyed by id.
type fakeTMDB struct {
	searches map[string]int64
	details  map[int64]string
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/search/movie":
		id, ok := f.searches[r.URL.Query().Get("query")]
		if !ok {
			_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
			return
		}
		fmt.Fprintf(w, `{"page":1,"results":[{"id":%d}]}`, id)
	case strings.HasPrefix(r.URL.Path, "/movie/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/movie/"), 10, 64)
		body, ok := f.details[id]
		if err != nil || !ok {
			http.Error(w, `{"status_code":34}`, http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	default:
		http.NotFound(w, r)
	}
}

func defaultFakeTMDB() *fakeTMDB {
	return &fakeTMDB{
		searches: map[string]int64{
			"Film A": 101,
			"Film B": 102,
		},
		details: map[int64]string{
			101: `{"id":101,"title":"Film A","release_date":"1994-05-01","runtime":120,"vote_average":8.0,
				"genres":[{"id":18,"name":"Drama"}],
				"credits":{"cast":[{"name":"Kim"}],"crew":[{"name":"Ann","job":"Director"}]}}`,
			102: `{"id":102,"title":"Film B","release_date":"2003-09-12","runtime":90,"vote_average":6.0,
				"genres":[{"id":18,"name":"Drama"},{"id":35,"name":"Comedy"}],
				"credits":{"cast":[{"name":"Lee"}],"crew":[{"name":"Bo","job":"Director"}]},
				"release_dates":{"results":[{"iso_3166_1":"US","release_dates":[{"certification":"R"}]}]}}`,
		},
	}
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_KEY", "")

	server := httptest.NewServer(defaultFakeTMDB())
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithTMDBBaseURL(server.URL)}, opts...)...)
	cfg.Logging.Level = "error"

	testsupport.WriteExport(t, cfg.Paths.ExportDir,
		[]testsupport.Row{{Name: "Film A", Year: 1994}, {Name: "Film B", Year: 2003}, {Name: "Film X", Year: 2020}},
		[]testsupport.Row{{Name: "Film B", Year: 2003}, {Name: "Film C", Year: 2024}},
		[]testsupport.Row{{Name: "Film A", Year: 1994}},
	)

	configPath := filepath.Join(testsupport.BaseDir(cfg), "boxdstats.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, server: server}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

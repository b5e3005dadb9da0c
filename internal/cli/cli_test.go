package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	perr "findstrings/internal/platform/errors"
	phttp "findstrings/internal/platform/net/http"
	kit "findstrings/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "hello, world!" at 0x01..0x0d, "ab" at 0x0f..0x10
var sample = []byte("\x00hello, world!\x00ab\x00")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_ScansFileByDefault(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)
	out, err := run(t, p)
	require.NoError(t, err)
	assert.Equal(t, "0x0001-0x000d: \"hello, world!\"\n", out)
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "findstrings [flags] <input-file>")
	assert.Contains(t, out, "--minimum-length")
	assert.NotContains(t, out, "--chunk-size", "hidden flag")
}

func TestScan_FlagsShortAndLong(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)

	out, err := run(t, "scan", "-l", "2", "-f", "csv", p)
	require.NoError(t, err)
	assert.Equal(t, "1,13,\"hello, world!\"\n15,2,\"ab\"\n", out)

	out, err = run(t, "scan", "--min-length=2", "--format=csv", "--chunk-size=3", p)
	require.NoError(t, err)
	assert.Equal(t, "1,13,\"hello, world!\"\n15,2,\"ab\"\n", out)
}

func TestScan_JSONLines(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)
	out, err := run(t, "-f", "JSONL", p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "hello, world!", got["text"])
	assert.EqualValues(t, 1, got["offset"])
	assert.EqualValues(t, 13, got["end"])
}

func TestScan_EncodingAndTableFile(t *testing.T) {
	p := kit.WriteFile(t, "box.bin", []byte("\x00\xc4\xc4\xc4\xb3\x00"))

	out, err := run(t, "-e", "cp437", "-l", "4", p)
	require.NoError(t, err)
	assert.Equal(t, "0x0001-0x0004: \"───│\"\n", out)

	tbl := kit.WriteFile(t, "box.txt", []byte("c4 2500\nb3 2502\n"))
	out, err = run(t, "-t", tbl, "-l", "4", p)
	require.NoError(t, err)
	assert.Equal(t, "0x0001-0x0004: \"───│\"\n", out)

	_, err = run(t, "-t", tbl, "-e", "cp437", p)
	require.Error(t, err, "table file and encoding are exclusive")
}

func TestScan_EnvDefaults(t *testing.T) {
	t.Setenv("FINDSTRINGS_MIN_LENGTH", "2")
	t.Setenv("FINDSTRINGS_FORMAT", "CSV")
	p := kit.WriteFile(t, "in.bin", sample)

	out, err := run(t, p)
	require.NoError(t, err)
	assert.Equal(t, "1,13,\"hello, world!\"\n15,2,\"ab\"\n", out)

	// flags beat env
	out, err = run(t, "-l", "8", "-f", "text", p)
	require.NoError(t, err)
	assert.Equal(t, "0x0001-0x000d: \"hello, world!\"\n", out)
}

func TestScan_TableFlagReplacesEnvTable(t *testing.T) {
	p := kit.WriteFile(t, "box.bin", []byte("\x00\xc4\xc4\xc4\xb3\x00"))
	tbl := kit.WriteFile(t, "box.txt", []byte("c4 2500\nb3 2502\n"))

	t.Run("encoding over env table file", func(t *testing.T) {
		t.Setenv("FINDSTRINGS_TABLE_FILE", "/no/such/table.txt")
		out, err := run(t, "-e", "cp437", "-l", "4", p)
		require.NoError(t, err)
		assert.Equal(t, "0x0001-0x0004: \"───│\"\n", out)
	})

	t.Run("table file over env encoding", func(t *testing.T) {
		t.Setenv("FINDSTRINGS_ENCODING", "klingon")
		out, err := run(t, "scan", "-t", tbl, "-l", "4", p)
		require.NoError(t, err)
		assert.Equal(t, "0x0001-0x0004: \"───│\"\n", out)
	})

	t.Run("env alone still conflicts", func(t *testing.T) {
		t.Setenv("FINDSTRINGS_TABLE_FILE", tbl)
		t.Setenv("FINDSTRINGS_ENCODING", "cp437")
		_, err := run(t, p)
		require.Error(t, err)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeUsage))
	})
}

func TestScan_InvalidEnvFormat(t *testing.T) {
	t.Setenv("FINDSTRINGS_FORMAT", "xml")
	p := kit.WriteFile(t, "in.bin", sample)

	_, err := run(t, p)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidConfiguration))
	assert.Equal(t, 2, perr.Exit(err))
}

func TestScan_Errors(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)

	cases := []struct {
		name string
		args []string
		code perr.ErrorCode
		exit int
	}{
		{"missing input", []string{"/no/such/input.bin"}, perr.ErrorCodeNotFound, 2},
		{"zero repeat", []string{"-r", "0", p}, perr.ErrorCodeInvalidConfiguration, 2},
		{"bad format", []string{"-f", "xml", p}, perr.ErrorCodeInvalidConfiguration, 2},
		{"unknown encoding", []string{"-e", "klingon", p}, perr.ErrorCodeInvalidConfiguration, 2},
		{"missing table", []string{"-t", "/no/such/table.txt", p}, perr.ErrorCodeNotFound, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := run(t, c.args...)
			require.Error(t, err)
			assert.Equal(t, c.code, perr.CodeOf(err), err.Error())
			assert.Equal(t, c.exit, perr.Exit(err))
		})
	}
}

func TestScan_ValidationNamesTheFlag(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)
	_, err := run(t, "-d", "0", p)
	require.Error(t, err)
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "minimum-distinct", e.Field())
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestScan_BrokenPipeIsQuiet(t *testing.T) {
	p := kit.WriteFile(t, "in.bin", sample)
	cmd := NewRootCmd()
	cmd.SetOut(pipeWriter{})
	cmd.SetArgs([]string{p})
	assert.NoError(t, cmd.Execute())
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables")
	require.NoError(t, err)
	kit.MustContain(t, out, "  cp437\n")
	kit.MustContain(t, out, "Formats: csv, jsonl, text")

	out, err = run(t, "tables", "--json")
	require.NoError(t, err)
	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got["encodings"], "ascii")
	assert.Equal(t, []string{"csv", "jsonl", "text"}, got["formats"])
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "findstrings version ")
	assert.Contains(t, out, "Go version: ")
}

func TestServe_MountsAPI(t *testing.T) {
	kit.Serial(t)
	t.Setenv("FINDSTRINGS_API_PORT", "4555")

	var got *phttp.Server
	var gotGrace time.Duration
	kit.Swap(t, &runServer, func(_ context.Context, srv *phttp.Server, grace time.Duration) error {
		got, gotGrace = srv, grace
		return nil
	})

	_, err := run(t, "serve", "--grace", "2s")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ":4555", got.Addr())
	assert.Equal(t, 2*time.Second, gotGrace)

	rec := httptest.NewRecorder()
	got.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	body := bytes.NewReader(sample)
	got.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/scan?format=csv", body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1,13,\"hello, world!\"\n", rec.Body.String())
}

func TestUsageErrorsExitTwo(t *testing.T) {
	for _, args := range [][]string{
		{"--no-such-flag", "x"},
		{"a", "b"},
		{"scan"},
		{"tables", "extra"},
	} {
		_, err := run(t, args...)
		require.Error(t, err, "%v", args)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeUsage), "%v: %v", args, err)
		assert.Equal(t, 2, perr.Exit(err))
	}
}

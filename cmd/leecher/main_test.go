package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vodleecher/leecher/internal/config"
	apperrors "github.com/vodleecher/leecher/internal/errors"
	"github.com/vodleecher/leecher/internal/logger"
	"github.com/vodleecher/leecher/internal/search"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:          "info",
		DefaultSearchMode: "channel",
		DefaultVideoKind:  "broadcast",
		DefaultLoadLimit:  10,
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	logger.SetDefault(logger.New(&logger.Config{Output: io.Discard}))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader(stdin))

	ctx := apperrors.WithOperationID(context.Background(), "test-op")
	code := run(ctx, cmd, args, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func decodeReport(t *testing.T, out string) validateReport {
	t.Helper()
	var report validateReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("failed to parse report %q: %v", out, err)
	}
	return report
}

func TestValidate_Valid(t *testing.T) {
	res := execute(t, "", "validate", "--mode", "ids", "--id", "5", "--id", "7", "--limit", "3")

	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	report := decodeReport(t, res.stdout)
	if !report.Valid {
		t.Error("expected a valid report")
	}
	if report.Snapshot == nil {
		t.Fatal("expected a snapshot in the report")
	}
	want := search.Values{SearchMode: search.ModeIDs, IDs: "5\n7", LoadLimit: 3}
	if report.Snapshot.Values != want {
		t.Errorf("snapshot values = %+v, want %+v", report.Snapshot.Values, want)
	}
}

func TestValidate_Invalid(t *testing.T) {
	res := execute(t, "", "validate", "--mode", "urls",
		"--url", "https://example.com/videos/1", "--url", "https://example.com/videos/")

	if res.code != apperrors.ExitInvalid {
		t.Fatalf("exit code = %d, want %d", res.code, apperrors.ExitInvalid)
	}

	report := decodeReport(t, res.stdout)
	if report.Valid {
		t.Error("expected an invalid report")
	}
	if got := report.Errors[search.FieldURLs]; len(got) != 1 || got[0] != search.MsgURLsInvalid {
		t.Errorf("errors[urls] = %v, want [%q]", got, search.MsgURLsInvalid)
	}
	if report.Snapshot != nil {
		t.Error("invalid criteria should not be snapshotted")
	}
	if !strings.Contains(res.stderr, apperrors.CodeValidationError) {
		t.Errorf("stderr = %q, want a validation error", res.stderr)
	}
	if !strings.Contains(res.stderr, "test-op") {
		t.Errorf("stderr = %q, want the operation id", res.stderr)
	}
}

func TestValidate_SingleField(t *testing.T) {
	res := execute(t, "", "validate", "--mode", "channel", "--field", "ids")

	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}
	report := decodeReport(t, res.stdout)
	if !report.Valid || report.Field != "ids" {
		t.Errorf("report = %+v, want valid report for ids", report)
	}
	if report.Snapshot != nil {
		t.Error("single field validation should not snapshot")
	}
}

func TestValidate_InputFromStdin(t *testing.T) {
	stdin := `{"search_mode":"urls","urls":"https://www.twitch.tv/videos/42","video_kind":"upload"}`
	res := execute(t, stdin, "validate", "--input", "-")

	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}
	report := decodeReport(t, res.stdout)
	if report.Snapshot == nil {
		t.Fatal("expected a snapshot")
	}
	if report.Snapshot.Values.VideoKind != search.KindUpload {
		t.Errorf("video kind = %v, want upload", report.Snapshot.Values.VideoKind)
	}
	if report.Snapshot.Values.LoadLimit != 10 {
		t.Errorf("load limit = %d, want the configured default", report.Snapshot.Values.LoadLimit)
	}
}

func TestValidate_FlagsOverrideInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.json")
	if err := os.WriteFile(path, []byte(`{"search_mode":"ids","ids":"-1"}`), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	res := execute(t, "", "validate", "--input", path, "--id", "8")
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}
	report := decodeReport(t, res.stdout)
	if report.Snapshot == nil || report.Snapshot.Values.IDs != "8" {
		t.Errorf("report = %+v, want ids overridden by flag", report)
	}
}

func TestValidate_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"unknown mode", "", []string{"validate", "--mode", "playlist"}},
		{"unknown kind", "", []string{"validate", "--kind", "clip"}},
		{"unknown flag", "", []string{"validate", "--nope"}},
		{"bad json", "{", []string{"validate", "--input", "-"}},
		{"unknown mode in json", `{"search_mode":"all"}`, []string{"validate", "--input", "-"}},
		{"missing file", "", []string{"validate", "--input", "/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.stdin, tt.args...)
			if res.code != apperrors.ExitBadRequest {
				t.Errorf("exit code = %d, want %d (stderr %s)", res.code, apperrors.ExitBadRequest, res.stderr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
		})
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "channel",
			args: []string{"ids", "--channel", "  SomeChannel "},
			want: "somechannel\n",
		},
		{
			name: "ids",
			args: []string{"ids", "--mode", "ids", "--id", "9", "--id", "3"},
			want: "9\n3\n",
		},
		{
			name: "urls",
			args: []string{"ids", "--mode", "urls", "--url", "https://www.twitch.tv/videos/12", "--url", "https://example.com/videos/4"},
			want: "12\n4\n",
		},
		{
			name: "canonical urls",
			args: []string{"ids", "--mode", "urls", "--canonical", "--url", "https://m.twitch.tv/videos/12?t=5s", "--url", "https://example.com/videos/4"},
			want: "https://www.twitch.tv/videos/12\nhttps://example.com/videos/4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", tt.args...)
			if res.code != apperrors.ExitOK {
				t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestIDs_InvalidCriteria(t *testing.T) {
	res := execute(t, "", "ids", "--mode", "ids", "--id", "abc")

	if res.code != apperrors.ExitInvalid {
		t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitInvalid)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}

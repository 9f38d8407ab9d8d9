package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
)

const chat = "1/2/23, 09:15 - Alice: hello world\n" +
	"1/2/23, 09:16 - Bob: <Media omitted>\n" +
	"1/2/23, 09:20 - Bob: hello 😂\n"

type fixture struct {
	chat    string
	exports string
	args    []string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	confDir := t.TempDir()
	exports := t.TempDir()

	chatPath := filepath.Join(exports, "WhatsApp Chat with Bob.txt")
	require.NoError(t, os.WriteFile(chatPath, []byte(chat), 0o644))

	stopPath := filepath.Join(confDir, "stop.txt")
	require.NoError(t, os.WriteFile(stopPath, []byte("world\n"), 0o644))

	cfgPath := filepath.Join(confDir, "config.toml")
	cfg := fmt.Sprintf("log_level = \"error\"\nexports_root = %q\n", exports)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return fixture{
		chat:    chatPath,
		exports: exports,
		args:    []string{"--config", cfgPath, "--stopwords", stopPath},
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (f fixture) cmd(name string, extra ...string) []string {
	args := append([]string{name}, f.args...)
	return append(args, extra...)
}

func TestStatsCmd(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("stats", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Messages  3")
	assert.Contains(t, out, "Total Words     4")
	assert.Contains(t, out, "Media Shared    1")
	assert.Contains(t, out, "Links Shared    0")
	assert.NotContains(t, out, "\033[")

	out, err = run(t, f.cmd("stats", f.chat, "--user", "Alice")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Messages  1")

	out, err = run(t, f.cmd("stats", f.chat, "-u", "Nobody")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Messages  0")
}

func TestTimelineCmd(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("timeline", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "MONTHLY TIMELINE")
	assert.Contains(t, out, "January-2023")

	out, err = run(t, f.cmd("timeline", f.chat, "--daily")...)
	require.NoError(t, err)
	assert.Contains(t, out, "DAILY TIMELINE")
	assert.Contains(t, out, "2023-01-02")
}

func TestActivityAndHeatmapCmds(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("activity", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "MOST BUSY DAY")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "January")

	out, err = run(t, f.cmd("heatmap", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "WEEKLY ACTIVITY MAP")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Sun")
}

func TestWordsCmd(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("words", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "world")

	out, err = run(t, f.cmd("words", f.chat, "--cloud")...)
	require.NoError(t, err)
	assert.Contains(t, out, "hello hello 😂")
}

func TestEmojiCmd(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("emoji", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "😂")
	assert.Contains(t, out, "100.00%")
}

func TestBusyAndUsersCmds(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("busy", f.chat)...)
	require.NoError(t, err)
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "33.33%")

	out, err = run(t, f.cmd("users", f.chat)...)
	require.NoError(t, err)
	assert.Equal(t, parse.Overall+"\t3\nAlice\t1\nBob\t2\n", out)
}

func TestReportCmd_Plain(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("report", f.chat, "--user", "Bob")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis for Bob")
	assert.Contains(t, out, "TOP STATISTICS")
	assert.Contains(t, out, "MOST BUSY USERS")
	assert.NotContains(t, out, "warning:")
}

func TestReportCmd_UnreadableStopWords(t *testing.T) {
	f := newFixture(t)
	args := f.cmd("report", f.chat)
	args = append(args, "--stopwords", filepath.Join(t.TempDir(), "missing.txt"))

	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: stop-word list")
	assert.Contains(t, out, "world", "vocabulary is unfiltered")
}

func TestScanCmd(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.exports, "bad.txt"), []byte("2/30/23, 10:00 - Alice: hi\n"), 0o644))

	out, err := run(t, f.cmd("scan")...)
	require.NoError(t, err)
	assert.Contains(t, out, "WhatsApp Chat with Bob.txt")
	assert.Contains(t, out, "3 messages")
	assert.Contains(t, out, "2 participants")
	assert.Contains(t, out, "2023-01-02 09:15 .. 2023-01-02 09:20")
	assert.Contains(t, out, "bad.txt\terror:")
	assert.Contains(t, out, "2 files, 1 failed")

	out, err = run(t, f.cmd("scan", t.TempDir())...)
	require.NoError(t, err)
	assert.Contains(t, out, "No transcripts found")
}

func TestDoctorCmd(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f.cmd("doctor")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: OK (1 words)")
	assert.Contains(t, out, "Transcripts: 1")
	assert.Contains(t, out, "(OK)")
}

func TestMalformedTranscript(t *testing.T) {
	f := newFixture(t)
	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("13/1/23, 10:00 - Alice: hi\n"), 0o644))

	_, err := run(t, f.cmd("stats", bad)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrMalformedTimestamp)
}

func TestMissingTranscriptArg(t *testing.T) {
	f := newFixture(t)
	_, err := run(t, f.cmd("stats")...)
	assert.Error(t, err)
}

package e2e_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	workDir    string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "uniquepick-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/uniquepick")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		workDir:    t.TempDir(),
	}
}

// run executes the binary with stdin fed from input. It returns stdout and
// stderr separately since prompts go to stderr.
func (r *cliRunner) run(input string, env []string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(r.binaryPath, args...)
	cmd.Dir = r.workDir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing

type standing struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type roundResponse struct {
	Round     int            `json:"round"`
	Picks     map[string]int `json:"picks"`
	Deltas    map[string]int `json:"deltas"`
	Standings []standing     `json:"standings"`
}

type resultResponse struct {
	FinalScores []standing `json:"final_scores"`
	MaxScore    int        `json:"max_score"`
	Winners     []string   `json:"winners"`
}

// decodeGame splits json play output into its round records and final result
func decodeGame(t *testing.T, stdout string) ([]roundResponse, resultResponse) {
	t.Helper()

	var docs []json.RawMessage
	dec := json.NewDecoder(strings.NewReader(stdout))
	for {
		var doc json.RawMessage
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err, "stdout: %s", stdout)
		docs = append(docs, doc)
	}
	require.NotEmpty(t, docs)

	rounds := make([]roundResponse, len(docs)-1)
	for i, doc := range docs[:len(docs)-1] {
		require.NoError(t, json.Unmarshal(doc, &rounds[i]))
	}
	var result resultResponse
	require.NoError(t, json.Unmarshal(docs[len(docs)-1], &result))
	return rounds, result
}

func TestCLI_Rules(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, _, err := cli.run("", nil, "rules")
	require.NoError(t, err)
	assert.Contains(t, stdout, "you gain that many points")
}

func TestCLI_InteractiveGame(t *testing.T) {
	cli := newCLIRunner(t)

	// 2 players, alice and bob, 1 round: alice picks 1, bob picks 2
	stdout, stderr, err := cli.run("2\nalice\nbob\n1\n1\n2\n", nil, "play")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stderr, "Recommended number of rounds is 4")
	assert.Contains(t, stderr, "Player 1 (alice), please enter a number between [1,2]")
	assert.Contains(t, stdout, "ROUND 1:")
	assert.Contains(t, stdout, "Secret Numbers")
	assert.Contains(t, stdout, "alice: 1")
	assert.Contains(t, stdout, "bob: 2")
	assert.Contains(t, stdout, "The winner is bob!")
}

func TestCLI_RepromptsInvalidInput(t *testing.T) {
	cli := newCLIRunner(t)

	input := strings.Join([]string{
		"two", "1", "2", // player count
		"42", "   ", "al!ce", "alice", // first name
		"alice", "bob", // duplicate then valid
		"0", "1", // rounds
		"x", "3", "2", // alice's pick
		"2", // bob's pick
	}, "\n") + "\n"

	stdout, stderr, err := cli.run(input, nil, "play")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stderr, "Invalid input. Please enter a number.")
	assert.Contains(t, stderr, "There must be at least 2 players.")
	assert.Contains(t, stderr, "cannot be solely numeric")
	assert.Contains(t, stderr, "cannot be whitespace or empty")
	assert.Contains(t, stderr, "cannot contain punctuation")
	assert.Contains(t, stderr, "already registered")
	assert.Contains(t, stderr, "Please enter a positive number!")
	assert.Contains(t, stderr, "Error: The input must be a numeric value.")
	assert.Contains(t, stderr, "Error: The number must be between 1 and 2")
	assert.Contains(t, stdout, "It's a tie between the following players:")
}

func TestCLI_JSONGameWithFlags(t *testing.T) {
	cli := newCLIRunner(t)

	// Both pick 1, then both pick 2: -1 then -2 each
	stdout, stderr, err := cli.run("1\n1\n2\n2\n", nil,
		"--output", "json", "play",
		"--players", "2", "--name", "alice", "--name", "bob", "--rounds", "2")
	require.NoError(t, err, "stderr: %s", stderr)

	rounds, result := decodeGame(t, stdout)
	require.Len(t, rounds, 2)
	assert.Equal(t, 1, rounds[0].Round)
	assert.Equal(t, map[string]int{"alice": -1, "bob": -1}, rounds[0].Deltas)
	assert.Equal(t, map[string]int{"alice": 2, "bob": 2}, rounds[1].Picks)

	assert.Equal(t, -3, result.MaxScore)
	assert.Equal(t, []string{"alice", "bob"}, result.Winners)
	assert.Equal(t, []standing{{"alice", -3}, {"bob", -3}}, result.FinalScores)
}

func TestCLI_EnvironmentConfig(t *testing.T) {
	cli := newCLIRunner(t)

	env := []string{
		"UNIQUEPICK_OUTPUT=json",
		"UNIQUEPICK_ROUNDS=1",
		"UNIQUEPICK_PLAYERS=3",
	}
	stdout, stderr, err := cli.run("carol\ndave\nerin\n1\n2\n3\n", env, "play")
	require.NoError(t, err, "stderr: %s", stderr)

	rounds, result := decodeGame(t, stdout)
	require.Len(t, rounds, 1)
	assert.Equal(t, 3, result.MaxScore)
	assert.Equal(t, []string{"erin"}, result.Winners)
}

func TestCLI_BotsOnly(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("", nil,
		"--output", "json", "play",
		"--players", "3", "--bot", "r2", "--bot", "c3:contrarian", "--bot", "k9:random", "--rounds", "3")
	require.NoError(t, err, "stderr: %s", stderr)

	rounds, result := decodeGame(t, stdout)
	require.Len(t, rounds, 3)
	for _, r := range rounds {
		assert.Len(t, r.Picks, 3)
		for _, v := range r.Picks {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 3)
		}
	}
	assert.NotEmpty(t, result.Winners)
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t)

	t.Run("invalid output format", func(t *testing.T) {
		_, stderr, err := cli.run("", nil, "--output", "xml", "rules")
		require.Error(t, err)
		assert.Contains(t, stderr, "invalid --output")
	})

	t.Run("unknown bot strategy", func(t *testing.T) {
		_, stderr, err := cli.run("", nil, "play", "--players", "2", "--bot", "a", "--bot", "b:psychic", "--rounds", "1")
		require.Error(t, err)
		assert.Contains(t, stderr, "unknown bot strategy")
	})

	t.Run("too few players", func(t *testing.T) {
		_, stderr, err := cli.run("", nil, "play", "--players", "1", "--rounds", "1")
		require.Error(t, err)
		assert.Contains(t, stderr, "insufficient players")
	})

	t.Run("input ends early", func(t *testing.T) {
		_, stderr, err := cli.run("2\nalice\n", nil, "play")
		require.Error(t, err)
		assert.Contains(t, stderr, "input closed")
	})

	t.Run("json errors", func(t *testing.T) {
		_, stderr, err := cli.run("", nil, "--output", "json", "play", "--players", "2", "--name", "1234", "--rounds", "1")
		require.Error(t, err)

		var resp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		// Prompts share stderr, the error is the last line
		lines := strings.Split(strings.TrimSpace(stderr), "\n")
		require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &resp))
		assert.Contains(t, resp.Error.Message, "solely numeric")
	})
}

package cli

import (
	"bytes"
	"ctchen222/tictactoe-engine/internal/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lastScoreLine(out string) string {
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "X: ") {
			return lines[i]
		}
	}
	return ""
}

func TestEvaluateCmd(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		want    string
		wantErr bool
	}{
		{name: "Row win", board: "XXXOO----", want: "X wins on 0-1-2\n"},
		{name: "Diagonal win with separators", board: "O X X/X O -/- - O", want: "O wins on 0-4-8\n"},
		{name: "Draw", board: "XOXXOOOXX", want: "draw\n"},
		{name: "In progress", board: "---------", want: "in progress\n"},
		{name: "Invalid", board: "XYZ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "evaluate", tt.board)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSuggestCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "O takes the win", args: []string{"XX-OO----"}, want: "5\n"},
		{name: "X takes the win", args: []string{"XX-OO----", "--mover", "X"}, want: "2\n"},
		{name: "O blocks", args: []string{"XX-O-----"}, want: "2\n"},
		{name: "Center", args: []string{"X--------"}, want: "4\n"},
		{name: "Full board", args: []string{"XOXXOOOXX"}, want: "none\n"},
		{name: "Invalid mover", args: []string{"---------", "--mover", "Z"}, wantErr: true},
		{name: "Invalid difficulty", args: []string{"---------", "--difficulty", "godlike"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"suggest", "--seed", "1"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPlayCmd(t *testing.T) {
	t.Run("Two players until X wins", func(t *testing.T) {
		out, err := execute(t, "1\n4\n2\n5\n3\nq\n", "play", "--mode", "pvp")
		require.NoError(t, err)
		assert.Contains(t, out, "X wins this round!")
		assert.Contains(t, out, "X: 1  O: 0  Draws: 0")
	})

	t.Run("Computer answers as O", func(t *testing.T) {
		out, err := execute(t, "1\nq\n", "play", "--seed", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "Computer plays 5")
		assert.Contains(t, out, " X | 2 | 3 \n---+---+---\n 4 | O | 6 ")
	})

	t.Run("Errors are reported and play continues", func(t *testing.T) {
		out, err := execute(t, "u\n1\n1\nhello\nq\n", "play", "--mode", "pvp")
		require.NoError(t, err)
		assert.Contains(t, out, "error: nothing to undo")
		assert.Contains(t, out, "error: cell is already occupied")
		assert.Contains(t, out, playHelp)
	})

	t.Run("Mode toggle keeps the score", func(t *testing.T) {
		out, err := execute(t, "m\n1\n4\n2\n5\n3\nm\nq\n", "play")
		require.NoError(t, err)
		assert.Contains(t, out, "Mode: pvp")
		assert.Contains(t, out, "Mode: ai")
		assert.Contains(t, out, "X wins this round!")
		assert.Equal(t, "X: 1  O: 0  Draws: 0", lastScoreLine(out))
	})

	t.Run("Score reset after a scored round", func(t *testing.T) {
		out, err := execute(t, "1\n4\n2\n5\n3\ns\nq\n", "play", "--mode", "pvp")
		require.NoError(t, err)
		assert.Contains(t, out, "X: 1  O: 0  Draws: 0")
		assert.Equal(t, "X: 0  O: 0  Draws: 0", lastScoreLine(out))
	})

	t.Run("Invalid mode", func(t *testing.T) {
		_, err := execute(t, "", "play", "--mode", "online")
		require.Error(t, err)
	})
}

func TestBuildServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv, h, err := buildServer(&config.Config{
		HTTPAddr: ":0",
		Bot:      config.Bot{Difficulty: "medium", Delay: 10 * time.Millisecond, Seed: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, h)

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"difficulty":"medium"`)

	_, _, err = buildServer(&config.Config{Bot: config.Bot{Difficulty: "godlike"}})
	require.Error(t, err)
}

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/simon.go/pkg/score"
)

func TestReadRecord(t *testing.T) {
	tests := []struct {
		name   string
		stored uint32
		expect Record
		text   string
	}{
		{"valid", 12, Record{Raw: 12, Score: 12, Valid: true}, "high score 12"},
		{"erased", score.ErasedRecord, Record{Raw: score.ErasedRecord}, "invalid record 0xffffffff, high score 0"},
		{"out of range", 150, Record{Raw: 150}, "invalid record 0x96, high score 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := ReadRecord(score.NewMemoryStore(tc.stored))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, rec)
			assert.Equal(t, tc.text, rec.String())
		})
	}
}

func TestParseScore(t *testing.T) {
	v, err := ParseScore("42")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	v, err = ParseScore("100")
	require.NoError(t, err)
	assert.Equal(t, uint32(score.SaneMax), v)

	for _, arg := range []string{"101", "-1", "abc", ""} {
		_, err = ParseScore(arg)
		assert.Error(t, err, arg)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, cmd := range []string{ShowCmd.Name, SetCmd.Name, ResetCmd.Name, EraseCmd.Name} {
		assert.NotEmpty(t, cmd)
	}
	assert.NotNil(t, SetCmd.Func)
}

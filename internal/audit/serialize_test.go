package audit

import (
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestIsSensitiveField(t *testing.T) {
	tests := []struct {
		field string
		want  bool
	}{
		{"password", true},
		{"user_password_hash", true},
		{"api_token", true},
		{"secret_value", true},
		{"ssh_key", true},
		{"credit_card_number", true},
		{"ssn", true},
		{"PASSWORD", true}, // case-insensitive
		{"amount", false},
		{"status", false},
		{"description", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			require.Equal(t, tt.want, IsSensitiveField(tt.field, DefaultSensitiveFields))
		})
	}
}

func TestSanitize(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	ip := net.ParseIP("10.0.0.1") // fmt.Stringer

	got := Sanitize(map[string]any{
		"string":  "hello",
		"int":     42,
		"float":   1.5,
		"bool":    true,
		"nil":     nil,
		"time":    ts,
		"ptr":     &ts,
		"dur":     90 * time.Second,
		"ip":      ip,
		"err":     errors.New("boom"),
		"nested":  map[string]any{"when": ts},
		"list":    []any{ts, "x", 1},
		"strings": []string{"a", "b"},
	})

	require.Equal(t, "hello", got["string"])
	require.Equal(t, 42, got["int"])
	require.Equal(t, 1.5, got["float"])
	require.Equal(t, true, got["bool"])
	require.Nil(t, got["nil"])
	require.Equal(t, "2026-03-01T09:30:00Z", got["time"])
	require.Equal(t, "2026-03-01T09:30:00Z", got["ptr"])
	require.Equal(t, "1m30s", got["dur"])
	require.Equal(t, "10.0.0.1", got["ip"])
	require.Equal(t, "boom", got["err"])

	nested := got["nested"].(map[string]any)
	require.Equal(t, "2026-03-01T09:30:00Z", nested["when"])

	list := got["list"].([]any)
	require.Equal(t, "2026-03-01T09:30:00Z", list[0])

	// Everything must survive JSON marshaling.
	_, err := json.Marshal(got)
	require.NoError(t, err)
}

func TestSanitize_Nil(t *testing.T) {
	require.Nil(t, Sanitize(nil))
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	in := map[string]any{"time": ts}

	_ = Sanitize(in)
	require.Equal(t, ts, in["time"])
}

func TestTruncate_WithinBound(t *testing.T) {
	meta := map[string]any{"a": "short", "b": 1}
	got := Truncate(meta, 10000)
	require.Equal(t, meta, got)
}

func TestTruncate_LargeFieldsFirst(t *testing.T) {
	meta := map[string]any{
		"action":     "export",
		"user_agent": strings.Repeat("x", 5000),
	}

	got := Truncate(meta, 500)
	require.Equal(t, "export", got["action"])
	require.Equal(t, "[TRUNCATED - was 5000 chars]", got["user_agent"])
	require.LessOrEqual(t, serializedLen(got), 500)

	// Input untouched.
	require.Len(t, meta["user_agent"], 5000)
}

func TestTruncate_LongStrings(t *testing.T) {
	meta := map[string]any{
		"notes":   strings.Repeat("n", 400),
		"comment": strings.Repeat("c", 300),
		"short":   "ok",
	}

	got := Truncate(meta, 300)
	require.Equal(t, strings.Repeat("n", 100)+"...", got["notes"])
	require.Equal(t, strings.Repeat("c", 100)+"...", got["comment"])
	require.Equal(t, "ok", got["short"])
}

func TestTruncate_MultiByteBoundary(t *testing.T) {
	// 34 three-byte runes put a rune straddling the 100-byte cut point.
	meta := map[string]any{
		"notes": strings.Repeat("あ", 150),
	}

	got := Truncate(meta, 120)
	s, ok := got["notes"].(string)
	require.True(t, ok)
	require.True(t, strings.HasSuffix(s, "..."))
	require.True(t, utf8.ValidString(s))
	require.LessOrEqual(t, len(s), 100+len("..."))
	require.Equal(t, strings.Repeat("あ", 33)+"...", s)
}

func TestTruncate_Nil(t *testing.T) {
	require.Nil(t, Truncate(nil, 100))
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(ActionEntryCreated, Actor{ID: "u-1", Email: "a@b.c"},
		EntityRef{Type: "entry", ID: "e-1"}, map[string]any{"k": "v"})

	require.True(t, strings.HasPrefix(rec.ID, "audit-"))
	require.Equal(t, ActionEntryCreated, rec.Action)
	require.False(t, rec.Actor.IsZero())
	require.False(t, rec.Target.IsZero())
	require.WithinDuration(t, time.Now().UTC(), rec.CreatedAt, 5*time.Second)

	other := NewRecord(ActionEntryCreated, Actor{}, EntityRef{}, nil)
	require.NotEqual(t, rec.ID, other.ID)
	require.True(t, other.Actor.IsZero())
	require.True(t, other.Target.IsZero())
}

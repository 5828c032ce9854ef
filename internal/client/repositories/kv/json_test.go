package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type doc struct {
	Name string `json:"name"`
}

func TestJSONHelpers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var d doc
	found, err := GetJSON(ctx, s, "doc", &d)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SetJSON(ctx, s, "doc", doc{Name: "Alice"}))
	found, err = GetJSON(ctx, s, "doc", &d)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Alice", d.Name)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "doc", []byte("{not json")))

	var d doc
	_, err := GetJSON(ctx, s, "doc", &d)
	require.Error(t, err)
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(map[string]any{"a": doc{Name: "x"}, "b": []int{1}})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"x"}`, string(out["a"]))
	require.JSONEq(t, `[1]`, string(out["b"]))

	_, err = Marshal(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	require.Equal(t, "studentLoans_alice", LoansKey("alice"))
	require.Equal(t, "achievements_alice", AchievementsKey("alice"))
}

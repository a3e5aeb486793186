package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ehrlich-b/logstore"
	"github.com/ehrlich-b/logstore/internal/frame"
)

func TestReplayBuildsState(t *testing.T) {
	fake := logstore.NewFakeLogClient(
		frame.Set{Key: []byte("k"), Value: []byte("v")}.Encode(),
		frame.Delete{Key: []byte("k")}.Encode(),
		frame.Set{Key: []byte("k"), Value: []byte("w")}.Encode(),
	)

	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, ok := store.Get([]byte("k"))
	if !ok {
		t.Fatal("key k should be present after replay")
	}
	if !bytes.Equal(got, []byte("w")) {
		t.Errorf("Get(k) = %q, want %q", got, "w")
	}

	pairs := store.List()
	if len(pairs) != 1 {
		t.Fatalf("List returned %d pairs, want 1", len(pairs))
	}
	if !bytes.Equal(pairs[0].Key, []byte("k")) || !bytes.Equal(pairs[0].Value, []byte("w")) {
		t.Errorf("List = %q:%q, want k:w", pairs[0].Key, pairs[0].Value)
	}
}

func TestReplayEmptyLog(t *testing.T) {
	store, err := New(context.Background(), logstore.NewFakeLogClient(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestReplaySkipsGetFrames(t *testing.T) {
	fake := logstore.NewFakeLogClient(
		frame.Get{}.Encode(),
		frame.Set{Key: []byte("a"), Value: []byte("1")}.Encode(),
	)

	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := store.Get([]byte("a")); !ok {
		t.Error("key a should be present after replay")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestReplayFailsOnMalformedFrame(t *testing.T) {
	fake := logstore.NewFakeLogClient([]byte{0x7f})

	_, err := New(context.Background(), fake, nil)
	if err == nil {
		t.Fatal("replay of a malformed frame should fail")
	}
	if !logstore.IsCode(err, logstore.ErrCodeParse) {
		t.Errorf("error category = %v, want parse", err)
	}
}

func TestSetWritesAhead(t *testing.T) {
	fake := logstore.NewFakeLogClient()
	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatal(err)
	}

	prev, existed, err := store.Set(context.Background(), []byte("k"), []byte("v"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if existed || prev != nil {
		t.Errorf("first Set returned prev=%q existed=%v", prev, existed)
	}

	if fake.LogCalls() != 1 {
		t.Errorf("LogCalls = %d, want 1", fake.LogCalls())
	}
	want := frame.Set{Key: []byte("k"), Value: []byte("v")}.Encode()
	entries := fake.Entries()
	if len(entries) != 1 || !bytes.Equal(entries[0], want) {
		t.Errorf("logged entry = %v, want %v", entries, want)
	}

	prev, existed, err = store.Set(context.Background(), []byte("k"), []byte("w"))
	if err != nil {
		t.Fatal(err)
	}
	if !existed || !bytes.Equal(prev, []byte("v")) {
		t.Errorf("second Set returned prev=%q existed=%v, want v/true", prev, existed)
	}
}

func TestSetRPCFailureLeavesStateUntouched(t *testing.T) {
	fake := logstore.NewFakeLogClient()
	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatal(err)
	}

	fake.FailLogWith(errors.New("transport down"))
	if _, _, err := store.Set(context.Background(), []byte("k"), []byte("v")); err == nil {
		t.Fatal("Set should surface the RPC failure")
	}

	if _, ok := store.Get([]byte("k")); ok {
		t.Error("failed Set must not mutate local state")
	}
}

func TestDeleteAbsentShortCircuits(t *testing.T) {
	fake := logstore.NewFakeLogClient()
	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatal(err)
	}

	prev, existed, err := store.Delete(context.Background(), []byte("x"))
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if existed || prev != nil {
		t.Errorf("Delete of absent key returned prev=%q existed=%v", prev, existed)
	}
	if fake.LogCalls() != 0 {
		t.Errorf("LogCalls = %d, want 0 (absent delete must not hit the log)", fake.LogCalls())
	}
}

func TestDeletePresent(t *testing.T) {
	fake := logstore.NewFakeLogClient()
	store, err := New(context.Background(), fake, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := store.Set(context.Background(), []byte("k"), []byte("v")); err != nil {
		t.Fatal(err)
	}
	prev, existed, err := store.Delete(context.Background(), []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !existed || !bytes.Equal(prev, []byte("v")) {
		t.Errorf("Delete returned prev=%q existed=%v, want v/true", prev, existed)
	}
	if fake.LogCalls() != 2 {
		t.Errorf("LogCalls = %d, want 2", fake.LogCalls())
	}
	if _, ok := store.Get([]byte("k")); ok {
		t.Error("key should be gone after Delete")
	}
}

func TestReplayDeterminism(t *testing.T) {
	entries := [][]byte{
		frame.Set{Key: []byte("a"), Value: []byte("1")}.Encode(),
		frame.Set{Key: []byte("b"), Value: []byte("2")}.Encode(),
		frame.Delete{Key: []byte("a")}.Encode(),
		frame.Set{Key: []byte("b"), Value: []byte("3")}.Encode(),
	}

	first, err := New(context.Background(), logstore.NewFakeLogClient(entries...), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(context.Background(), logstore.NewFakeLogClient(entries...), nil)
	if err != nil {
		t.Fatal(err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("replay lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for _, p := range first.List() {
		v, ok := second.Get(p.Key)
		if !ok || !bytes.Equal(v, p.Value) {
			t.Errorf("replay mismatch for key %q", p.Key)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		args []string
		want Role
	}{
		{nil, RoleReplica},
		{[]string{"cached"}, RoleReplica},
		{[]string{"cached", "MASTER"}, RolePrimary},
		{[]string{"cached", "master"}, RolePrimary},
		{[]string{"cached", "Master", "extra"}, RolePrimary},
		{[]string{"cached", "mastery"}, RoleReplica},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.args); got != tt.want {
			t.Errorf("ParseRole(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

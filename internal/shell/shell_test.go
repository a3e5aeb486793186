package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ehrlich-b/logstore"
	"github.com/ehrlich-b/logstore/internal/cache"
)

func newTestShell(t *testing.T, role cache.Role) (*Shell, *bytes.Buffer, *logstore.FakeLogClient) {
	t.Helper()
	fake := logstore.NewFakeLogClient()
	store, err := cache.New(context.Background(), fake, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return New(store, role, &out), &out, fake
}

func run(t *testing.T, s *Shell, line string) bool {
	t.Helper()
	quit, err := s.Execute(context.Background(), line)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", line, err)
	}
	return quit
}

func TestInsertGetList(t *testing.T) {
	s, out, _ := newTestShell(t, cache.RolePrimary)

	run(t, s, "INSERT k v")
	if !strings.Contains(out.String(), "Inserting new pair (k, v)") {
		t.Errorf("unexpected insert output: %q", out.String())
	}

	out.Reset()
	run(t, s, "INSERT k w")
	if !strings.Contains(out.String(), "Previous value was: v, inserting: w") {
		t.Errorf("unexpected overwrite output: %q", out.String())
	}

	out.Reset()
	run(t, s, "GET k")
	if !strings.Contains(out.String(), "Value is: w") {
		t.Errorf("unexpected get output: %q", out.String())
	}

	out.Reset()
	run(t, s, "LIST")
	if !strings.Contains(out.String(), "Listing KeyValue pairs:") ||
		!strings.Contains(out.String(), "k:w") {
		t.Errorf("unexpected list output: %q", out.String())
	}
}

func TestGetAbsent(t *testing.T) {
	s, out, _ := newTestShell(t, cache.RoleReplica)

	run(t, s, "GET missing")
	if !strings.Contains(out.String(), "Key not present") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestDelete(t *testing.T) {
	s, out, fake := newTestShell(t, cache.RolePrimary)

	run(t, s, "DELETE k")
	if !strings.Contains(out.String(), "Key not present") {
		t.Errorf("unexpected absent-delete output: %q", out.String())
	}
	if fake.LogCalls() != 0 {
		t.Errorf("absent delete issued %d log calls, want 0", fake.LogCalls())
	}

	run(t, s, "INSERT k v")
	out.Reset()
	run(t, s, "DELETE k")
	if !strings.Contains(out.String(), "Deleting: (k, v)") {
		t.Errorf("unexpected delete output: %q", out.String())
	}
}

func TestReplicaRejectsWrites(t *testing.T) {
	s, out, fake := newTestShell(t, cache.RoleReplica)

	run(t, s, "INSERT k v")
	if !strings.Contains(out.String(), "invalid entry") {
		t.Errorf("replica INSERT output = %q, want invalid entry", out.String())
	}

	out.Reset()
	run(t, s, "DELETE k")
	if !strings.Contains(out.String(), "invalid entry") {
		t.Errorf("replica DELETE output = %q, want invalid entry", out.String())
	}

	if fake.LogCalls() != 0 {
		t.Errorf("replica issued %d log calls, want 0", fake.LogCalls())
	}
}

func TestCaseInsensitiveVerbs(t *testing.T) {
	s, out, _ := newTestShell(t, cache.RolePrimary)

	run(t, s, "insert k v")
	if !strings.Contains(out.String(), "Inserting new pair (k, v)") {
		t.Errorf("lowercase verb not accepted: %q", out.String())
	}
}

func TestExit(t *testing.T) {
	s, _, _ := newTestShell(t, cache.RolePrimary)

	if quit := run(t, s, "EXIT"); !quit {
		t.Error("EXIT should request shell exit")
	}
	if quit := run(t, s, "GET k"); quit {
		t.Error("GET should not request shell exit")
	}
}

func TestMalformedCommands(t *testing.T) {
	s, out, _ := newTestShell(t, cache.RolePrimary)

	for _, line := range []string{"INSERT k", "DELETE", "GET", "bogus", "LIST extra"} {
		out.Reset()
		run(t, s, line)
		if !strings.Contains(out.String(), "invalid entry") {
			t.Errorf("Execute(%q) output = %q, want invalid entry", line, out.String())
		}
	}

	if quit := run(t, s, "   "); quit {
		t.Error("blank line should be a no-op")
	}
}

// Package shell implements the interactive command surface of a cache
// node: a read-line loop dispatching INSERT, DELETE, GET, LIST, and EXIT.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ehrlich-b/logstore/internal/cache"
)

const prompt = "> "

// Shell drives a cache store from tokenized text commands. Write verbs are
// accepted only in the primary role.
type Shell struct {
	store *cache.Store
	role  cache.Role
	out   io.Writer
}

// New creates a shell over store. Output for human consumption goes to out.
func New(store *cache.Store, role cache.Role, out io.Writer) *Shell {
	return &Shell{
		store: store,
		role:  role,
		out:   out,
	}
}

// Run reads commands until EXIT, end of input, or an error
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, nil
	}

	switch verb := strings.ToUpper(words[0]); {
	case verb == "INSERT" && s.role == cache.RolePrimary && len(words) == 3:
		key, value := []byte(words[1]), []byte(words[2])
		prev, existed, err := s.store.Set(ctx, key, value)
		if err != nil {
			return false, err
		}
		if existed {
			fmt.Fprintf(s.out, "Previous value was: %s, inserting: %s\n", prev, value)
		} else {
			fmt.Fprintf(s.out, "Inserting new pair (%s, %s)\n", key, value)
		}

	case verb == "DELETE" && s.role == cache.RolePrimary && len(words) == 2:
		key := []byte(words[1])
		prev, existed, err := s.store.Delete(ctx, key)
		if err != nil {
			return false, err
		}
		if existed {
			fmt.Fprintf(s.out, "Deleting: (%s, %s)\n", key, prev)
		} else {
			fmt.Fprintln(s.out, "Key not present")
		}

	case verb == "GET" && len(words) == 2:
		value, ok := s.store.Get([]byte(words[1]))
		if ok {
			fmt.Fprintf(s.out, "Value is: %s\n", value)
		} else {
			fmt.Fprintln(s.out, "Key not present")
		}

	case verb == "LIST" && len(words) == 1:
		fmt.Fprintln(s.out, "Listing KeyValue pairs:")
		for _, p := range s.store.List() {
			fmt.Fprintf(s.out, "%s:%s\n", p.Key, p.Value)
		}

	case verb == "EXIT" && len(words) == 1:
		return true, nil

	default:
		fmt.Fprintln(s.out, "invalid entry")
	}
	return false, nil
}

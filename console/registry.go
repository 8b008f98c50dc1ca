package console

import (
	"fmt"
	"sort"
	"strings"
)

type commandFunc func(s *Session, arg string) error

// command is one built-in. The empty name is reserved for the
// repeat-last-input binding, reached by submitting the bare prefix.
type command struct {
	Name string
	Desc string
	Run  commandFunc
}

type registry struct {
	cmds map[string]command
}

func newRegistry() *registry {
	return &registry{cmds: make(map[string]command)}
}

func (r *registry) register(cmd command) error {
	name := strings.ToLower(strings.TrimSpace(cmd.Name))
	if cmd.Run == nil {
		return fmt.Errorf("console registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.cmds[name]; ok {
		return fmt.Errorf("console registry: duplicate command %q", name)
	}
	r.cmds[name] = cmd
	return nil
}

// resolve looks a command up case-insensitively.
func (r *registry) resolve(name string) (command, bool) {
	cmd, ok := r.cmds[strings.ToLower(strings.TrimSpace(name))]
	return cmd, ok
}

// names lists registered commands sorted, the unnamed binding excluded.
func (r *registry) names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	want := []string{
		"login", "logout", "me",
		"banks", "tx", "categories", "investments", "loans",
		"dashboard", "report",
	}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestResourceCommandsHaveCRUDSubcommands(t *testing.T) {
	root := NewRootCommand()

	for _, resource := range []string{"banks", "tx", "categories", "investments", "loans"} {
		for _, op := range []string{"list", "add", "update", "delete"} {
			cmd, _, err := root.Find([]string{resource, op})
			if err != nil || !strings.HasPrefix(cmd.Use, op) {
				t.Errorf("%s %s not registered", resource, op)
			}
		}
	}
}

func TestDeleteCommandsHaveYesFlag(t *testing.T) {
	root := NewRootCommand()

	for _, resource := range []string{"banks", "tx", "categories", "investments", "loans"} {
		cmd, _, err := root.Find([]string{resource, "delete"})
		if err != nil {
			t.Fatalf("%s delete not registered: %v", resource, err)
		}
		if cmd.Flags().Lookup("yes") == nil {
			t.Errorf("%s delete is missing the --yes flag", resource)
		}
	}
}

func TestConfirmerPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"closed stdin defaults to no", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetIn(strings.NewReader(tt.input))

			got := confirmer(cmd, false)("Permanently delete this bank account?")
			if got != tt.want {
				t.Errorf("confirmer(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestConfirmerYesFlagSkipsPrompt(t *testing.T) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	if !confirmer(cmd, true)("whatever") {
		t.Fatal("expected --yes confirmer to approve")
	}
	if out.Len() != 0 {
		t.Errorf("expected no prompt output, got %q", out.String())
	}
}

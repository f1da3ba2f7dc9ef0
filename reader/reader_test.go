package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sondreh/ftmplay/machine"
)

func writeProgram(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Could not write test program: %s", err)
	}
	return path
}

func Test_ReadProgram(t *testing.T) {
	path := writeProgram(t,
		"pc,read,write,move,next_pc\n"+
			"1,0,1,R,1\n"+
			"1,1,0,l,2\n"+
			"2,0,2,S,1\n"+
			"2,1,0,R,1\n")

	table, err := ReadProgram(path)
	if err != nil {
		t.Fatalf("ReadProgram failed: %s", err)
	}
	if table.Size() != 4 {
		t.Errorf("Loaded %d rules, expected 4", table.Size())
	}

	rule, err := table.Lookup(1, 1)
	if err != nil {
		t.Fatalf("Lookup failed: %s", err)
	}
	if rule.Write != 0 || rule.Move != machine.Left || rule.Next != 2 {
		t.Errorf("Rule (1,1) loaded wrong: %+v", rule)
	}
}

func Test_ReadProgramMissingFile(t *testing.T) {
	if _, err := ReadProgram("/no/such/program.csv"); err == nil {
		t.Errorf("Missing file did not fail")
	}
}

func Test_ReadProgramRejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"missing column",
			"pc,read,write,next_pc\n1,0,1,1\n"},
		{"bad move",
			"pc,read,write,move,next_pc\n1,0,1,X,1\n1,1,0,L,1\n"},
		{"bad integer",
			"pc,read,write,move,next_pc\n1,zero,1,R,1\n1,1,0,L,1\n"},
		{"write out of range",
			"pc,read,write,move,next_pc\n1,0,3,R,1\n1,1,0,L,1\n"},
		{"incomplete table",
			"pc,read,write,move,next_pc\n1,0,1,R,1\n"},
		{"duplicate rule",
			"pc,read,write,move,next_pc\n1,0,1,R,1\n1,0,0,L,1\n1,1,0,L,1\n"},
		{"empty table",
			"pc,read,write,move,next_pc\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ReadProgram(writeProgram(t, c.contents)); err == nil {
				t.Errorf("Accepted a program with %s", c.name)
			}
		})
	}
}

package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sondreh/ftmplay/machine"
)

// Program files are CSV with a header row. Each data row declares one
// transition:
//
//	pc,read,write,move,next_pc
//	1,0,1,R,1
//	1,1,0,L,2
//
// move is L, R or S (case insensitive). A file that fails any check
// is rejected as a whole; the machine never starts on half a table.
func ReadProgram(filename string) (*machine.RuleTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening program file '%s'", filename)
	}
	defer file.Close()

	rdr := csv.NewReader(file)
	rdr.TrimLeadingSpace = true

	header, err := rdr.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading header of '%s'", filename)
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"pc", "read", "write", "move", "next_pc"} {
		if _, ok := columns[required]; !ok {
			return nil, &machine.LoadError{
				Reason: fmt.Sprintf("'%s' is missing the '%s' column", filename, required),
			}
		}
	}

	table := machine.NewRuleTable()
	line := 1
	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading '%s'", filename)
		}
		line++

		pc, err := intColumn(record, columns, "pc")
		if err != nil {
			return nil, wrapLine(err, filename, line)
		}
		read, err := intColumn(record, columns, "read")
		if err != nil {
			return nil, wrapLine(err, filename, line)
		}
		write, err := intColumn(record, columns, "write")
		if err != nil {
			return nil, wrapLine(err, filename, line)
		}
		nextPC, err := intColumn(record, columns, "next_pc")
		if err != nil {
			return nil, wrapLine(err, filename, line)
		}

		move, err := parseMove(record[columns["move"]])
		if err != nil {
			return nil, wrapLine(err, filename, line)
		}

		rule := machine.Rule{
			Write: machine.Symbol(write),
			Move:  move,
			Next:  machine.State(nextPC),
		}
		if err := table.Add(machine.State(pc), machine.Symbol(read), rule); err != nil {
			return nil, wrapLine(err, filename, line)
		}
	}

	if err := table.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating '%s'", filename)
	}

	return table, nil
}

func intColumn(record []string, columns map[string]int, name string) (int, error) {
	idx := columns[name]
	if idx >= len(record) {
		return 0, &machine.LoadError{Reason: fmt.Sprintf("row too short, no '%s' field", name)}
	}
	v, err := strconv.Atoi(strings.TrimSpace(record[idx]))
	if err != nil {
		return 0, &machine.LoadError{
			Reason: fmt.Sprintf("bad '%s' value '%s'", name, record[idx]),
		}
	}
	return v, nil
}

func parseMove(field string) (machine.Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(field)) {
	case "L":
		return machine.Left, nil
	case "R":
		return machine.Right, nil
	case "S":
		return machine.Stay, nil
	}
	return machine.Stay, &machine.LoadError{
		Reason: fmt.Sprintf("bad move '%s' (want L, R or S)", field),
	}
}

func wrapLine(err error, filename string, line int) error {
	return errors.Wrapf(err, "%s line %d", filename, line)
}

// PrintRules prints a listing of the loaded table, one rule per line.
func PrintRules(table *machine.RuleTable) {
	fmt.Printf("\n;;\n;; Rule listing (%d rules, %d states)\n;;\n",
		table.Size(), len(table.States()))
	table.Each(func(state machine.State, read machine.Symbol, rule machine.Rule) {
		fmt.Printf(" (%d, %d)\t-> write=%d move=%s next=%d\n",
			state, read, rule.Write, rule.Move, rule.Next)
	})
	fmt.Println()
}

package ddl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SplitStatements reads a script and returns its statements, each ending with
// a semicolon. Blank lines and "--" comment lines are dropped. Statements may
// span several lines; semicolons inside quoted literals are not supported.
func SplitStatements(r io.Reader) ([]string, error) {
	var (
		stmts   []string
		current strings.Builder
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		for {
			i := strings.IndexByte(line, ';')
			if i < 0 {
				break
			}
			current.WriteString(line[:i+1])
			if stmt := strings.TrimSpace(current.String()); stmt != ";" {
				stmts = append(stmts, stmt)
			}
			current.Reset()
			line = line[i+1:]
		}
		if strings.TrimSpace(line) != "" {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest+";")
	}
	return stmts, nil
}

package ddl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"schema-merger/core/schema"
)

const (
	fkActions = "ON DELETE RESTRICT ON UPDATE NO ACTION"
	engine    = "ENGINE = InnoDB CHARSET=utf8"
)

// Script is an append-only list of DDL statements.
type Script struct {
	statements []string
	counter    int
}

// NewScript returns an empty script whose first generated name uses 1.
func NewScript() *Script {
	return &Script{counter: 1}
}

func (s *Script) nextID() int {
	id := s.counter
	s.counter++
	return id
}

// NextID returns the number the next generated index or constraint will use.
func (s *Script) NextID() int {
	return s.counter
}

// Statements returns the statements in emission order.
func (s *Script) Statements() []string {
	return s.statements
}

// Len returns the number of statements.
func (s *Script) Len() int {
	return len(s.statements)
}

func (s *Script) append(stmt string) {
	s.statements = append(s.statements, stmt)
}

// CreateTable appends and returns the CREATE TABLE statement for a table with
// the given fields. Key fields form one composite primary key; every table
// referenced by the fields gets one index and one foreign key clause.
func (s *Script) CreateTable(name string, fields []schema.Field) string {
	clauses := make([]string, 0, len(fields)+2)
	var keys []string
	for _, f := range fields {
		col := f.Name + " " + columnType(f)
		if f.IsKey() {
			col += " NOT NULL"
			keys = append(keys, f.Name)
		}
		clauses = append(clauses, col)
	}
	if len(keys) > 0 {
		clauses = append(clauses, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(keys, ",")))
	}

	refs := BuildFKIndex(fields).Tables()
	for _, rt := range refs {
		clauses = append(clauses, fmt.Sprintf("INDEX DIDX%d (%s)", s.nextID(), strings.Join(rt.Fields(), ",")))
	}
	for _, rt := range refs {
		clauses = append(clauses, fmt.Sprintf("CONSTRAINT DFK%d FOREIGN KEY (%s) REFERENCES %s (%s) %s",
			s.nextID(), strings.Join(rt.Fields(), ","), rt.Name, strings.Join(rt.RFields(), ","), fkActions))
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(\n%s)\n %s;", name, strings.Join(clauses, ",\n"), engine)
	s.append(stmt)
	return stmt
}

// AddColumn appends and returns the statements adding field to table: the
// column itself and, when the field references another table, its index and
// foreign key constraint.
func (s *Script) AddColumn(table string, f schema.Field) []string {
	stmts := []string{fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s;", table, f.Name, columnType(f))}
	if f.References() {
		stmts = append(stmts,
			fmt.Sprintf("ALTER TABLE %s ADD INDEX DIDX%d (%s);", table, s.nextID(), f.Name),
			fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT DFK%d FOREIGN KEY (%s) REFERENCES %s (%s) %s;",
				table, s.nextID(), f.Name, f.RTable, f.RField, fkActions),
		)
	}
	for _, stmt := range stmts {
		s.append(stmt)
	}
	return stmts
}

// columnType renders the type clause: decimal carries size and scale, text
// carries nothing, every other type carries its size.
func columnType(f schema.Field) string {
	switch f.Type {
	case "decimal":
		return fmt.Sprintf("%s (%s,%s)", f.Type, orZero(f.Size), orZero(f.DecSize))
	case "text":
		return f.Type
	default:
		return fmt.Sprintf("%s (%s)", f.Type, orZero(f.Size))
	}
}

func orZero(v string) string {
	if v == "" {
		return "0"
	}
	return v
}

// WriteTo writes every statement followed by a newline.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, stmt := range s.statements {
		n, err := io.WriteString(w, stmt+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the script text.
func (s *Script) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// WriteFile writes the script into path, replacing any existing file.
func (s *Script) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Package migrate applies the embedded schema files to Spanner or PostgreSQL.
package migrate

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
)

// File is one migration script.
type File struct {
	Name       string
	Statements []string
}

// LoadFiles reads every *.sql file under dir in name order and splits it into statements.
func LoadFiles(fsys fs.FS, dir string) ([]File, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		files = append(files, File{
			Name:       path.Base(name),
			Statements: SplitStatements(string(content)),
		})
	}
	return files, nil
}

// SplitStatements drops blank lines and "--" comment lines, then splits on semicolons.
func SplitStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createRe = regexp.MustCompile(`(?is)^\s*CREATE\s+(?:UNIQUE\s+)?(?:NULL_FILTERED\s+)?(TABLE|INDEX)\s+(?:IF\s+NOT\s+EXISTS\s+)?` + "`?" + `([A-Za-z_][A-Za-z0-9_]*)`)

// objectKey returns "TABLE name" or "INDEX name" for CREATE statements.
func objectKey(stmt string) (string, bool) {
	m := createRe.FindStringSubmatch(stmt)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2]), true
}

// PendingDDL returns the statements whose table or index is not created by any
// statement in existing. Statements that create nothing are always pending.
func PendingDDL(existing, statements []string) []string {
	have := make(map[string]struct{}, len(existing))
	for _, stmt := range existing {
		if key, ok := objectKey(stmt); ok {
			have[key] = struct{}{}
		}
	}

	var pending []string
	for _, stmt := range statements {
		if key, ok := objectKey(stmt); ok {
			if _, done := have[key]; done {
				continue
			}
		}
		pending = append(pending, stmt)
	}
	return pending
}

// DatabasePath is a parsed "projects/P/instances/I/databases/D" name.
type DatabasePath struct {
	Project  string
	Instance string
	Database string
}

// ParseDatabasePath splits a fully qualified Spanner database name.
func ParseDatabasePath(name string) (DatabasePath, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" ||
		parts[1] == "" || parts[3] == "" || parts[5] == "" {
		return DatabasePath{}, fmt.Errorf("invalid spanner database %q: want projects/P/instances/I/databases/D", name)
	}
	return DatabasePath{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (p DatabasePath) ProjectName() string {
	return "projects/" + p.Project
}

func (p DatabasePath) InstanceName() string {
	return p.ProjectName() + "/instances/" + p.Instance
}

func (p DatabasePath) String() string {
	return p.InstanceName() + "/databases/" + p.Database
}

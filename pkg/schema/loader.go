package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// LoadFiles parses and validates the schema split across paths.
func LoadFiles(paths ...string) (*Schema, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file: %w", err)
		}
		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}
	return Load(sources...)
}

// Load parses and validates the schema split across sources.
func Load(sources ...*ast.Source) (*Schema, error) {
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return New(s), nil
}

// LoadQueryFiles parses the query documents at paths as one document and
// validates it against s.
func LoadQueryFiles(s *Schema, paths ...string) (*ast.QueryDocument, error) {
	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read query file: %w", err)
		}
		b.Write(data)
		b.WriteString("\n")
	}
	return LoadQuery(s, b.String())
}

// LoadQuery parses query and validates it against s.
func LoadQuery(s *Schema, query string) (*ast.QueryDocument, error) {
	doc, errs := gqlparser.LoadQuery(s.AST(), query)
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to load query: %w", errs)
	}
	return doc, nil
}

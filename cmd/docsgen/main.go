package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/appengine-ltd/luxtree/internal/config"
	"github.com/appengine-ltd/luxtree/internal/parser"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateCommandsDoc(),
		generateConfigDoc(),
		generateOrnamentsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", f.Title, f.Name)
	}
	return b.String()
}

func generateCommandsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("Typed at the `:` prompt in either client. Unknown words are matched by prefix, then by edit distance.\n\n")
	b.WriteString("| Command | Aliases | Arguments | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, c := range parser.DefaultRegistry().Commands() {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			c.Canonical,
			escape(strings.Join(c.Aliases, ", ")),
			escape(commandArgs(c)),
			escape(c.Summary),
		)
	}
	return docFile{Name: "commands.md", Title: "Commands", Content: b.String()}
}

func commandArgs(c parser.CommandDef) string {
	switch {
	case c.NeedsNumber:
		return "number"
	case len(c.Choices) > 0:
		return strings.Join(c.Choices, " | ")
	case c.MaxArgs > 0:
		return strconv.Itoa(c.MaxArgs)
	}
	return ""
}

type configRow struct {
	Key     string
	Env     string
	Default string
}

func generateConfigDoc() docFile {
	var rows []configRow
	collectConfigRows(reflect.ValueOf(config.Default()), "", &rows)

	var b strings.Builder
	b.WriteString("# Configuration\n\n")
	b.WriteString("Read from `config.toml` in the user config directory (or `-config`), then overridden by environment variables.\n\n")
	b.WriteString("| Key | Environment | Default |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range rows {
		env := ""
		if r.Env != "" {
			env = "`" + r.Env + "`"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", r.Key, env, escape(r.Default))
	}
	return docFile{Name: "configuration.md", Title: "Configuration", Content: b.String()}
}

func collectConfigRows(v reflect.Value, prefix string, rows *[]configRow) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("toml")
		if prefix != "" {
			key = prefix + "." + key
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			collectConfigRows(fv, key, rows)
			continue
		}
		*rows = append(*rows, configRow{
			Key:     key,
			Env:     field.Tag.Get("env"),
			Default: formatValue(fv),
		})
	}
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float())
	case reflect.Slice:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, fmt.Sprint(v.Index(i).Interface()))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v.Interface())
}

func generateOrnamentsDoc() docFile {
	cfg := tree.DefaultConfig()
	var b strings.Builder
	b.WriteString("# Ornaments\n\n")
	b.WriteString("| Category | Count | Scale | Float speed | Float intensity | Spin | Chaos radius |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, cat := range tree.Categories() {
		p := tree.Profile(cat)
		fmt.Fprintf(&b, "| %s | %d | %s–%s | %s | %s | %s | %s |\n",
			cat,
			cfg.Count(cat),
			formatFloat(float64(p.ScaleMin)),
			formatFloat(float64(p.ScaleMax)),
			formatFloat(float64(p.FloatSpeed)),
			formatFloat(float64(p.FloatIntensity)),
			formatFloat(float64(p.RotSpeed)),
			formatFloat(float64(cfg.ExplosionRadius*p.ChaosScale)),
		)
	}
	fmt.Fprintf(&b, "\nFoliage: %d particles in a cone of height %s and base radius %s.\n",
		cfg.FoliageCount, formatFloat(float64(cfg.TreeHeight)), formatFloat(float64(cfg.BaseRadius)))
	return docFile{Name: "ornaments.md", Title: "Ornaments", Content: b.String()}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

package frame

import (
	"context"
	"database/sql"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
)

const sampleYAML = `
index: [method, result type]
column_levels: [quantity]
columns: [samples, calls]
rows:
  - labels: [standard, value]
    values: [1234.5, 1.2e6]
  - labels: [standard, uncertainty]
    values: [5, null]
  - labels: [dynamic, value]
    values: [.nan, 3]
`

func TestReadYAML(t *testing.T) {
	tbl, err := ReadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("ReadYAML() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Rows.Names, []string{"method", "result type"}) {
		t.Errorf("row levels = %v", tbl.Rows.Names)
	}
	if !reflect.DeepEqual(tbl.Columns.Labels, [][]string{{"samples"}, {"calls"}}) {
		t.Errorf("columns = %v", tbl.Columns.Labels)
	}
	if v, ok := tbl.At(0, 1); !ok || v != 1.2e6 {
		t.Errorf("At(0,1) = %v, %v", v, ok)
	}
	if _, ok := tbl.At(1, 1); ok {
		t.Error("null should be a missing cell")
	}
	if v, ok := tbl.At(2, 0); !ok || !math.IsNaN(v) {
		t.Errorf(".nan should be a present NaN, got %v, %v", v, ok)
	}
}

func TestReadYAML_MultiLevelColumns(t *testing.T) {
	doc := `
index: [method]
column_levels: [quantity, result type]
columns:
  - [samples, value]
  - [samples, uncertainty]
rows:
  - labels: standard
    values: [10, 1]
`
	tbl, err := ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadYAML() error = %v", err)
	}
	if got := tbl.Columns.Level("result type"); got != 1 {
		t.Errorf("column level = %d", got)
	}
	if !reflect.DeepEqual(tbl.Rows.Labels, [][]string{{"standard"}}) {
		t.Errorf("scalar labels = %v", tbl.Rows.Labels)
	}
}

func TestReadYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "index: [",
		"short labels":    "index: [a, b]\ncolumns: [x]\nrows:\n  - labels: [only]\n    values: [1]\n",
		"wrong values":    "index: [a]\ncolumns: [x, y]\nrows:\n  - labels: [r]\n    values: [1]\n",
		"column mismatch": "index: [a]\ncolumn_levels: [p, q]\ncolumns: [x]\nrows: []\n",
		"nested labels":   "index: [a]\ncolumns: [x]\nrows:\n  - labels: [[r]]\n    values: [1]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(doc))
			if err == nil {
				t.Fatal("ReadYAML() should fail")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("code = %v, want INVALID_FORMAT", mdwerror.GetCode(err))
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	doc := `{
  "index": ["method", "result type"],
  "columns": ["samples", ["calls"]],
  "rows": [
    {"labels": ["standard", "value"], "values": [1.5, null]},
    {"labels": ["standard", "uncertainty"], "values": [0.1, 2]}
  ]
}`
	tbl, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if !reflect.DeepEqual(tbl.Columns.Names, []string{""}) {
		t.Errorf("default column level = %v", tbl.Columns.Names)
	}
	if _, ok := tbl.At(0, 1); ok {
		t.Error("null should be missing")
	}
	if v, _ := tbl.At(1, 1); v != 2 {
		t.Errorf("At(1,1) = %v", v)
	}

	if _, err := ReadJSON(strings.NewReader(`{"index": [], "extra": 1}`)); err == nil {
		t.Error("unknown fields should be rejected")
	}
}

func TestReadCSV(t *testing.T) {
	data := "method,result type,samples,calls\n" +
		"standard,value,1234.5,1.2e6\n" +
		"standard,uncertainty,5,\n" +
		"dynamic,value, nan ,3\n"

	tbl, err := ReadCSV(strings.NewReader(data), 2)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if r, c := tbl.Shape(); r != 3 || c != 2 {
		t.Fatalf("shape = %dx%d", r, c)
	}
	if !reflect.DeepEqual(tbl.Rows.Names, []string{"method", "result type"}) {
		t.Errorf("levels = %v", tbl.Rows.Names)
	}
	if _, ok := tbl.At(1, 1); ok {
		t.Error("empty cell should be missing")
	}
	if v, ok := tbl.At(2, 0); !ok || !math.IsNaN(v) {
		t.Errorf("nan cell = %v, %v", v, ok)
	}
}

func TestReadCSV_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		cols int
		code mdwerror.Code
	}{
		{"empty", "", 1, mdwerror.CodeInvalidFormat},
		{"index too wide", "a,b\nx,1\n", 2, mdwerror.CodeInvalidInput},
		{"not a number", "a,b\nx,abc\n", 1, mdwerror.CodeInvalidFormat},
		{"ragged", "a,b\nx,1,2\n", 1, mdwerror.CodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data), tt.cols)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func createSQLiteFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE results (method TEXT, kind TEXT, samples REAL, calls INTEGER)`,
		`INSERT INTO results VALUES ('standard', 'value', 1234.5, 1200000)`,
		`INSERT INTO results VALUES ('standard', 'uncertainty', 5, NULL)`,
		`INSERT INTO results VALUES ('dynamic', 'value', 0.0000012345, 7)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return path
}

func TestSQLiteSource_Query(t *testing.T) {
	src, err := OpenSQLite(createSQLiteFixture(t))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer src.Close()

	tbl, err := src.Query(context.Background(),
		`SELECT method, kind AS "result type", samples, calls FROM results ORDER BY rowid`)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Rows.Names, []string{"method", "result type"}) {
		t.Errorf("row levels = %v", tbl.Rows.Names)
	}
	if !reflect.DeepEqual(tbl.Columns.Labels, [][]string{{"samples"}, {"calls"}}) {
		t.Errorf("columns = %v", tbl.Columns.Labels)
	}
	if !reflect.DeepEqual(tbl.Rows.Labels[2], []string{"dynamic", "value"}) {
		t.Errorf("row order changed: %v", tbl.Rows.Labels)
	}
	if v, ok := tbl.At(0, 1); !ok || v != 1200000 {
		t.Errorf("integer cell = %v, %v", v, ok)
	}
	if _, ok := tbl.At(1, 1); ok {
		t.Error("NULL should be missing")
	}
}

func TestSQLiteSource_MixedColumn(t *testing.T) {
	src, err := OpenSQLite(createSQLiteFixture(t))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer src.Close()

	_, err = src.Query(context.Background(),
		`SELECT method, samples FROM results UNION ALL SELECT 'x', 'text'`)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestOpenSQLite_Missing(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "nope.db"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "t.yaml")
	csvPath := filepath.Join(dir, "t.csv")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(csvPath, []byte("m,result type,x\na,value,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dbPath := createSQLiteFixture(t)

	ctx := context.Background()
	if _, err := Load(ctx, yamlPath, LoadOptions{}); err != nil {
		t.Errorf("Load(yaml) error = %v", err)
	}
	if tbl, err := Load(ctx, csvPath, LoadOptions{}); err != nil || tbl.Rows.Levels() != 2 {
		t.Errorf("Load(csv) = %v, %v", tbl, err)
	}
	if _, err := Load(ctx, dbPath, LoadOptions{Query: "SELECT method, samples FROM results"}); err != nil {
		t.Errorf("Load(db) error = %v", err)
	}

	tests := []struct {
		name string
		path string
		opts LoadOptions
		code mdwerror.Code
	}{
		{"db without query", dbPath, LoadOptions{}, mdwerror.CodeInvalidInput},
		{"unknown extension", filepath.Join(dir, "t.xlsx"), LoadOptions{}, mdwerror.CodeNotFound},
		{"missing file", filepath.Join(dir, "none.yaml"), LoadOptions{}, mdwerror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(ctx, tt.path, tt.opts)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}

	txt := filepath.Join(dir, "t.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ctx, txt, LoadOptions{}); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Load(txt) error = %v, want INVALID_FORMAT", err)
	}
}

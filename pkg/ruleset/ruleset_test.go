package ruleset

import (
	"testing"

	"github.com/pastrylab/equilibra/pkg/errors"
)

func testCategory(name string) *Category {
	return &Category{
		Name: name,
		Ranges: map[Metric]Range{
			MetricSugars: {Min: 18, Max: 22},
		},
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(testCategory("helado de crema"), testCategory("helado de crema"))
	if err == nil {
		t.Fatal("New() expected error for duplicate category")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidCategoryEntry) {
		t.Errorf("New() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidCategoryEntry)
	}
}

func TestNewRejectsNilCategory(t *testing.T) {
	_, err := New(testCategory("sorbete"), nil)
	if err == nil {
		t.Fatal("New() expected error for nil category")
	}
}

func TestNewRejectsInvalidRange(t *testing.T) {
	c := &Category{
		Name: "ganache rota",
		Ranges: map[Metric]Range{
			MetricFat: {Min: 35, Max: 28},
		},
	}
	_, err := New(c)
	if err == nil {
		t.Fatal("New() expected error for min > max")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidCategoryEntry) {
		t.Errorf("New() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidCategoryEntry)
	}
}

func TestNewRejectsUnknownMetricKey(t *testing.T) {
	c := &Category{
		Name: "ganache rota",
		Ranges: map[Metric]Range{
			Metric("starch"): {Min: 1, Max: 2},
		},
	}
	if _, err := New(c); err == nil {
		t.Fatal("New() expected error for unknown metric key")
	}
}

func TestNewRejectsAliasMetricKey(t *testing.T) {
	// Typed categories must carry canonical metric keys; aliases are
	// only normalized at the document layer.
	c := &Category{
		Name: "ganache rota",
		Ranges: map[Metric]Range{
			Metric("sugar"): {Min: 18, Max: 22},
		},
	}
	if _, err := New(c); err == nil {
		t.Fatal("New() expected error for non-canonical metric key")
	}
}

func TestLookup(t *testing.T) {
	rs, err := New(testCategory("helado de crema"), testCategory("sorbete de fruta"))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	c, err := rs.Lookup("helado de crema")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if c.Name != "helado de crema" {
		t.Errorf("Lookup() name = %q, want %q", c.Name, "helado de crema")
	}

	_, err = rs.Lookup("baklava")
	if err == nil {
		t.Fatal("Lookup() expected error for unknown category")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("Lookup() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestListAllUsesSpanishCollation(t *testing.T) {
	// Byte order would put "ñoqui dulce" after "oblea"; Spanish
	// collation sorts ñ between n and o.
	rs, err := New(
		testCategory("oblea rellena"),
		testCategory("ñoqui dulce"),
		testCategory("natilla"),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	want := []string{"natilla", "ñoqui dulce", "oblea rellena"}
	got := rs.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	all := rs.ListAll()
	for i := range want {
		if all[i].Name != want[i] {
			t.Errorf("ListAll()[%d].Name = %q, want %q", i, all[i].Name, want[i])
		}
	}
}

func TestLen(t *testing.T) {
	rs, err := New(testCategory("helado de crema"), testCategory("sorbete de fruta"))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if rs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rs.Len())
	}
}

func TestConstrainedMetricsOrder(t *testing.T) {
	c := &Category{
		Name: "helado de crema",
		Ranges: map[Metric]Range{
			MetricPAC:    {Min: 0.24, Max: 0.28},
			MetricWater:  {Min: 58, Max: 66},
			MetricKcal:   {Min: 150, Max: 250},
			MetricSugars: {Min: 18, Max: 22},
		},
	}

	want := []Metric{MetricWater, MetricSugars, MetricPAC, MetricKcal}
	got := c.ConstrainedMetrics()
	if len(got) != len(want) {
		t.Fatalf("ConstrainedMetrics() returned %d metrics, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ConstrainedMetrics()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCategoryRange(t *testing.T) {
	c := testCategory("sorbete de fruta")

	r, ok := c.Range(MetricSugars)
	if !ok {
		t.Fatal("Range() expected sugars to be constrained")
	}
	if r.Min != 18 || r.Max != 22 {
		t.Errorf("Range() = %v, want [18, 22]", r)
	}

	if _, ok := c.Range(MetricFat); ok {
		t.Error("Range() expected fat to be unconstrained")
	}
	if c.Constrains(MetricFat) {
		t.Error("Constrains(fat) = true, want false")
	}
}

package option

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type mapSource map[string]string

func (m mapSource) GetByPath(p string) (string, bool) {
	v, ok := m[p]
	return v, ok
}

func (m mapSource) FileName() string { return "config.sk" }

func TestRegistryLoad(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	reg := NewRegistry(RegistryLogger(slog.New(slog.NewTextHandler(buf, nil))))

	lang := New("language", "english", String)
	var changes []int
	limit := New("limit", 10, Int).OnChange(func(v int) { changes = append(changes, v) })
	verbose := New("verbose", false, Bool).Optional(true)
	db := reg.Section("databases")
	timeout := New("timeout", time.Second, Duration)
	mode := New("mode", "auto", Enum("auto", "Manual"))

	reg.MustRegister(lang, limit, verbose)
	if err := db.Register(timeout); err != nil {
		t.Fatal(err)
	}
	if err := db.Section("main").Register(mode); err != nil {
		t.Fatal(err)
	}
	want := []string{"language", "limit", "verbose", "databases.timeout", "databases.main.mode"}
	if diff := cmp.Diff(want, reg.Paths()); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}

	src := mapSource{
		"language":            "german",
		"limit":               "20",
		"databases.timeout":   "5s",
		"databases.main.mode": "manual",
	}
	if err := reg.Load(src); err != nil {
		t.Fatal(err)
	}
	if lang.Value() != "german" || limit.Value() != 20 || verbose.Value() ||
		timeout.Value() != 5*time.Second || mode.Value() != "Manual" {
		t.Errorf("values: %q %d %v %v %q", lang.Value(), limit.Value(), verbose.Value(), timeout.Value(), mode.Value())
	}
	if raw, ok := limit.Raw(); !ok || raw != "20" {
		t.Errorf("raw: %q %v", raw, ok)
	}

	// unchanged text does not reassign
	if err := reg.Load(src); err != nil {
		t.Fatal(err)
	}
	src["limit"] = "many"
	delete(src, "language")
	err := reg.Load(src)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected a parse error, got %v", err)
	}
	if limit.Value() != 10 || lang.Value() != "english" {
		t.Errorf("failed and missing options must take their defaults: %d %q", limit.Value(), lang.Value())
	}
	if diff := cmp.Diff([]int{20, 10}, changes); diff != "" {
		t.Errorf("change callbacks (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "Required entry 'language' is missing in config.sk") {
		t.Errorf("log: %s", buf)
	}
	if strings.Contains(buf.String(), "verbose") {
		t.Errorf("optional entries must not be reported: %s", buf)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(New("a.b", "", String))
	err := reg.Section("a").Register(New("b", 0, Int))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("got %v", err)
	}
	if reg.Get("a.b") == nil || reg.Get("a") != nil {
		t.Errorf("lookup by path")
	}
}

func TestParsers(t *testing.T) {
	for _, s := range []string{"true", "Yes", "ON"} {
		if v, err := Bool(s); err != nil || !v {
			t.Errorf("Bool(%q) = %v, %v", s, v, err)
		}
	}
	for _, s := range []string{"false", "no", "Off"} {
		if v, err := Bool(s); err != nil || v {
			t.Errorf("Bool(%q) = %v, %v", s, v, err)
		}
	}
	if _, err := Bool("maybe"); err == nil {
		t.Errorf("Bool(maybe) must fail")
	}
	if _, err := Enum("a", "b")("c"); err == nil {
		t.Errorf("enum outside its values must fail")
	}
	if v, err := Int(" 42 "); err != nil || v != 42 {
		t.Errorf("Int: %d %v", v, err)
	}
}

func TestLoadRepeatsParseError(t *testing.T) {
	reg := NewRegistry(RegistryLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	n := New("n", 1, Int)
	reg.MustRegister(n)
	src := mapSource{"n": "abc"}
	for i := range 2 {
		if err := reg.Load(src); !errors.Is(err, ErrParse) {
			t.Errorf("load %d: expected a parse error, got %v", i, err)
		}
		if n.Value() != 1 {
			t.Errorf("load %d: value %d", i, n.Value())
		}
	}
	src["n"] = "5"
	if err := reg.Load(src); err != nil || n.Value() != 5 {
		t.Errorf("fixed value: %d %v", n.Value(), err)
	}
	if err := reg.Load(src); err != nil {
		t.Errorf("reload: %v", err)
	}
}

func TestLoadCallbackRegisters(t *testing.T) {
	reg := NewRegistry()
	late := New("late", "", String).Optional(true)
	first := New("first", "", String).OnChange(func(string) {
		if reg.Get("late") == nil {
			reg.MustRegister(late)
		}
	})
	reg.MustRegister(first)
	done := make(chan error, 1)
	go func() { done <- reg.Load(mapSource{"first": "x"}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("load blocked on a change callback")
	}
	if reg.Get("late") == nil {
		t.Errorf("callback registration lost")
	}
}

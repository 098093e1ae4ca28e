package storage

import (
	"path/filepath"
	"testing"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSetGetRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("Screen>Brightness", "80"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get("Screen>Brightness")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || got != "80" {
		t.Errorf("Get = (%q, %v), want (80, true)", got, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get on missing key: ok = true, want false")
	}
}

func TestSetOverwrites(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatal(err)
	}
	got, _, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got != "two" {
		t.Errorf("Get = %q, want two", got)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, ok, err := s2.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "v" {
		t.Errorf("after reopen Get = (%q, %v), want (v, true)", got, ok)
	}
}

func TestAllAndDelete(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("b", "2"); err != nil {
		t.Fatal(err)
	}

	all, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["a"] != "1" || all["b"] != "2" {
		t.Errorf("All = %v", all)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("a"); err != nil {
		t.Errorf("double Delete: %v, want nil", err)
	}
	if _, ok, _ := s.Get("a"); ok {
		t.Error("deleted key still present")
	}
}

func TestKeyUsesBreadcrumbAndRawKey(t *testing.T) {
	setting := model.NewSetting("Brightness", model.TypeInt)
	group := model.NewGroup("Appearance", setting)
	cat := model.NewCategory("Screen", model.WithGroups(group))
	model.StampBreadcrumbs([]*model.Category{cat})

	want := "Screen" + model.BreadcrumbDelimiter + "Brightness"
	if got := Key(group, setting); got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}

	// Translation must not change the storage key.
	setting.Translate(translationStub{})
	if got := Key(group, setting); got != want {
		t.Errorf("Key after translate = %q, want %q", got, want)
	}
}

type translationStub struct{}

func (translationStub) Translate(key string) string { return "X" + key }

package search

import (
	"testing"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

func fixture() (cats []*model.Category, brightness, proxy *model.Setting, appearance *model.Group) {
	brightness = model.NewSetting("Brightness", model.TypeInt)
	appearance = model.NewGroup("Appearance", brightness)
	screen := model.NewCategory("Screen", model.WithGroups(appearance))

	proxy = model.NewSetting("Proxy host", model.TypeText)
	network := model.NewCategory("Network", model.WithSettings(proxy))

	cats = []*model.Category{screen, network}
	return cats, brightness, proxy, appearance
}

func TestApplyMarksMatches(t *testing.T) {
	cats, brightness, proxy, appearance := fixture()

	r := Apply("bright", cats)

	if !brightness.IsMarked() {
		t.Error("Brightness setting not marked")
	}
	if !appearance.IsMarked() {
		t.Error("containing group not marked")
	}
	if proxy.IsMarked() {
		t.Error("unrelated setting marked")
	}
	if !r.Matches(cats[0]) {
		t.Error("Screen category should match")
	}
	if r.Matches(cats[1]) {
		t.Error("Network category should not match")
	}
}

func TestApplyCategoryDescriptionMatch(t *testing.T) {
	cats, brightness, _, _ := fixture()

	r := Apply("network", cats)

	if !r.Matches(cats[1]) {
		t.Error("Network should match by its own description")
	}
	if brightness.IsMarked() {
		t.Error("setting in non-matching category marked")
	}
}

func TestApplyEmptyQueryClearsMarks(t *testing.T) {
	cats, brightness, proxy, appearance := fixture()

	Apply("bright", cats)
	r := Apply("   ", cats)

	if brightness.IsMarked() || proxy.IsMarked() || appearance.IsMarked() {
		t.Error("marks not cleared by empty query")
	}
	for _, c := range cats {
		if !r.Matches(c) {
			t.Errorf("empty query must show %s", c.Description())
		}
	}
}

func TestApplyNewQueryClearsStaleMarks(t *testing.T) {
	cats, brightness, proxy, _ := fixture()

	Apply("bright", cats)
	Apply("proxy", cats)

	if brightness.IsMarked() {
		t.Error("stale mark from previous query survived")
	}
	if !proxy.IsMarked() {
		t.Error("Proxy host not marked by new query")
	}
}

func TestApplyIdempotent(t *testing.T) {
	cats, brightness, _, appearance := fixture()

	first := Apply("bright", cats)
	second := Apply("bright", cats)

	if first.MatchCount() != second.MatchCount() {
		t.Errorf("match count changed: %d then %d", first.MatchCount(), second.MatchCount())
	}
	if !brightness.IsMarked() || !appearance.IsMarked() {
		t.Error("marks lost on repeated identical search")
	}
}

func TestApplyNoMatches(t *testing.T) {
	cats, _, _, _ := fixture()

	r := Apply("zzzzzz", cats)

	if r.MatchCount() != 0 {
		t.Errorf("MatchCount = %d, want 0", r.MatchCount())
	}
	for _, c := range cats {
		if r.Matches(c) {
			t.Errorf("%s matched impossible query", c.Description())
		}
	}
}

func TestPredicateDrivesTreeFiltering(t *testing.T) {
	cats, _, _, _ := fixture()

	r := Apply("bright", cats)
	p := r.Predicate()

	if !p(cats[0]) || p(cats[1]) {
		t.Error("predicate disagrees with Matches")
	}
}

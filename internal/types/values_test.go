package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xenocrat/HTTPHeader/internal/types"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := make(types.Values).Append("Q", "0.5").Append("rel", "next").Append("REL", "prev")

	if got, ok := vals.First("q"); !ok || got != "0.5" {
		t.Errorf("vals.First(\"q\") = (%q, %v), want (\"0.5\", true)", got, ok)
	}
	if got, ok := vals.Last("Rel"); !ok || got != "prev" {
		t.Errorf("vals.Last(\"Rel\") = (%q, %v), want (\"prev\", true)", got, ok)
	}
	if diff := cmp.Diff(vals.Get("rel"), []string{"next", "prev"}); diff != "" {
		t.Errorf("vals.Get(\"rel\") diff (-got +want):\n%v", diff)
	}
	if _, ok := vals.First("missing"); ok {
		t.Error("vals.First(\"missing\") ok = true, want false")
	}

	clone := vals.Clone()
	clone.Set("q", "1").Del("rel")
	if !vals.Has("rel") {
		t.Error("vals.Has(\"rel\") = false after modifying clone, want true")
	}
	if got, _ := vals.First("q"); got != "0.5" {
		t.Errorf("vals.First(\"q\") = %q after modifying clone, want \"0.5\"", got)
	}
}

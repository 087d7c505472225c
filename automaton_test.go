package ahocorasick

import (
	"sort"
	"strings"
	"testing"
)

func patternTexts(m Match) []string {
	out := make([]string, 0, len(m.Patterns))
	for _, p := range m.Patterns {
		out = append(out, string(p.Text))
	}
	sort.Strings(out)
	return out
}

func ushersAutomaton(t *testing.T) *Automaton {
	t.Helper()
	a := New()
	for i, s := range []string{"he", "she", "his", "hers"} {
		if err := a.Add(NewPattern([]byte(s), int64(i)), false); err != nil {
			t.Fatalf("Add(%q): %v", s, err)
		}
	}
	a.Finalize()
	return a
}

func TestAddRejectsZeroLength(t *testing.T) {
	a := New()
	if err := a.Add(NewPattern(nil, 1), false); err != ErrZeroPattern {
		t.Fatalf("got %v, want ErrZeroPattern", err)
	}
}

func TestAddRejectsTooLong(t *testing.T) {
	a := New(WithMaxPatternLength(3))
	if err := a.Add(NewPattern([]byte("abcd"), 1), false); err != ErrLongPattern {
		t.Fatalf("got %v, want ErrLongPattern", err)
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	a := New()
	if err := a.Add(NewPattern([]byte("abc"), 1), false); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := a.Add(NewPattern([]byte("abc"), 2), false); err != ErrDuplicatePattern {
		t.Fatalf("got %v, want ErrDuplicatePattern", err)
	}
}

func TestAddRejectsAfterFinalize(t *testing.T) {
	a := New()
	a.Finalize()
	if err := a.Add(NewPattern([]byte("abc"), 1), false); err != ErrAutomataClosed {
		t.Fatalf("got %v, want ErrAutomataClosed", err)
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	a := ushersAutomaton(t)
	n := a.NumberOfNodes()
	a.Finalize()
	if a.NumberOfNodes() != n {
		t.Fatalf("second Finalize changed node count: %d -> %d", n, a.NumberOfNodes())
	}
}

func TestSearchUshers(t *testing.T) {
	a := ushersAutomaton(t)

	var got []Match
	status, err := a.Search([]byte("ushers"), false, func(m Match) bool {
		got = append(got, m)
		return true
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if status != SearchComplete {
		t.Fatalf("status = %v, want SearchComplete", status)
	}

	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Position != 4 || got[1].Position != 6 {
		t.Fatalf("positions = %d, %d; want 4, 6", got[0].Position, got[1].Position)
	}
	if texts := patternTexts(got[0]); len(texts) != 2 || texts[0] != "he" || texts[1] != "she" {
		t.Fatalf("first match patterns = %v, want [he she]", texts)
	}
	if texts := patternTexts(got[1]); len(texts) != 1 || texts[0] != "hers" {
		t.Fatalf("second match patterns = %v, want [hers]", texts)
	}
}

func TestSearchOverlappingPatterns(t *testing.T) {
	a := New()
	for i, s := range []string{"ab", "bc", "cab", "abccab"} {
		if err := a.Add(NewPattern([]byte(s), int64(i)), false); err != nil {
			t.Fatalf("Add(%q): %v", s, err)
		}
	}
	a.Finalize()

	got := map[int][]string{}
	_, err := a.Search([]byte("abccab"), false, func(m Match) bool {
		got[m.Position] = patternTexts(m)
		return true
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if texts := got[2]; len(texts) != 1 || texts[0] != "ab" {
		t.Fatalf("match at 2 = %v, want [ab]", texts)
	}
	if texts := got[3]; len(texts) != 1 || texts[0] != "bc" {
		t.Fatalf("match at 3 = %v, want [bc]", texts)
	}
	texts := got[6]
	if len(texts) != 3 || texts[0] != "ab" || texts[1] != "abccab" || texts[2] != "cab" {
		t.Fatalf("match at 6 = %v, want [ab abccab cab]", texts)
	}
}

func TestSearchTableDriven(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		input     string
		wantCount int
		wantLast  int
	}{
		{
			name:      "two patterns",
			patterns:  []string{"apple", "cherry"},
			input:     "apple banana cherry",
			wantCount: 2,
			wantLast:  19,
		},
		{
			name:      "all match",
			patterns:  []string{"a", "b", "c"},
			input:     "abc",
			wantCount: 3,
			wantLast:  3,
		},
		{
			name:      "no match",
			patterns:  []string{"xyz", "qqq"},
			input:     "hello world",
			wantCount: 0,
		},
		{
			name:      "multiple patterns ending at the same position",
			patterns:  []string{"he", "she"},
			input:     "she",
			wantCount: 1,
			wantLast:  3,
		},
		{
			name:      "overlapping patterns at different positions",
			patterns:  []string{"ab", "bc"},
			input:     "abc",
			wantCount: 2,
			wantLast:  3,
		},
		{
			name:      "empty input",
			patterns:  []string{"a", "b"},
			input:     "",
			wantCount: 0,
		},
		{
			name:      "pattern is substring of another",
			patterns:  []string{"he", "hello"},
			input:     "hello world",
			wantCount: 2,
			wantLast:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			for i, p := range tt.patterns {
				if err := a.Add(NewPattern([]byte(p), int64(i)), false); err != nil {
					t.Fatalf("Add(%q): %v", p, err)
				}
			}
			a.Finalize()

			var matches []Match
			_, err := a.Search([]byte(tt.input), false, func(m Match) bool {
				matches = append(matches, m)
				return true
			})
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(matches) != tt.wantCount {
				t.Fatalf("got %d matches, want %d: %+v", len(matches), tt.wantCount, matches)
			}
			if tt.wantCount > 0 && matches[len(matches)-1].Position != tt.wantLast {
				t.Fatalf("last match position = %d, want %d", matches[len(matches)-1].Position, tt.wantLast)
			}
		})
	}
}

func TestSearchNotFinalized(t *testing.T) {
	a := New()
	if _, err := a.Search([]byte("x"), false, nil); err != ErrNotFinalized {
		t.Fatalf("got %v, want ErrNotFinalized", err)
	}
}

func TestSearchStopDoesNotPersistCursor(t *testing.T) {
	a := ushersAutomaton(t)

	calls := 0
	status, _ := a.Search([]byte("ushers"), false, func(m Match) bool {
		calls++
		return false // stop at the very first match
	})
	if status != SearchStopped {
		t.Fatalf("status = %v, want SearchStopped", status)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// Resuming with keep=true rescans from the start of this chunk,
	// since the cursor was never advanced past the stopping match.
	var replay []Match
	a.Search([]byte("ushers"), true, func(m Match) bool {
		replay = append(replay, m)
		return true
	})
	if len(replay) != 2 || replay[0].Position != 4 {
		t.Fatalf("replay = %+v, want the same two matches as a fresh search", replay)
	}
}

func TestSearchChunkedAcrossBoundaries(t *testing.T) {
	a := ushersAutomaton(t)

	chunks := []string{"us", "he", "rs"}
	var got []Match
	for i, c := range chunks {
		_, err := a.Search([]byte(c), i > 0, func(m Match) bool {
			got = append(got, m)
			return true
		})
		if err != nil {
			t.Fatalf("Search(%q): %v", c, err)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Position != 4 || got[1].Position != 6 {
		t.Fatalf("positions = %d, %d; want 4, 6", got[0].Position, got[1].Position)
	}
}

func TestStringIncludesNodesAndEdges(t *testing.T) {
	a := ushersAutomaton(t)
	s := a.String()
	if s == "" {
		t.Fatal("String() returned empty output")
	}
	if !strings.Contains(s, "NODE(0)") {
		t.Fatalf("String() has no root node line:\n%s", s)
	}
	if !strings.Contains(s, "--('h')-->") {
		t.Fatalf("String() has no edge for 'h':\n%s", s)
	}
}

func TestReleaseClearsState(t *testing.T) {
	a := ushersAutomaton(t)
	a.Release()
	if a.NumberOfNodes() != 0 || a.NumberOfPatterns() != 0 {
		t.Fatalf("Release did not clear registries: nodes=%d patterns=%d", a.NumberOfNodes(), a.NumberOfPatterns())
	}
}

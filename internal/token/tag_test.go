package token

import "testing"

func TestNameKnownTag(t *testing.T) {
	if got := Name(IDENTIFIER); got != "IDENTIFIER" {
		t.Fatalf("Name(IDENTIFIER) = %q, want IDENTIFIER", got)
	}
}

func TestNameUnknownTag(t *testing.T) {
	got := Name(Tag(999999))
	if got == "" {
		t.Fatalf("Name of an unknown tag must not be empty")
	}
}

func TestAllReservedIncludesKeywordsAndAliases(t *testing.T) {
	all := AllReserved()
	for _, w := range []string{"if", "for", "class", "and", "or", "yield", "let"} {
		if !all[w] {
			t.Errorf("AllReserved() missing %q", w)
		}
	}
	if all["notAKeyword"] {
		t.Errorf("AllReserved() should not contain plain identifiers")
	}
}

func TestStrictProscribedIsSubsetOfReserved(t *testing.T) {
	for w := range StrictProscribed {
		if !ReservedWords[w] {
			t.Errorf("StrictProscribed word %q missing from ReservedWords", w)
		}
	}
}

func TestIndexableExtendsCallable(t *testing.T) {
	for tg := range Callable {
		if !Indexable[tg] {
			t.Errorf("Indexable should extend Callable, missing %s", Name(tg))
		}
	}
}

package participant

import (
	"errors"
	"testing"
)

func TestParticipant_FullyQualifiedIdentifier(t *testing.T) {
	p := New("org.doge", "Doge", "DOGE_1")

	if got := p.FullyQualifiedType(); got != "org.doge.Doge" {
		t.Fatalf("expected fully-qualified type %q, got %q", "org.doge.Doge", got)
	}
	if got := p.FullyQualifiedIdentifier(); got != "org.doge.Doge#DOGE_1" {
		t.Fatalf("expected fully-qualified identifier %q, got %q", "org.doge.Doge#DOGE_1", got)
	}

	noNS := New("", "Doge", "DOGE_2")
	if got := noNS.FullyQualifiedIdentifier(); got != "Doge#DOGE_2" {
		t.Fatalf("expected %q, got %q", "Doge#DOGE_2", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Identifier
		wantErr bool
	}{
		{name: "namespaced", in: "org.doge.Doge#DOGE_1", want: Identifier{Namespace: "org.doge", Type: "Doge", ID: "DOGE_1"}},
		{name: "no namespace", in: "Doge#DOGE_1", want: Identifier{Type: "Doge", ID: "DOGE_1"}},
		{name: "hash in id", in: "org.doge.Doge#a#b", want: Identifier{Namespace: "org.doge", Type: "Doge", ID: "a#b"}},
		{name: "missing separator", in: "org.doge.Doge", wantErr: true},
		{name: "empty id", in: "org.doge.Doge#", wantErr: true},
		{name: "empty type", in: "#DOGE_1", wantErr: true},
		{name: "trailing dot", in: "org.doge.#DOGE_1", wantErr: true},
		{name: "leading dot", in: ".Doge#DOGE_1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentifier) {
					t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestRefImplementations(t *testing.T) {
	refs := []Ref{
		New("org.doge", "Doge", "DOGE_1"),
		FQI("org.doge.Doge#DOGE_1"),
	}
	for _, ref := range refs {
		if got := ref.FullyQualifiedIdentifier(); got != "org.doge.Doge#DOGE_1" {
			t.Fatalf("%T: expected %q, got %q", ref, "org.doge.Doge#DOGE_1", got)
		}
	}
}

func TestParseFullyQualifiedType(t *testing.T) {
	ns, typ, err := ParseFullyQualifiedType("org.doge.Doge")
	if err != nil {
		t.Fatalf("ParseFullyQualifiedType() failed: %v", err)
	}
	if ns != "org.doge" || typ != "Doge" {
		t.Fatalf("expected (org.doge, Doge), got (%s, %s)", ns, typ)
	}
}

func TestParticipant_NilReceiver(t *testing.T) {
	var p *Participant

	if got := p.FullyQualifiedType(); got != "" {
		t.Fatalf("expected empty type, got %q", got)
	}
	if got := p.FullyQualifiedIdentifier(); got != "" {
		t.Fatalf("expected empty identifier, got %q", got)
	}

	var ref Ref = p
	if _, err := Parse(ref.FullyQualifiedIdentifier()); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

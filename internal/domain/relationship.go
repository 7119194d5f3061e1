// Relationship enumeration shared by the contact store, the greeting
// catalog, and the HTTP layer. Keeping a single closed type here eliminates
// the silent no-match bugs that untyped, casing-sensitive strings cause.
package domain

import "strings"

// Relationship is the closed set of contact relationship categories. The
// canonical form is upper case with hyphens, matching the mobile picker
// values the data originated from.
type Relationship string

const (
	RelSon           Relationship = "SON"
	RelDaughter      Relationship = "DAUGHTER"
	RelSister        Relationship = "SISTER"
	RelBrother       Relationship = "BROTHER"
	RelFriend        Relationship = "FRIEND"
	RelNeighbor      Relationship = "NEIGHBOR"
	RelBestFriend    Relationship = "BESTFRIEND"
	RelBoyfriend     Relationship = "BOYFRIEND"
	RelGirlfriend    Relationship = "GIRLFRIEND"
	RelHusband       Relationship = "HUSBAND"
	RelFather        Relationship = "FATHER"
	RelMother        Relationship = "MOTHER"
	RelAuntie        Relationship = "AUNTIE"
	RelUncle         Relationship = "UNCLE"
	RelCousin        Relationship = "COUSIN"
	RelNiece         Relationship = "NIECE"
	RelNephew        Relationship = "NEPHEW"
	RelGrandSon      Relationship = "GRAND-SON"
	RelGrandDaughter Relationship = "GRAND-DAUGHTER"
	RelGrandFather   Relationship = "GRAND-FATHER"
	RelGrandMother   Relationship = "GRAND-MOTHER"
	RelGodFather     Relationship = "GOD-FATHER"
	RelGodMother     Relationship = "GOD-MOTHER"
)

// Relationships lists every valid value in picker order.
var Relationships = []Relationship{
	RelSon, RelDaughter, RelSister, RelBrother, RelFriend, RelNeighbor,
	RelBestFriend, RelBoyfriend, RelGirlfriend, RelHusband, RelFather,
	RelMother, RelAuntie, RelUncle, RelCousin, RelNiece, RelNephew,
	RelGrandSon, RelGrandDaughter, RelGrandFather, RelGrandMother,
	RelGodFather, RelGodMother,
}

// relationshipSet is the canonical lookup used by ParseRelationship.
var relationshipSet = func() map[string]Relationship {
	m := make(map[string]Relationship, len(Relationships))
	for _, r := range Relationships {
		m[string(r)] = r
	}
	return m
}()

// ParseRelationship normalizes s (case-insensitive, surrounding whitespace
// ignored) and returns the canonical Relationship. The second return value
// is false when s is not a member of the enumeration.
func ParseRelationship(s string) (Relationship, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	r, ok := relationshipSet[key]
	return r, ok
}

// String returns the canonical upper-case form.
func (r Relationship) String() string { return string(r) }

// Valid reports whether r is a member of the enumeration.
func (r Relationship) Valid() bool {
	_, ok := relationshipSet[string(r)]
	return ok
}

// Package vocab supplies the age-appropriate Portuguese vocabulary used
// to render worked examples: countable objects, characters, and the
// operation-specific context phrases.
//
// All pick functions are total: a bracket without its own table falls
// back to the default set, never to an error.
package vocab

import (
	"math/rand/v2"

	"github.com/abhisek/continha/internal/arith"
)

// Character is a narrative protagonist for a worked example.
type Character struct {
	Name string
	// Pronoun is the subject pronoun ("ele" or "ela").
	Pronoun string
	// HadVerb is the possession verb used in the imperfect past
	// ("tinha", "guardava").
	HadVerb string
}

// PhraseSet carries the operation-specific phrasing for one example.
// Verb is always set; Counterpart is set for multiplication (the grouping
// noun, e.g. "caixas") and division (who the objects are shared with).
type PhraseSet struct {
	Verb        string
	Counterpart string
}

// objectsByTier maps a vocabulary tier to its countable nouns.
// Nouns must pluralize correctly under the suffix rules in plural.go
// (or appear in the irregular table).
var objectsByTier = map[tier][]string{
	tierYoung:  {"maçã", "bolinha", "figurinha", "doce", "balão", "lápis"},
	tierMiddle: {"ponto", "livro", "carta", "moeda", "adesivo", "botão"},
	tierAdult:  {"real", "ingresso", "questão", "litro", "quilômetro", "cartaz"},
}

var characters = []Character{
	{Name: "Ana", Pronoun: "ela"},
	{Name: "Bruno", Pronoun: "ele"},
	{Name: "Carla", Pronoun: "ela"},
	{Name: "Davi", Pronoun: "ele"},
	{Name: "Lívia", Pronoun: "ela"},
	{Name: "Pedro", Pronoun: "ele"},
}

var hadVerbs = []string{"tinha", "guardava", "juntou"}

var phrasesByOp = map[arith.Operation]struct {
	verbs        []string
	counterparts []string
}{
	arith.OpSum:      {verbs: []string{"ganhou", "encontrou", "recebeu"}},
	arith.OpSubtract: {verbs: []string{"deu", "perdeu", "emprestou"}},
	arith.OpMultiply: {
		verbs:        []string{"montou", "arrumou", "separou"},
		counterparts: []string{"grupos", "caixas", "fileiras"},
	},
	arith.OpDivide: {
		verbs:        []string{"repartiu", "dividiu", "distribuiu"},
		counterparts: []string{"amigos", "colegas", "primos"},
	},
}

type tier int

const (
	tierYoung tier = iota
	tierMiddle
	tierAdult
)

// tierFor maps a bracket to its vocabulary tier. Unknown brackets land
// on the middle (default) tier.
func tierFor(bracket arith.AgeBracket) tier {
	switch bracket {
	case arith.Bracket3to5, arith.Bracket6to8:
		return tierYoung
	case arith.Bracket9to12, arith.Bracket13to17:
		return tierMiddle
	case arith.Bracket18to22, arith.Bracket23to25:
		return tierAdult
	default:
		return tierMiddle
	}
}

// PickObject returns a countable noun appropriate for the bracket.
func PickObject(bracket arith.AgeBracket) string {
	objs, ok := objectsByTier[tierFor(bracket)]
	if !ok || len(objs) == 0 {
		objs = objectsByTier[tierMiddle]
	}
	return objs[rand.IntN(len(objs))]
}

// PickCharacter returns a character with a possession verb filled in.
func PickCharacter(arith.AgeBracket) Character {
	c := characters[rand.IntN(len(characters))]
	c.HadVerb = hadVerbs[rand.IntN(len(hadVerbs))]
	return c
}

// PickContextPhrase returns the phrasing set for the operation. Young
// brackets always get the first (simplest) verb; older brackets draw
// among the alternatives.
func PickContextPhrase(op arith.Operation, bracket arith.AgeBracket) PhraseSet {
	p, ok := phrasesByOp[op]
	if !ok || len(p.verbs) == 0 {
		return PhraseSet{Verb: "usou"}
	}

	var set PhraseSet
	if bracket.Young() {
		set.Verb = p.verbs[0]
	} else {
		set.Verb = p.verbs[rand.IntN(len(p.verbs))]
	}
	if len(p.counterparts) > 0 {
		set.Counterpart = p.counterparts[rand.IntN(len(p.counterparts))]
	}
	return set
}

// Package examples renders worked examples in Portuguese for a solved
// question. Retries cycle through a fixed ordered list of narrative
// templates so the learner never hears the same explanation twice in a
// row; character, object and verb choice stay random within a template.
package examples

import (
	"fmt"

	"github.com/abhisek/continha/internal/arith"
	"github.com/abhisek/continha/internal/vocab"
)

// NumVariations is the number of distinct narrative templates.
const NumVariations = 3

// DivisionByZeroApology is returned instead of an explanation when a
// degenerate division slips past the generator's guards.
const DivisionByZeroApology = "Desculpe, não dá para dividir por zero. Vamos tentar outra continha!"

// scene carries everything a template needs to render one example.
type scene struct {
	op      arith.Operation
	bracket arith.AgeBracket
	a, b    int
	result  int
	char    vocab.Character
	obj     string
	phrase  vocab.PhraseSet
}

// count renders "N noun" with the noun correctly pluralized.
func (s scene) count(n int) string {
	return fmt.Sprintf("%d %s", n, vocab.Pluralize(s.obj, n))
}

// fact renders the trailing literal restatement "(a op b = r)".
func (s scene) fact() string {
	return fmt.Sprintf("(%d %s %d = %d)", s.a, s.op.Symbol(), s.b, s.result)
}

// templates is the fixed ordered list selected by variation mod len.
var templates = []func(scene) string{
	renderStory,
	renderImagine,
	renderStepByStep,
}

// Generate renders the worked example for (a op b = result) at the given
// variation index. It never fails: degenerate numeric input gets a fixed
// apology, unknown operations a generic restatement.
func Generate(op arith.Operation, bracket arith.AgeBracket, a, b, result, variation int) string {
	if op == arith.OpDivide && b == 0 {
		return DivisionByZeroApology
	}

	s := scene{
		op:      op,
		bracket: bracket,
		a:       a,
		b:       b,
		result:  result,
		char:    vocab.PickCharacter(bracket),
		obj:     vocab.PickObject(bracket),
		phrase:  vocab.PickContextPhrase(op, bracket),
	}

	if variation < 0 {
		variation = 0
	}
	return templates[variation%NumVariations](s)
}

// renderStory is the character-driven narrative template.
func renderStory(s scene) string {
	c := s.char
	switch s.op {
	case arith.OpSum:
		return fmt.Sprintf("%s %s %s e %s mais %s. Agora %s tem %s! %s",
			c.Name, c.HadVerb, s.count(s.a), s.phrase.Verb, s.count(s.b), c.Pronoun, s.count(s.result), s.fact())

	case arith.OpSubtract:
		switch {
		case s.a < s.b:
			falta := s.b - s.a
			return fmt.Sprintf("%s %s %s, mas precisava de %s: ficariam faltando %s. %s",
				c.Name, c.HadVerb, s.count(s.a), s.count(s.b), s.count(falta), s.fact())
		case s.result == 0:
			return fmt.Sprintf("%s %s %s e %s todas, então %s ficou sem nenhuma. %s",
				c.Name, c.HadVerb, s.count(s.a), s.phrase.Verb, c.Pronoun, s.fact())
		default:
			return fmt.Sprintf("%s %s %s e %s %s, então %s ficou com %s. %s",
				c.Name, c.HadVerb, s.count(s.a), s.phrase.Verb, s.count(s.b), c.Pronoun, s.count(s.result), s.fact())
		}

	case arith.OpMultiply:
		return fmt.Sprintf("%s %s %d %s com %s em cada um. Juntando tudo, são %s! %s",
			c.Name, s.phrase.Verb, s.a, s.phrase.Counterpart, s.count(s.b), s.count(s.result), s.fact())

	case arith.OpDivide:
		return fmt.Sprintf("%s %s %s igualmente entre %d %s, e cada um recebeu %s. %s",
			c.Name, s.phrase.Verb, s.count(s.a), s.b, s.phrase.Counterpart, s.count(s.result), s.fact())
	}
	return fmt.Sprintf("A conta é assim: %s", s.fact())
}

// renderImagine is the mental-picture template.
func renderImagine(s scene) string {
	switch s.op {
	case arith.OpSum:
		return fmt.Sprintf("Imagine %s em uma cesta. Colocando mais %s, a cesta fica com %s. %s",
			s.count(s.a), s.count(s.b), s.count(s.result), s.fact())

	case arith.OpSubtract:
		switch {
		case s.a < s.b:
			falta := s.b - s.a
			return fmt.Sprintf("Imagine que você tem %s e precisa de %s: ainda faltariam %s. %s",
				s.count(s.a), s.count(s.b), s.count(falta), s.fact())
		case s.result == 0:
			return fmt.Sprintf("Imagine %s sobre a mesa. Tirando todas, não sobra nenhuma. %s",
				s.count(s.a), s.fact())
		default:
			return fmt.Sprintf("Imagine %s sobre a mesa. Tirando %s, sobram %s. %s",
				s.count(s.a), s.count(s.b), s.count(s.result), s.fact())
		}

	case arith.OpMultiply:
		return fmt.Sprintf("Imagine %d %s, cada um com %s dentro. No total, são %s. %s",
			s.a, s.phrase.Counterpart, s.count(s.b), s.count(s.result), s.fact())

	case arith.OpDivide:
		return fmt.Sprintf("Imagine %s repartidas em %d montinhos iguais: cada montinho fica com %s. %s",
			s.count(s.a), s.b, s.count(s.result), s.fact())
	}
	return fmt.Sprintf("A conta é assim: %s", s.fact())
}

// renderStepByStep is the count-along template.
func renderStepByStep(s scene) string {
	switch s.op {
	case arith.OpSum:
		return fmt.Sprintf("Vamos contar juntos: começamos com %s e juntamos mais %s, um por um, chegando a %s. %s",
			s.count(s.a), s.count(s.b), s.count(s.result), s.fact())

	case arith.OpSubtract:
		switch {
		case s.a < s.b:
			falta := s.b - s.a
			return fmt.Sprintf("Vamos conferir: com %s não dá para tirar %s — faltariam %s para completar. %s",
				s.count(s.a), s.count(s.b), s.count(falta), s.fact())
		case s.result == 0:
			return fmt.Sprintf("Vamos conferir: tirando %s de %s, não sobra nenhuma — o resultado é zero. %s",
				s.count(s.b), s.count(s.a), s.fact())
		default:
			return fmt.Sprintf("Vamos conferir: de %s, tiramos %s, uma de cada vez, e sobram %s. %s",
				s.count(s.a), s.count(s.b), s.count(s.result), s.fact())
		}

	case arith.OpMultiply:
		return fmt.Sprintf("Vamos somar de %d em %d: repetindo %d vezes, chegamos a %s. %s",
			s.b, s.b, s.a, s.count(s.result), s.fact())

	case arith.OpDivide:
		return fmt.Sprintf("Vamos distribuir: dando %s por vez a cada um dos %d, as %s acabam certinhas em %d rodadas. %s",
			s.count(1), s.b, s.count(s.a), s.result, s.fact())
	}
	return fmt.Sprintf("A conta é assim: %s", s.fact())
}

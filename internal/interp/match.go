package interp

import (
	"github.com/dekarrin/minq/internal/grammar"
)

// matchTemplate walks the input tokens and the template tokens in lockstep
// and reports whether they match, along with the words consumed by each slot
// in left-to-right order.
//
// A literal template token must equal the current input token for the walk to
// advance. A slot consumes one input token unconditionally and then continues
// consuming greedily until input is exhausted (when the slot is the
// template's last token) or the next input token equals the literal token
// immediately following the slot. That lookahead is the only slot-boundary
// signal; no alternative slot lengths are ever tried, so a trailing literal
// whose word never comes up again in the input makes the whole match fail
// even if giving the slot fewer words would have worked.
func matchTemplate(tokens []string, tmpl grammar.Template) ([][]string, bool) {
	tmplToks := tmpl.Tokens()

	var spans [][]string
	ii := 0

	for ti := 0; ti < len(tmplToks); ti++ {
		tok := tmplToks[ti]

		if !tok.IsSlot() {
			if ii >= len(tokens) || tokens[ii] != tok.Word {
				return nil, false
			}
			ii++
			continue
		}

		// slots consume at least one word
		if ii >= len(tokens) {
			return nil, false
		}

		start := ii
		ii++

		if ti+1 < len(tmplToks) {
			// templates never have two slots in a row, so the next token is
			// the boundary literal
			boundary := tmplToks[ti+1].Word
			for ii < len(tokens) && tokens[ii] != boundary {
				ii++
			}
		} else {
			ii = len(tokens)
		}

		span := make([]string, ii-start)
		copy(span, tokens[start:ii])
		spans = append(spans, span)
	}

	// leftover input words mean no match
	if ii != len(tokens) {
		return nil, false
	}

	return spans, true
}

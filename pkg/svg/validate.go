// validate.go — Structural self-check of emitted SVG bytes.
//
// The checks mirror the markers the primary cover document must carry: an XML
// declaration, an svg root, and a defs block with at least one gradient and
// one filter. A document failing any of them triggers fallback generation
// upstream.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrInvalidDocument marks a document that failed structural validation.
var ErrInvalidDocument = errors.New("invalid svg document")

// Validate parses emitted bytes and checks the structural markers of a
// complete cover document. Returns nil when all checks pass, or an error
// wrapping ErrInvalidDocument listing every failed check.
func Validate(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty output", ErrInvalidDocument)
	}

	var problems []string
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("<?xml")) {
		problems = append(problems, "missing XML declaration")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("%w: not well-formed: %v", ErrInvalidDocument, err)
	}

	root := doc.SelectElement("svg")
	if root == nil {
		problems = append(problems, "missing svg root element")
	} else {
		defs := root.SelectElement("defs")
		switch {
		case defs == nil:
			problems = append(problems, "missing defs block")
		default:
			if defs.SelectElement("linearGradient") == nil {
				problems = append(problems, "missing gradient definitions")
			}
			if defs.SelectElement("filter") == nil {
				problems = append(problems, "missing filter definitions")
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}
	return nil
}

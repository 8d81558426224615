package serializer

import (
	"errors"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfsink/triple"
)

// Resolve converts ts into statements, in order, using a fresh blank node
// table. It fails on the first malformed triple, setting its index.
func Resolve(ts []triple.Triple) ([]quad.Quad, error) {
	return NewBlankNodes().ResolveAll(ts)
}

// ResolveAll converts ts in order, allocating blank nodes from b.
func (b *BlankNodes) ResolveAll(ts []triple.Triple) ([]quad.Quad, error) {
	out := make([]quad.Quad, 0, len(ts))
	for i, t := range ts {
		q, err := b.Resolve(t)
		if err != nil {
			var me *triple.MalformedError
			if errors.As(err, &me) {
				me.Index = i
			}
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Resolve converts a single triple, allocating blank nodes from b.
func (b *BlankNodes) Resolve(t triple.Triple) (quad.Quad, error) {
	if err := t.Validate(); err != nil {
		return quad.Quad{}, err
	}
	q := quad.Quad{
		Subject:   b.term(t.Subject),
		Predicate: quad.IRI(t.Predicate),
	}
	switch t.Kind {
	case triple.IRI:
		q.Object = b.term(t.Object)
	case triple.TypedLiteral:
		q.Object = quad.TypedString{Value: quad.String(t.Object), Type: quad.IRI(t.Datatype)}
	case triple.PlainLiteral:
		if t.Language == "" {
			q.Object = quad.String(t.Object)
		} else {
			q.Object = quad.LangString{Value: quad.String(t.Object), Lang: t.Language}
		}
	case triple.XMLLiteral:
		q.Object = quad.TypedString{Value: quad.String(t.Object), Type: quad.IRI(triple.XMLLiteralType)}
	}
	return q, nil
}

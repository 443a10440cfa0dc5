// Package transform converts values to and from a compact, delimiter
// based text form. A Store resolves a Transformer for any supported type
// by asking an ordered chain of creators. Composite transformers for
// collections, dictionaries, tuples and graduated values resolve the
// transformers of their elements through the same chain.
//
// Text grammar with the default settings:
//
//	collection  1|2|3
//	dictionary  key1=value1;key2=value2
//	tuple       (1,Text)
//	struct      (Mike;36;(Wrocław\;52200))
//	graduated   1#2#3
//
// The backslash escapes special characters and a lone '∅' marks an
// absent element.
package transform

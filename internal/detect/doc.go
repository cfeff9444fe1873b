// Package detect flags code points of a local part that do not belong to
// its majority Unicode block.
//
// The pipeline is: classify every code point (package script), group by
// folded block, elect the majority block, and compile the remaining code
// points into a literal-alternation matcher. Matchers are cached per
// identifier in an LRU so repeated renders of the same identifier only
// pay for the regexp scan.
//
// The heuristic flags mixing only: an identifier written entirely in one
// non-Latin block is not flagged.
package detect

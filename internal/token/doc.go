// Package token defines lexical token kinds, trivia, and the identifier
// specialization tables for WGSL.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - Trivia (whitespace, comments) never appears in the main token stream;
//     it rides on the next significant token as Leading.
//   - Identifier classification is a pure spelling lookup (Specialize) run
//     right after scanning, never influenced by surrounding context.
package token

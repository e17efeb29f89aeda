// Package dotenv parses configuration files in the "key=value" (dotenv)
// family of formats into a resolved string-to-string mapping.
//
// The parser reproduces shell-like quoting semantics:
//
//   - single quotes ('...') preserve content byte-for-byte
//   - double quotes ("...") and backticks (`...`) enable escape sequences
//     and may span multiple lines
//   - triple quotes ('''...''' and """...""") delimit multi-line heredocs
//   - unquoted values are treated as implicitly double-quoted, with
//     surrounding whitespace trimmed and an unescaped '#' starting a comment
//
// Values may reference other keys with ${name} interpolation (and bare
// $name when enabled with [WithBracelessVariables]). References resolve
// recursively and independently of declaration order; circular references
// never loop and leave their literal text in place.
//
// Parsing and resolution are two phases:
//
//	records := dotenv.ParseString(ctx, "A=${B}\nB=x")
//	env := dotenv.Finalize(ctx, records)
//	env.Get("A") // "x"
//
// [Load] combines both phases for the common case. The package performs no
// file I/O; callers supply bytes or an [io.Reader].
//
// Malformed lines, comments, unterminated quotes at end of input, unknown
// references, and circular references are all handled by local fallback
// rules rather than errors. Only input I/O failures are surfaced.
package dotenv

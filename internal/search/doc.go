// Package search implements the interactive template picker.
//
// A Session owns a fixed candidate list and loops over three steps: the
// Renderer redraws the whole screen, a KeyReader blocks for one key, and
// State.Apply updates the query or cursor. The loop ends when Enter is
// pressed with at least one match (Result.Outcome == Selected) or when the
// user interrupts (Result.Outcome == Aborted). Enter with no matches shows a
// notice, waits for Enter and resets the query.
//
// Platform specific input lives behind KeyReader. On POSIX systems the
// terminal is put into raw mode around each individual read and restored on
// every path. On Windows keys are read with _getch, which reports arrows as
// a two byte sequence. Both decode into the same Key alphabet.
package search

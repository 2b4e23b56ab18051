// Package cronfield turns the text of a single cron field into the set of
// integers it denotes.
//
// Supported constructs:
//
//	*
//	*/2
//	0-4,5-10/2,13,14,16-20/3
//	SUN, MON, TUE-THU/1, THU-SAT
//	1-6/2, 6-8, SEP, NOV-DEC
//
// The pipeline is Cursor (runes) -> Lexer (tokens) -> Parser (value set).
// Parsing is pure: a Parser holds nothing but its day-of-week convention and
// may be shared between goroutines.
package cronfield

// Package report renders health check progress and summaries for a terminal.
//
// Reporter implements health.Reporter. Each run prints a centered banner,
// one line per check with an animated status that resolves to
// "[SUCCESS] <name>" or "[FAILURE] <name>", and a colored summary block:
//
//	-------------------------------------------
//	           1 [failure] in 0.42s
//	-------------------------------------------
//	Some checks failed.
//
// The terminal width is sampled once per run. A silent Reporter writes nothing.
package report

// Package pagesum provides a CLI-based web page summarizer.
// It loads a page, extracts the main readable article text with a short,
// ordered list of structural heuristics, and forwards it to a
// user-selected text-generation provider to obtain a summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/) or the
// remote service they talk to (e.g., gemini/, openai/, anthropic/).
package pagesum

// Package models provides the shared data model for uiprompt.
//
// It contains the declarative form model used by every UI type, the live
// configuration values a user edits, and the snapshot types persisted by the
// store.
//
// # UI Types
//
// Five archetypes are supported, each with its own schema and generator:
//   - website
//   - dashboard
//   - mobileApp
//   - desktopApp
//   - componentLibrary
//
// # Form Model
//
// A [UITypeSchema] is an ordered list of [ConfigOption] values. Each option
// declares its [OptionType] and a type-matched default:
//
//	select, text, textarea -> string
//	multiSelect            -> []string
//	toggle                 -> bool
//
// # Configurations
//
// A [Configuration] maps option ids to values. Readers never fail on a
// missing key; the typed accessors fall back to empty values:
//
//	cfg := models.Configuration{"theme": "Dark Mode"}
//	cfg.String("theme")   // "Dark Mode"
//	cfg.List("features")  // []string{}
//
// # Tech Stacks
//
// [TechStack] is a closed set of two values. [DefaultTechStack] is also the
// fallback used when an older snapshot carries no stack at all.
package models

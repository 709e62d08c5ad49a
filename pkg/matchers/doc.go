// Package matchers implements the attribute predicates of itemexpr.
//
// Every matcher is an immutable value implementing Matcher[T]: Matches is a
// total, side-effect-free predicate over one attribute value, and Solve is
// its inverse, producing a value the matcher accepts. Solve takes a seed that
// is returned unchanged when the matcher has no unique answer (AnyAmount
// echoes it, RangeAmount clamps it) and fails with an ErrNotSolvable coded
// error when no deterministic witness exists, as for every pattern matcher.
//
// # Matcher Families
//
// Each attribute family is a closed set sealed by an unexported method, so a
// type switch over a family lists every variant:
//
//   - Amount (quantity, wear, tag level): AnyAmount, ExactlyAmount, RangeAmount
//   - Name (display text): AnyName, ExactlyName, RegexName, VanillaName
//   - Lore (descriptive lines): AnyLore, ExactlyLore, RegexLore
//   - Enum[T] (kind, color): AnyEnum, ExactlyEnum, RegexEnum
//   - UUID (owner identity): AnyUUID, ExactlyUUID, NameUUID
//   - Tag (one modifier tag): AnyTag, ExactlyTag, LevelTag, NoTag
//
// # List Matching
//
// TagSet combines tag matchers with a ListMode (any, all, none) using the
// generic MatchList and SolveList functions. TagSetMatcher and the extension
// matchers (LocationMatcher, BodyColorMatcher) operate on whole resources.
package matchers

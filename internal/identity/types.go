// Package identity extracts a site's visual brand identity from its parsed
// homepage: the logo, a representative color palette, and a set of large
// non-logo "hero" images. Everything works from structural and lexical
// signals in the markup; there is no ground truth.
package identity

// Strategy identifies which detection heuristic produced a logo candidate.
// Candidates are generated in strategy order, which also serves as the
// tie-break order when final scores are equal.
type Strategy string

// Candidate generation strategies, in discovery order.
const (
	StrategyExplicit   Strategy = "explicit"
	StrategyAttribute  Strategy = "attribute"
	StrategyPositional Strategy = "positional"
	StrategyFavicon    Strategy = "favicon"
)

// LogoKind distinguishes a real logo image from a favicon fallback.
type LogoKind string

// Logo kinds.
const (
	KindImage LogoKind = "image"
	KindIcon  LogoKind = "icon"
)

// LogoCandidate is a transient scoring record for one potential logo.
// Score accumulates independent additive and subtractive contributions; it is
// never overwritten. Candidates are discarded once a winner is chosen.
type LogoCandidate struct {
	Strategy Strategy
	Kind     LogoKind
	Src      string
	Alt      string
	Width    int // 0 when undeclared or unparseable
	Height   int
	IconLike bool // favicon links and icon-named sources
	Score    int
}

// LogoInfo describes the winning logo candidate. Src is resolved to absolute
// form. At most one LogoInfo exists per site.
type LogoInfo struct {
	Kind     LogoKind `json:"kind"`
	Src      string   `json:"src"`
	Alt      string   `json:"alt,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Score    int      `json:"score"`
	Strategy Strategy `json:"strategy"`
}

// Logo pairs the winning candidate with its downloaded local path, when any.
type Logo struct {
	Info      *LogoInfo `json:"info,omitempty"`
	LocalPath string    `json:"local_path,omitempty"`
}

// VisualIdentity is the combined brand identity extracted for one site.
// Hero images keep discovery order and are capped at five; the palette is a
// deduplicated set of canonical lowercase #rrggbb strings in insertion order,
// also capped at five. The record is immutable after construction and never
// merged across sites.
type VisualIdentity struct {
	Logo       Logo     `json:"logo"`
	HeroImages []string `json:"hero_images,omitempty"`
	Palette    []string `json:"palette"`
}

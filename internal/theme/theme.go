// Package theme holds the fixed catalog of color palettes a resume can be
// painted with.
package theme

// Palette is the five color roles every layout paints with.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
}

type Theme struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Dark   bool    `json:"dark"`
	Colors Palette `json:"colors"`
}

// The first fifteen entries are dark palettes, the rest light.
var catalog = []Theme{
	{ID: "cyber-black", Name: "Cyber Black", Dark: true, Colors: Palette{Background: "#000000", Text: "#e0e0e0", Primary: "#ffffff", Secondary: "#a0a0a0", Accent: "#06b6d4"}},
	{ID: "midnight-purple", Name: "Midnight Purple", Dark: true, Colors: Palette{Background: "#0f0720", Text: "#e9d5ff", Primary: "#d8b4fe", Secondary: "#a855f7", Accent: "#c084fc"}},
	{ID: "matrix", Name: "The Matrix", Dark: true, Colors: Palette{Background: "#000000", Text: "#22c55e", Primary: "#4ade80", Secondary: "#15803d", Accent: "#16a34a"}},
	{ID: "obsidian", Name: "Obsidian", Dark: true, Colors: Palette{Background: "#0b0b0b", Text: "#c0c0c0", Primary: "#ffffff", Secondary: "#505050", Accent: "#ef4444"}},
	{ID: "deep-ocean", Name: "Deep Ocean", Dark: true, Colors: Palette{Background: "#0f172a", Text: "#cbd5e1", Primary: "#38bdf8", Secondary: "#475569", Accent: "#0ea5e9"}},
	{ID: "dracula", Name: "Vampire", Dark: true, Colors: Palette{Background: "#282a36", Text: "#f8f8f2", Primary: "#ff79c6", Secondary: "#bd93f9", Accent: "#50fa7b"}},
	{ID: "slate-dim", Name: "Slate Dim", Dark: true, Colors: Palette{Background: "#1e293b", Text: "#e2e8f0", Primary: "#f1f5f9", Secondary: "#94a3b8", Accent: "#fbbf24"}},
	{ID: "royal-gold", Name: "Royal Gold", Dark: true, Colors: Palette{Background: "#1a1a1a", Text: "#e5e5e5", Primary: "#ffd700", Secondary: "#b8860b", Accent: "#daa520"}},
	{ID: "neon-pink", Name: "Neon Pink", Dark: true, Colors: Palette{Background: "#180018", Text: "#ffccff", Primary: "#ff00ff", Secondary: "#ff66ff", Accent: "#ff00cc"}},
	{ID: "hacker-console", Name: "Console", Dark: true, Colors: Palette{Background: "#121212", Text: "#33ff00", Primary: "#33ff00", Secondary: "#00cc00", Accent: "#ffffff"}},
	{ID: "deep-space", Name: "Deep Space", Dark: true, Colors: Palette{Background: "#020617", Text: "#e2e8f0", Primary: "#a78bfa", Secondary: "#4c1d95", Accent: "#6366f1"}},
	{ID: "monokai", Name: "Monokai", Dark: true, Colors: Palette{Background: "#272822", Text: "#f8f8f2", Primary: "#a6e22e", Secondary: "#66d9ef", Accent: "#f92672"}},
	{ID: "forest-night", Name: "Forest Night", Dark: true, Colors: Palette{Background: "#052e16", Text: "#dcfce7", Primary: "#4ade80", Secondary: "#166534", Accent: "#22c55e"}},
	{ID: "solarized-dark", Name: "Solarized Dark", Dark: true, Colors: Palette{Background: "#002b36", Text: "#839496", Primary: "#b58900", Secondary: "#586e75", Accent: "#2aa198"}},
	{ID: "coffee-dark", Name: "Espresso", Dark: true, Colors: Palette{Background: "#1c1917", Text: "#d6d3d1", Primary: "#a8a29e", Secondary: "#57534e", Accent: "#d97706"}},
	{ID: "classic-white", Name: "Classic White", Colors: Palette{Background: "#ffffff", Text: "#1f2937", Primary: "#111827", Secondary: "#4b5563", Accent: "#3b82f6"}},
	{ID: "modern-slate", Name: "Modern Slate", Colors: Palette{Background: "#f8fafc", Text: "#334155", Primary: "#0f172a", Secondary: "#64748b", Accent: "#06b6d4"}},
	{ID: "paper-cream", Name: "Paper Cream", Colors: Palette{Background: "#fffbeb", Text: "#451a03", Primary: "#78350f", Secondary: "#92400e", Accent: "#d97706"}},
	{ID: "minimal-gray", Name: "Minimal Gray", Colors: Palette{Background: "#f3f4f6", Text: "#374151", Primary: "#111827", Secondary: "#6b7280", Accent: "#9ca3af"}},
	{ID: "corporate-blue", Name: "Corporate Blue", Colors: Palette{Background: "#ffffff", Text: "#1e3a8a", Primary: "#172554", Secondary: "#3b82f6", Accent: "#2563eb"}},
	{ID: "clean-green", Name: "Clean Green", Colors: Palette{Background: "#f0fdf4", Text: "#14532d", Primary: "#15803d", Secondary: "#166534", Accent: "#22c55e"}},
	{ID: "rose-gold", Name: "Rose Gold", Colors: Palette{Background: "#fff1f2", Text: "#881337", Primary: "#be123c", Secondary: "#9f1239", Accent: "#fb7185"}},
	{ID: "lavender-mist", Name: "Lavender Mist", Colors: Palette{Background: "#faf5ff", Text: "#581c87", Primary: "#6b21a8", Secondary: "#7e22ce", Accent: "#a855f7"}},
	{ID: "sky-blue", Name: "Sky Blue", Colors: Palette{Background: "#f0f9ff", Text: "#0c4a6e", Primary: "#0369a1", Secondary: "#0ea5e9", Accent: "#38bdf8"}},
	{ID: "sunset-light", Name: "Sunset", Colors: Palette{Background: "#fff7ed", Text: "#7c2d12", Primary: "#c2410c", Secondary: "#ea580c", Accent: "#f97316"}},
	{ID: "mint-fresh", Name: "Mint Fresh", Colors: Palette{Background: "#ecfdf5", Text: "#064e3b", Primary: "#059669", Secondary: "#10b981", Accent: "#34d399"}},
	{ID: "solarized-light", Name: "Solarized Light", Colors: Palette{Background: "#fdf6e3", Text: "#657b83", Primary: "#b58900", Secondary: "#93a1a1", Accent: "#2aa198"}},
	{ID: "swiss-design", Name: "Swiss", Colors: Palette{Background: "#ffffff", Text: "#000000", Primary: "#ff0000", Secondary: "#666666", Accent: "#ff0000"}},
	{ID: "grayscale", Name: "Grayscale", Colors: Palette{Background: "#e5e5e5", Text: "#171717", Primary: "#000000", Secondary: "#525252", Accent: "#404040"}},
	{ID: "ivory-elegance", Name: "Ivory", Colors: Palette{Background: "#fffff0", Text: "#2f4f4f", Primary: "#000080", Secondary: "#708090", Accent: "#daa520"}},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, t := range catalog {
		m[t.ID] = i
	}
	return m
}()

// All returns a copy of the catalog in display order.
func All() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Theme, bool) {
	i, ok := byID[id]
	if !ok {
		return Theme{}, false
	}
	return catalog[i], true
}

// Default is the palette new sessions start with.
func Default() Theme {
	return catalog[0]
}

// Resolve returns the theme for id, falling back to Default.
func Resolve(id string) Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	return Default()
}

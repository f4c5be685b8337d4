// Package config turns a flag/value argument list into a typed Config,
// the same permissive flag/value pair scanning the command line has
// always used: any token starting with "-" is a flag, the following
// token is its value unless that token is itself a flag (in which case
// the first flag is a bare, valueless flag). Unrecognized flags are
// parsed into the map but never consulted, so they are effectively
// ignored rather than rejected.
package config

import "strconv"

// Config is the fully-resolved set of flags for one run: which stages to
// run, and where to write their output.
type Config struct {
	TextPath  string
	HasText   bool
	SeedURL   string
	HasHTML   bool
	CrawlMax  int
	Threads   int
	Threaded  bool
	QueryPath string
	HasQuery  bool
	Partial   bool

	HasCounts  bool
	CountsPath string
	HasIndex   bool
	IndexPath  string
	HasResults bool
	ResultsPath string
}

// Parse scans args into a Config. Threaded mode is implied by either an
// explicit -threads flag or an -html flag (a crawl always needs a work
// queue); a -threads value below 1 falls back to 5, matching the
// original's "invalid thread count" behavior.
func Parse(args []string) *Config {
	m := newArgMap(args)

	c := &Config{
		TextPath:  m.getString("-text", ""),
		HasText:   m.hasFlag("-text"),
		SeedURL:   m.getString("-html", ""),
		HasHTML:   m.hasFlag("-html"),
		CrawlMax:  m.getInt("-crawl", 1),
		QueryPath: m.getString("-query", ""),
		HasQuery:  m.hasFlag("-query"),
		Partial:   m.hasFlag("-partial"),

		HasCounts:   m.hasFlag("-counts"),
		CountsPath:  m.getString("-counts", "counts.json"),
		HasIndex:    m.hasFlag("-index"),
		IndexPath:   m.getString("-index", "index.json"),
		HasResults:  m.hasFlag("-results"),
		ResultsPath: m.getString("-results", "results.json"),
	}

	c.Threaded = m.hasFlag("-threads") || m.hasFlag("-html")
	c.Threads = m.getInt("-threads", 5)
	if c.Threads < 1 {
		c.Threads = 5
	}
	return c
}

// argMap is the flag -> value scan result; a flag present without a
// following value argument maps to "".
type argMap struct {
	values map[string]string
	flags  map[string]bool
}

func newArgMap(args []string) *argMap {
	m := &argMap{values: make(map[string]string), flags: make(map[string]bool)}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !isFlag(arg) {
			continue
		}
		m.flags[arg] = true
		if i+1 < len(args) && !isFlag(args[i+1]) {
			m.values[arg] = args[i+1]
			i++
		}
	}
	return m
}

func isFlag(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

func (m *argMap) hasFlag(flag string) bool {
	return m.flags[flag]
}

func (m *argMap) getString(flag, fallback string) string {
	if v, ok := m.values[flag]; ok {
		return v
	}
	return fallback
}

func (m *argMap) getInt(flag string, fallback int) int {
	v, ok := m.values[flag]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

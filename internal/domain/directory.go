package domain

import (
	"slices"
	"sort"
)

// DirectoryNames collects the directory labels carried by cards plus the
// user-created labels, with the root label always first and the rest sorted.
// Labels exist independently of whether any card currently carries them.
func DirectoryNames(cards []Card, userLabels []string) []string {
	seen := map[string]bool{RootDirectory: true}
	for _, c := range cards {
		seen[c.Directory] = true
	}
	for _, l := range userLabels {
		if l != "" {
			seen[l] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if name != RootDirectory {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{RootDirectory}, names...)
}

// SourcesIn returns the distinct sources of cards in a directory, sorted.
func SourcesIn(cards []Card, directory string) []string {
	seen := map[string]bool{}
	for _, c := range cards {
		if c.Directory == directory && c.Source != "" {
			seen[c.Source] = true
		}
	}
	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

// CardsIn returns the cards carrying a directory label, in store order.
func CardsIn(cards []Card, directory string) []Card {
	var out []Card
	for _, c := range cards {
		if c.Directory == directory {
			out = append(out, c)
		}
	}
	return out
}

// CardsFrom returns the cards with a given source, in store order.
func CardsFrom(cards []Card, source string) []Card {
	var out []Card
	for _, c := range cards {
		if c.Source == source {
			out = append(out, c)
		}
	}
	return out
}

// SortCards orders cards by creation time, oldest first, ties by id.
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt < b.CreatedAt {
				return -1
			}
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

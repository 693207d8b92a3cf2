// Package store owns the in-memory card collection, the active review
// deck, directory labels and settings, with TTL-cached derived views and
// snapshot persistence behind ports.StateStore.
//
// Every write path runs mutate, invalidate-cache, persist, notify in that
// order, so a refresh triggered by a notification always observes
// post-mutation, non-stale state.
package store

import (
	"math/rand"
	"slices"
	"sync"
	"time"

	"cardbox/internal/application"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// DefaultPageSize is the page length of the all-cards view.
const DefaultPageSize = 20

// Store is the single owner of all card state. Construct one per process
// with Open and hand it to the adapters by reference.
type Store struct {
	mu       sync.Mutex
	state    ports.StateStore
	cards    []domain.Card
	deck     *domain.Deck
	settings domain.Settings
	userDirs []string
	dirty    bool // review decisions awaiting persist while autoSave is off

	unreviewed *cell[[]domain.Card]
	all        *cell[[]domain.Card]
	deckView   *cell[*domain.Deck]

	observers []ports.Observer
	now       func() time.Time
	rng       *rand.Rand
}

var _ ports.CardStore = (*Store)(nil)

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock substitutes the time source; tests pin ids and cache freshness
// with it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand substitutes the random source used for deck shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithCacheTTL overrides the derived-view freshness window.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.unreviewed.ttl = ttl
		s.all.ttl = ttl
		s.deckView.ttl = ttl
	}
}

// Open loads the snapshot from the state store, runs the one-time legacy
// migration, and returns a ready store.
func Open(state ports.StateStore, opts ...Option) (*Store, error) {
	s := &Store{
		state: state,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.unreviewed = newCell[[]domain.Card](DefaultCacheTTL, func() time.Time { return s.now() })
	s.all = newCell[[]domain.Card](DefaultCacheTTL, func() time.Time { return s.now() })
	s.deckView = newCell[*domain.Deck](DefaultCacheTTL, func() time.Time { return s.now() })

	for _, opt := range opts {
		opt(s)
	}

	snap, err := state.Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		snap = domain.EmptySnapshot()
	}
	snap.Migrate()

	s.cards = snap.Cards
	s.deck = snap.CurrentDeck
	s.settings = snap.Settings
	s.userDirs = snap.Directories
	return s, nil
}

// Subscribe registers an observer for change notifications. Observers run
// after the mutation has been persisted and outside the store lock.
func (s *Store) Subscribe(obs ports.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

func (s *Store) notify(events ...ports.Event) {
	s.mu.Lock()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, obs := range observers {
		for _, e := range events {
			obs(e)
		}
	}
}

// snapshotLocked assembles the persisted state. Callers hold s.mu.
func (s *Store) snapshotLocked() *domain.Snapshot {
	return &domain.Snapshot{
		Cards:       slices.Clone(s.cards),
		CurrentDeck: s.deck.Clone(),
		Directories: slices.Clone(s.userDirs),
		Settings:    s.settings,
	}
}

// persistLocked writes the snapshot. The in-memory mutation stays applied
// even when the write fails; the wrapped error tells the caller to retry or
// accept the divergence.
func (s *Store) persistLocked(op string) error {
	if err := s.state.Save(s.snapshotLocked()); err != nil {
		return &application.PersistError{Op: op, Err: err}
	}
	s.dirty = false
	return nil
}

// mintIDLocked derives a timestamp id, bumping the sequence suffix past any
// id already taken. seq carries the per-batch counter for bulk creation.
func (s *Store) mintIDLocked(t time.Time, seq int) string {
	id := domain.MintID(t, seq)
	for s.indexOfLocked(id) >= 0 {
		seq++
		id = domain.MintID(t, seq)
	}
	return id
}

func (s *Store) indexOfLocked(id string) int {
	return slices.IndexFunc(s.cards, func(c domain.Card) bool { return c.ID == id })
}

func (s *Store) invalidateCardsLocked() {
	s.unreviewed.invalidate()
	s.all.invalidate()
}

// CreateCard captures one snippet. Text that is empty after trimming is
// declined with a ValidationError before any mutation.
func (s *Store) CreateCard(text, source string) (domain.Card, error) {
	if err := application.ValidateCardText(text); err != nil {
		return domain.Card{}, err
	}

	s.mu.Lock()
	card := domain.NewCard(s.mintIDLocked(s.now(), 0), text, source, s.now())
	s.cards = append(s.cards, card)
	s.invalidateCardsLocked()
	err := s.persistLocked("create card")
	s.mu.Unlock()

	if err != nil {
		return card, err
	}
	s.notify(ports.EventCards)
	return card, nil
}

// CreateCardsFromBlocks captures a whole batch in document order. Ids stay
// unique even when every card is minted within the same millisecond, via
// the per-batch sequence suffix.
func (s *Store) CreateCardsFromBlocks(source string, texts []string) ([]domain.Card, error) {
	s.mu.Lock()
	at := s.now()
	created := make([]domain.Card, 0, len(texts))
	for i, text := range texts {
		if err := application.ValidateCardText(text); err != nil {
			continue
		}
		card := domain.NewCard(s.mintIDLocked(at, i), text, source, at)
		s.cards = append(s.cards, card)
		created = append(created, card)
	}
	if len(created) == 0 {
		s.mu.Unlock()
		return nil, nil
	}
	s.invalidateCardsLocked()
	err := s.persistLocked("create cards from blocks")
	s.mu.Unlock()

	if err != nil {
		return created, err
	}
	s.notify(ports.EventCards)
	return created, nil
}

// MarkReviewed records a keep decision. A missing id is a no-op, not an
// error.
func (s *Store) MarkReviewed(id string, kept bool) error {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.cards[i].Reviewed = true
	s.cards[i].Kept = kept
	s.invalidateCardsLocked()
	err := s.persistLocked("mark reviewed")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventCards)
	return nil
}

// DeleteCard removes a card entirely. Idempotent.
func (s *Store) DeleteCard(id string) error {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.cards = slices.Delete(s.cards, i, i+1)
	s.invalidateCardsLocked()
	err := s.persistLocked("delete card")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventCards)
	return nil
}

// ResetReviewedKept un-reviews every surviving kept card and clears the
// active deck, so the whole collection becomes reviewable again.
func (s *Store) ResetReviewedKept() error {
	s.mu.Lock()
	for i := range s.cards {
		if s.cards[i].Kept {
			s.cards[i].Reviewed = false
		}
	}
	s.deck = nil
	s.invalidateCardsLocked()
	s.deckView.invalidate()
	err := s.persistLocked("reset reviews")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventCards, ports.EventDeck)
	return nil
}

// MoveSourceToDirectory reassigns the directory label of every card whose
// source matches. Zero matches means no persist and no notification.
func (s *Store) MoveSourceToDirectory(source, directory string) error {
	if err := application.ValidateDirectoryName(directory); err != nil {
		return err
	}

	s.mu.Lock()
	matched := 0
	for i := range s.cards {
		if s.cards[i].Source == source {
			s.cards[i].Directory = directory
			matched++
		}
	}
	if matched == 0 {
		s.mu.Unlock()
		return nil
	}
	s.invalidateCardsLocked()
	err := s.persistLocked("move source")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventCards, ports.EventDirectories)
	return nil
}

// Unreviewed returns the cards awaiting review, shuffled when random mode
// is on. The view is cached; mutations invalidate it.
func (s *Store) Unreviewed() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.unreviewed.get(s.computeUnreviewedLocked))
}

func (s *Store) computeUnreviewedLocked() []domain.Card {
	var out []domain.Card
	for _, c := range s.cards {
		if !c.Reviewed {
			out = append(out, c)
		}
	}
	if s.settings.RandomMode {
		domain.Shuffle(out, s.rng)
	}
	return out
}

// All returns a snapshot of the full collection in store order.
func (s *Store) All() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.all.get(func() []domain.Card {
		return slices.Clone(s.cards)
	}))
}

// AllPaged returns the contiguous slice [page*size, (page+1)*size) of the
// full snapshot plus the total count. Page numbers are 0-based.
func (s *Store) AllPaged(page, size int) ([]domain.Card, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	all := s.All()
	total := len(all)

	start := page * size
	if start < 0 || start >= total {
		return nil, total
	}
	end := min(start+size, total)
	return all[start:end], total
}

// TotalPages computes the page count for a total; never less than one.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Stats counts the collection: total, reviewed, pending.
func (s *Store) Stats() (total, reviewed, pending int) {
	for _, c := range s.All() {
		total++
		if c.Reviewed {
			reviewed++
		} else {
			pending++
		}
	}
	return total, reviewed, pending
}

// Directories lists every directory label: root first, then derived and
// user-created labels sorted.
func (s *Store) Directories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.DirectoryNames(s.cards, s.userDirs)
}

// SourcesInDirectory lists the distinct sources under a directory label.
func (s *Store) SourcesInDirectory(directory string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SourcesIn(s.cards, directory)
}

// CardsInDirectory returns the cards under a directory label.
func (s *Store) CardsInDirectory(directory string) []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CardsIn(s.cards, directory)
}

// CardsFromSource returns the cards captured from one source.
func (s *Store) CardsFromSource(source string) []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CardsFrom(s.cards, source)
}

// CreateDirectory adds a user label. Creating an existing label is a no-op.
func (s *Store) CreateDirectory(name string) error {
	if err := application.ValidateDirectoryName(name); err != nil {
		return err
	}

	s.mu.Lock()
	if slices.Contains(domain.DirectoryNames(s.cards, s.userDirs), name) {
		s.mu.Unlock()
		return nil
	}
	s.userDirs = append(s.userDirs, name)
	err := s.persistLocked("create directory")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventDirectories)
	return nil
}

// DeleteDirectory removes a label and reassigns its cards to the root
// label. The root itself cannot be deleted.
func (s *Store) DeleteDirectory(name string) error {
	if name == domain.RootDirectory {
		return application.ErrRootDirectory
	}

	s.mu.Lock()
	changed := false
	if i := slices.Index(s.userDirs, name); i >= 0 {
		s.userDirs = slices.Delete(s.userDirs, i, i+1)
		changed = true
	}
	for i := range s.cards {
		if s.cards[i].Directory == name {
			s.cards[i].Directory = domain.RootDirectory
			changed = true
		}
	}
	if !changed {
		s.mu.Unlock()
		return nil
	}
	s.invalidateCardsLocked()
	err := s.persistLocked("delete directory")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventCards, ports.EventDirectories)
	return nil
}

// Deck returns a copy of the active deck, or nil when absent. Cached.
func (s *Store) Deck() *domain.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deckView.get(func() *domain.Deck { return s.deck.Clone() }).Clone()
}

// StartReview resumes the active deck if one is mid-pass; otherwise it
// builds a fresh deck from the given selection, or from the unreviewed view
// when the selection is nil, truncated to the review batch size.
func (s *Store) StartReview(selection []domain.Card) (*domain.Deck, error) {
	s.mu.Lock()
	if s.deck.Active() {
		deck := s.deck.Clone()
		s.mu.Unlock()
		return deck, nil
	}

	pool := selection
	if pool == nil {
		pool = s.unreviewed.get(s.computeUnreviewedLocked)
	}
	if batch := s.settings.ReviewBatchSize; batch > 0 && len(pool) > batch {
		pool = pool[:batch]
	}

	s.deck = domain.NewDeck(pool)
	s.deckView.invalidate()
	err := s.persistLocked("start review")
	deck := s.deck.Clone()
	s.mu.Unlock()

	if err != nil {
		return deck, err
	}
	s.notify(ports.EventDeck)
	return deck, nil
}

// RecordDecision applies the user's keep/discard call to the card under the
// deck cursor and advances it. Kept cards are marked reviewed; discarded
// cards are deleted outright. With autoSave off the snapshot write is
// deferred until the session ends or Flush runs.
func (s *Store) RecordDecision(keep bool) (domain.Card, error) {
	s.mu.Lock()
	card, ok := s.deck.Current()
	if !ok {
		s.mu.Unlock()
		return domain.Card{}, application.ErrNoDeck
	}

	if i := s.indexOfLocked(card.ID); i >= 0 {
		if keep {
			s.cards[i].Reviewed = true
			s.cards[i].Kept = true
		} else {
			s.cards = slices.Delete(s.cards, i, i+1)
		}
	}
	s.deck.Advance()

	s.invalidateCardsLocked()
	s.deckView.invalidate()

	var err error
	if s.settings.AutoSave {
		err = s.persistLocked("record decision")
	} else {
		s.dirty = true
	}
	s.mu.Unlock()

	if err != nil {
		return card, err
	}
	s.notify(ports.EventCards, ports.EventDeck)
	return card, nil
}

// ClearDeck drops the active deck and flushes any deferred decisions.
func (s *Store) ClearDeck() error {
	s.mu.Lock()
	if s.deck == nil && !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.deck = nil
	s.deckView.invalidate()
	err := s.persistLocked("clear deck")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventDeck)
	return nil
}

// Settings returns the current settings.
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings normalizes and persists new settings. The unreviewed view
// is invalidated because random mode changes its ordering.
func (s *Store) UpdateSettings(settings domain.Settings) error {
	s.mu.Lock()
	s.settings = settings.Normalized()
	s.unreviewed.invalidate()
	err := s.persistLocked("update settings")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ports.EventSettings)
	return nil
}

// Flush persists the snapshot now, regardless of autoSave.
func (s *Store) Flush() error {
	s.mu.Lock()
	err := s.persistLocked("flush")
	s.mu.Unlock()
	return err
}

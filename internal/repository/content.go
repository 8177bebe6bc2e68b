package repository

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskforce/internal/domain"
	"taskforce/internal/pkg/slug"
	"taskforce/internal/storage"
)

// SnapshotKey is the fixed record name of the persisted snapshot. It is
// version-qualified; bumping it abandons old layouts and lets startup fall
// back to the defaults instead of migrating.
const SnapshotKey = "site_data_v5"

// sessionKey names the independent record holding the admin-session flag.
const sessionKey = "is_admin"

// ContentRepository is the single source of truth for all site content and
// the admin-session flag. Every mutation rebuilds the snapshot under the
// write lock and then persists it best-effort: a storage failure is logged
// and the in-memory state stands, so memory and disk may diverge until the
// next successful write.
type ContentRepository struct {
	store storage.Store

	mu   sync.RWMutex
	snap domain.Snapshot

	sessionMu sync.RWMutex
	isAdmin   bool

	now   func() time.Time
	newID func() string
}

type Option func(*ContentRepository)

// WithClock overrides the timestamp source. Tests use it to pin CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *ContentRepository) { r.now = now }
}

// WithIDGenerator overrides entity ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(r *ContentRepository) { r.newID = newID }
}

// New loads the persisted snapshot, falling back to the built-in defaults
// when the record is absent, unreadable, or fails the minimal shape check.
// A fallback is never a partial merge.
func New(store storage.Store, opts ...Option) *ContentRepository {
	r := &ContentRepository{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.snap = loadSnapshot(store)
	r.isAdmin = loadSessionFlag(store)
	return r
}

func loadSnapshot(store storage.Store) domain.Snapshot {
	raw, ok, err := store.Get(SnapshotKey)
	if err != nil {
		zap.S().Errorw("failed to read persisted snapshot, using defaults", "error", err)
		return domain.DefaultSnapshot()
	}
	if !ok {
		zap.S().Info("no persisted snapshot, using defaults")
		return domain.DefaultSnapshot()
	}

	// Minimal shape check before committing to the stored value: the two
	// top-level sections every valid snapshot has must be present.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		zap.S().Errorw("persisted snapshot is corrupt, using defaults", "error", err)
		return domain.DefaultSnapshot()
	}
	if probe["homeContent"] == nil || probe["siteSettings"] == nil {
		zap.S().Warn("persisted snapshot missing required sections, using defaults")
		return domain.DefaultSnapshot()
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		zap.S().Errorw("persisted snapshot failed to decode, using defaults", "error", err)
		return domain.DefaultSnapshot()
	}
	return snap
}

func loadSessionFlag(store storage.Store) bool {
	raw, ok, err := store.Get(sessionKey)
	if err != nil {
		zap.S().Errorw("failed to read session flag", "error", err)
		return false
	}
	return ok && string(raw) == "true"
}

// Snapshot returns a deep copy of the current content state.
func (r *ContentRepository) Snapshot() domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap.Clone()
}

// persistLocked writes the current snapshot. Callers hold at least the read
// lock. Failures are logged, never propagated: availability over durability.
func (r *ContentRepository) persistLocked() {
	raw, err := json.Marshal(r.snap)
	if err != nil {
		zap.S().Errorw("failed to serialize snapshot", "error", err)
		return
	}
	if err := r.store.Put(SnapshotKey, raw); err != nil {
		zap.S().Errorw("failed to persist snapshot", "error", err)
	}
}

func (r *ContentRepository) ReplaceHome(content domain.HomeContent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.HomeContent = content.Clone()
	r.persistLocked()
}

func (r *ContentRepository) ReplaceAbout(content domain.AboutContent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.AboutContent = content.Clone()
	r.persistLocked()
}

func (r *ContentRepository) ReplaceSettings(settings domain.SiteSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.SiteSettings = settings
	r.persistLocked()
}

// SetPortfolios replaces the portfolio list wholesale. Each entry is
// normalized on the way in: the slug is derived from the title and a gallery
// keeps at most one hero asset (the first one submitted wins). Entries
// without an ID are treated as new and assigned one.
func (r *ContentRepository) SetPortfolios(list []domain.Portfolio) {
	normalized := make([]domain.Portfolio, len(list))
	for i, p := range list {
		normalized[i] = r.normalizePortfolio(p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Portfolios = normalized
	r.persistLocked()
}

func (r *ContentRepository) normalizePortfolio(p domain.Portfolio) domain.Portfolio {
	p = p.Clone()
	if p.ID == "" {
		p.ID = r.newID()
	}
	p.Slug = slug.Make(p.Title)

	seenHero := false
	for i := range p.MediaGallery {
		if p.MediaGallery[i].ID == "" {
			p.MediaGallery[i].ID = r.newID()
		}
		if p.MediaGallery[i].IsHero {
			if seenHero {
				p.MediaGallery[i].IsHero = false
			}
			seenHero = true
		}
	}
	return p
}

// SetServices replaces the package list wholesale. Order is display order and
// is preserved verbatim.
func (r *ContentRepository) SetServices(list []domain.ServicePackage) {
	normalized := make([]domain.ServicePackage, len(list))
	for i, s := range list {
		s = s.Clone()
		if s.ID == "" {
			s.ID = r.newID()
		}
		normalized[i] = s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Services = normalized
	r.persistLocked()
}

func (r *ContentRepository) SetReviews(list []domain.Review) {
	normalized := slices.Clone(list)
	for i := range normalized {
		if normalized[i].ID == "" {
			normalized[i].ID = r.newID()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Reviews = normalized
	r.persistLocked()
}

func (r *ContentRepository) SetFAQs(list []domain.FAQ) {
	normalized := slices.Clone(list)
	for i := range normalized {
		if normalized[i].ID == "" {
			normalized[i].ID = r.newID()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.FAQs = normalized
	r.persistLocked()
}

// AddInquiry creates a new inquiry from the contact form: fresh ID, CreatedAt
// stamped, status forced to new, prepended so the newest appears first.
func (r *ContentRepository) AddInquiry(draft domain.InquiryDraft) domain.Inquiry {
	inq := domain.Inquiry{
		ID:        r.newID(),
		Name:      draft.Name,
		Contact:   draft.Contact,
		Purpose:   draft.Purpose,
		Type:      draft.Type,
		Budget:    draft.Budget,
		Date:      draft.Date,
		Message:   draft.Message,
		Status:    domain.InquiryNew,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Inquiries = append([]domain.Inquiry{inq}, r.snap.Inquiries...)
	r.persistLocked()
	return inq
}

// SetInquiryStatus updates only the status of the matching inquiry. Unknown
// IDs and invalid statuses are silent no-ops.
func (r *ContentRepository) SetInquiryStatus(id string, status domain.InquiryStatus) {
	if !domain.ValidInquiryStatus(status) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.snap.Inquiries {
		if r.snap.Inquiries[i].ID == id {
			r.snap.Inquiries[i].Status = status
			r.persistLocked()
			return
		}
	}
}

func (r *ContentRepository) SetPortfolioDeleted(id string, deleted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.snap.Portfolios {
		if r.snap.Portfolios[i].ID == id {
			r.snap.Portfolios[i].IsDeleted = deleted
			r.persistLocked()
			return
		}
	}
}

func (r *ContentRepository) SetServiceDeleted(id string, deleted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.snap.Services {
		if r.snap.Services[i].ID == id {
			r.snap.Services[i].IsDeleted = deleted
			r.persistLocked()
			return
		}
	}
}

func (r *ContentRepository) SetInquiryDeleted(id string, deleted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.snap.Inquiries {
		if r.snap.Inquiries[i].ID == id {
			r.snap.Inquiries[i].IsDeleted = deleted
			r.persistLocked()
			return
		}
	}
}

// PurgePortfolio removes the entity permanently. Purging an unknown ID is a
// no-op; a repeated purge is therefore safe.
func (r *ContentRepository) PurgePortfolio(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snap.Portfolios[:0:0]
	for _, p := range r.snap.Portfolios {
		if p.ID != id {
			next = append(next, p)
		}
	}
	r.snap.Portfolios = next
	r.persistLocked()
}

func (r *ContentRepository) PurgeService(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snap.Services[:0:0]
	for _, s := range r.snap.Services {
		if s.ID != id {
			next = append(next, s)
		}
	}
	r.snap.Services = next
	r.persistLocked()
}

func (r *ContentRepository) PurgeInquiry(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snap.Inquiries[:0:0]
	for _, inq := range r.snap.Inquiries {
		if inq.ID != id {
			next = append(next, inq)
		}
	}
	r.snap.Inquiries = next
	r.persistLocked()
}

// IsAdmin reports the persisted admin-session flag.
func (r *ContentRepository) IsAdmin() bool {
	r.sessionMu.RLock()
	defer r.sessionMu.RUnlock()
	return r.isAdmin
}

// SetAdmin records the admin-session flag in its own durable record,
// independent of the content snapshot.
func (r *ContentRepository) SetAdmin(isAdmin bool) {
	r.sessionMu.Lock()
	defer r.sessionMu.Unlock()
	r.isAdmin = isAdmin

	var err error
	if isAdmin {
		err = r.store.Put(sessionKey, []byte("true"))
	} else {
		err = r.store.Delete(sessionKey)
	}
	if err != nil {
		zap.S().Errorw("failed to persist session flag", "error", err)
	}
}

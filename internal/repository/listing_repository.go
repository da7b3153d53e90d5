package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rentfornest/rentfornest/internal/model"
	"github.com/rentfornest/rentfornest/internal/storage"
)

// ListingRepo owns the published listing collection. The collection
// is ordered newest-first: each publish prepends. Listings are never
// edited or deleted once published.
type ListingRepo struct {
	store storage.Store
	log   *zap.Logger

	mu       sync.RWMutex
	listings []model.PropertyListing
	lastID   int64
}

// NewListingRepo loads the listings collection from the store. When
// the blob is absent the caller-supplied seed becomes the initial
// collection (and is persisted if nonempty); a blob that fails to
// decode aborts construction with ErrCorruptData.
func NewListingRepo(store storage.Store, seed []model.PropertyListing, log *zap.Logger) (*ListingRepo, error) {
	blob, ok, err := store.Load(storage.KeyListings)
	if err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}

	var listings []model.PropertyListing
	if ok {
		if err := json.Unmarshal(blob, &listings); err != nil {
			return nil, fmt.Errorf("%w: listings: %v", ErrCorruptData, err)
		}
	} else {
		listings = append(listings, seed...)
	}

	r := &ListingRepo{store: store, log: log, listings: listings, lastID: maxNumericID(listings)}

	if !ok && len(listings) > 0 {
		if err := r.persist(listings); err != nil {
			return nil, err
		}
		log.Info("seeded listing collection", zap.Int("count", len(listings)))
	}
	log.Info("listings loaded", zap.Int("count", len(r.listings)))
	return r, nil
}

// Publish stores the draft as a new listing. The id is assigned here
// and ownerName is set to publisherName no matter what the draft
// carried. The new listing goes to the front of the collection.
func (r *ListingRepo) Publish(draft model.PropertyListing, publisherName string) (model.PropertyListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing := draft
	listing.ID = r.nextID()
	listing.OwnerName = publisherName
	// Coordinates are a pair; half-supplied means not supplied.
	if listing.Latitude == nil || listing.Longitude == nil {
		listing.Latitude, listing.Longitude = nil, nil
	}

	next := make([]model.PropertyListing, 0, len(r.listings)+1)
	next = append(next, listing)
	next = append(next, r.listings...)
	if err := r.persist(next); err != nil {
		return model.PropertyListing{}, err
	}
	r.listings = next
	r.log.Info("listing published",
		zap.String("id", listing.ID),
		zap.String("owner", publisherName),
		zap.String("city", listing.City))
	return listing, nil
}

// All returns the entire collection, newest-first.
func (r *ListingRepo) All() []model.PropertyListing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.PropertyListing{}, r.listings...)
}

// ByOwner returns the listings whose ownerName equals owner exactly,
// in collection order. Ownership is a snapshot taken at publish time,
// so a renamed account does not reclaim past listings.
func (r *ListingRepo) ByOwner(owner string) []model.PropertyListing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.PropertyListing{}
	for _, l := range r.listings {
		if l.OwnerName == owner {
			out = append(out, l)
		}
	}
	return out
}

// Count reports the number of published listings.
func (r *ListingRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listings)
}

// nextID derives an id from the clock, bumped past the last issued id
// so ids stay strictly increasing even within one millisecond.
// Callers hold the write lock.
func (r *ListingRepo) nextID() string {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}

func (r *ListingRepo) persist(listings []model.PropertyListing) error {
	blob, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("%w: encode listings: %v", ErrPersistenceFailed, err)
	}
	if err := r.store.Save(storage.KeyListings, blob); err != nil {
		r.log.Error("saving listings failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// maxNumericID recovers the high-water id so freshly published
// listings sort after everything already stored. Non-numeric ids are
// skipped.
func maxNumericID(listings []model.PropertyListing) int64 {
	var max int64
	for _, l := range listings {
		if n, err := strconv.ParseInt(l.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return max
}

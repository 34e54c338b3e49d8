// Package catalog holds the movies, theaters, and the movie-to-theater
// linkage that gate which (movie, theater) pairs can take a reservation.
package catalog

import (
	"sort"
	"sync"

	"cinebook-lld/internal/models"
)

// Catalog is a readers-preferred store for movies, theaters, and their
// linkage. The zero value is not ready to use; call New.
type Catalog struct {
	mutex    sync.RWMutex
	movies   map[uint32]*models.Movie
	theaters map[uint32]*models.Theater
	links    map[uint32][]uint32 // movieID -> theaterIDs, insertion order, set semantics
	linkSet  map[uint32]map[uint32]bool
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		movies:   make(map[uint32]*models.Movie),
		theaters: make(map[uint32]*models.Theater),
		links:    make(map[uint32][]uint32),
		linkSet:  make(map[uint32]map[uint32]bool),
	}
}

// AddMovie adds a movie, replacing any existing entry with the same id.
// Existing links and screening states keyed by this id are left in place.
func (c *Catalog) AddMovie(id uint32, title string) error {
	movie, err := models.NewMovie(id, title)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.movies[id] = movie
	return nil
}

// AddTheater adds a theater, replacing any existing entry with the same id.
func (c *Catalog) AddTheater(id uint32, name string) error {
	theater, err := models.NewTheater(id, name)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.theaters[id] = theater
	return nil
}

// Link records that movieID is showing at theaterID. Fails if either id is
// unknown. Idempotent: linking the same pair twice has no additional effect
// (set semantics — duplicate links never alter theaters_for).
func (c *Catalog) Link(movieID, theaterID uint32) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.movies[movieID]; !ok {
		return false
	}
	if _, ok := c.theaters[theaterID]; !ok {
		return false
	}

	if c.linkSet[movieID] == nil {
		c.linkSet[movieID] = make(map[uint32]bool)
	}
	if c.linkSet[movieID][theaterID] {
		return true
	}

	c.linkSet[movieID][theaterID] = true
	c.links[movieID] = append(c.links[movieID], theaterID)
	return true
}

// IsLinked reports whether movieID is currently linked to theaterID.
func (c *Catalog) IsLinked(movieID, theaterID uint32) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.linkSet[movieID][theaterID]
}

// GetMovie returns a copy of the movie with the given id.
func (c *Catalog) GetMovie(id uint32) (models.Movie, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	movie, ok := c.movies[id]
	if !ok {
		return models.Movie{}, false
	}
	return *movie, true
}

// GetTheater returns a copy of the theater with the given id.
func (c *Catalog) GetTheater(id uint32) (models.Theater, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	theater, ok := c.theaters[id]
	if !ok {
		return models.Theater{}, false
	}
	return *theater, true
}

// AllMovies returns every movie, sorted by id ascending.
func (c *Catalog) AllMovies() []models.Movie {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]models.Movie, 0, len(c.movies))
	for _, movie := range c.movies {
		out = append(out, *movie)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TheatersFor returns the theaters linked to movieID, in link insertion
// order, filtered to theaters that still exist in the catalog.
func (c *Catalog) TheatersFor(movieID uint32) []models.Theater {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	ids := c.links[movieID]
	out := make([]models.Theater, 0, len(ids))
	for _, id := range ids {
		if theater, ok := c.theaters[id]; ok {
			out = append(out, *theater)
		}
	}
	return out
}

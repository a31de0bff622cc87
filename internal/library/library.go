// Package library holds a populated set of UNIFAQ parameters and answers
// group and interaction-parameter queries against it.
//
// A ParameterLibrary is populated exactly once from two JSON documents, the
// group table and the interaction table, and is read-only afterwards. Queries
// return copies, so callers can never modify the stored records.
//
// Interaction parameters are usually stored once per pair of main groups. A
// query for the direction that is not stored is answered by reversing the
// stored record (see models.InteractionParameters.Reversed).
package library

import (
	"errors"
	"fmt"
	"sync"

	"github.com/unifaq/core/internal/models"
	"github.com/unifaq/core/internal/parser"
)

var (
	// ErrNotFound indicates a query key with no matching record.
	ErrNotFound = errors.New("library: not found")

	// ErrAlreadyPopulated indicates a second Populate call on the same library.
	ErrAlreadyPopulated = errors.New("library: already populated")

	// ErrDuplicateGroup indicates two group records with the same sub group index.
	ErrDuplicateGroup = errors.New("library: duplicate sub group index")

	// ErrDuplicateInteraction indicates two interaction records for the same
	// ordered pair of main groups.
	ErrDuplicateInteraction = errors.New("library: duplicate interaction pair")
)

type ParameterLibrary struct {
	mu        sync.RWMutex
	decoder   parser.Decoder
	populated bool

	groups                []models.Group
	interactionParameters []models.InteractionParameters
}

type Option func(*ParameterLibrary)

// WithDecoder replaces the JSON decoder used by Populate.
func WithDecoder(d parser.Decoder) Option {
	return func(l *ParameterLibrary) {
		l.decoder = d
	}
}

func New(opts ...Option) *ParameterLibrary {
	l := &ParameterLibrary{decoder: parser.JSONDecoder{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Populate fills the library from the group and interaction tables. It may
// succeed only once per library. On error nothing is stored and the library
// can be populated again.
func (l *ParameterLibrary) Populate(groupData, interactionData []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.populated {
		return ErrAlreadyPopulated
	}

	groupRoot, err := l.decoder.Decode(groupData)
	if err != nil {
		return fmt.Errorf("group data: %w", err)
	}

	interactionRoot, err := l.decoder.Decode(interactionData)
	if err != nil {
		return fmt.Errorf("interaction data: %w", err)
	}

	groups, err := parser.Groups(groupRoot)
	if err != nil {
		return fmt.Errorf("group data: %w", err)
	}

	params, err := parser.InteractionParameters(interactionRoot)
	if err != nil {
		return fmt.Errorf("interaction data: %w", err)
	}

	if err := checkGroups(groups); err != nil {
		return fmt.Errorf("group data: %w", err)
	}

	if err := checkInteractions(params); err != nil {
		return fmt.Errorf("interaction data: %w", err)
	}

	l.groups = groups
	l.interactionParameters = params
	l.populated = true

	return nil
}

func (l *ParameterLibrary) PopulateString(groupData, interactionData string) error {
	return l.Populate([]byte(groupData), []byte(interactionData))
}

func (l *ParameterLibrary) Populated() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.populated
}

// GetGroup returns the group with sub group index sgi.
func (l *ParameterLibrary) GetGroup(sgi int) (models.Group, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, g := range l.groups {
		if g.SGI == sgi {
			return g, nil
		}
	}

	return models.Group{}, fmt.Errorf("group %d: %w", sgi, ErrNotFound)
}

// GetInteractionParameters returns the parameters between main groups mgi1
// and mgi2, oriented so that MGI1 == mgi1 and MGI2 == mgi2. A record stored
// in that exact order wins over one stored in reverse.
func (l *ParameterLibrary) GetInteractionParameters(mgi1, mgi2 int) (models.InteractionParameters, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.interactionParameters {
		if p.MGI1 == mgi1 && p.MGI2 == mgi2 {
			return p, nil
		}
	}

	for _, p := range l.interactionParameters {
		if p.MGI1 == mgi2 && p.MGI2 == mgi1 {
			return p.Reversed(), nil
		}
	}

	return models.InteractionParameters{}, fmt.Errorf("interaction parameters %d-%d: %w", mgi1, mgi2, ErrNotFound)
}

// Component assembles the groups with the given sub group indices, in order.
func (l *ParameterLibrary) Component(sgis ...int) (models.Component, error) {
	groups := make([]models.Group, 0, len(sgis))

	for _, sgi := range sgis {
		g, err := l.GetGroup(sgi)
		if err != nil {
			return models.Component{}, err
		}
		groups = append(groups, g)
	}

	return models.Component{Groups: groups}, nil
}

func (l *ParameterLibrary) Stats() models.Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	mgis := make(map[int]bool)
	for _, g := range l.groups {
		mgis[g.MGI] = true
	}

	return models.Stats{
		Groups:                len(l.groups),
		InteractionParameters: len(l.interactionParameters),
		MainGroups:            len(mgis),
	}
}

func checkGroups(groups []models.Group) error {
	seen := make(map[int]bool, len(groups))
	var errs []error

	for i, g := range groups {
		if seen[g.SGI] {
			errs = append(errs, &parser.RecordError{
				Table: parser.TableGroups,
				Index: i,
				Field: parser.FieldSGI,
				Err:   fmt.Errorf("%w: %d", ErrDuplicateGroup, g.SGI),
			})
			continue
		}
		seen[g.SGI] = true
	}

	return errors.Join(errs...)
}

func checkInteractions(params []models.InteractionParameters) error {
	type pair struct{ mgi1, mgi2 int }

	seen := make(map[pair]bool, len(params))
	var errs []error

	for i, p := range params {
		key := pair{p.MGI1, p.MGI2}
		if seen[key] {
			errs = append(errs, &parser.RecordError{
				Table: parser.TableInteractions,
				Index: i,
				Err:   fmt.Errorf("%w: %d-%d", ErrDuplicateInteraction, p.MGI1, p.MGI2),
			})
			continue
		}
		seen[key] = true
	}

	return errors.Join(errs...)
}

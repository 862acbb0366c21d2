package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// Resource describes how a list of records is fetched and mutated.
type Resource[T any, ID ~string] struct {
	// Name is the lower case singular name of the record, used in alerts
	Name string

	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, item T) (*T, error)
	Update func(ctx context.Context, item T) (*T, error)
	Delete func(ctx context.Context, id ID) error

	Normalize func(item *T)
	Validate  func(item *T) validate.Errors

	SortKeys     listing.SortKeys[T]
	SearchFields []func(T) string
	GlobField    func(T) string

	// OnMutate is called after every successful mutation
	OnMutate func(ctx context.Context)
}

type ListOptions struct {
	Query    string
	Glob     string
	Sort     string
	Page     int
	PageSize int
}

// ResourceManager holds the last fetched list of a resource and runs
// mutations followed by a full refetch.
type ResourceManager[T any, ID ~string] struct {
	alerts
	resource Resource[T, ID]

	mutex  sync.RWMutex
	items  []T
	loaded bool
}

func (m *ResourceManager[T, ID]) title(verb string) string {
	return verb + " " + m.resource.Name
}

func (m *ResourceManager[T, ID]) label() string {
	if m.resource.Name == "" {
		return ""
	}
	return strings.ToUpper(m.resource.Name[:1]) + m.resource.Name[1:]
}

func (m *ResourceManager[T, ID]) Name() string {
	return m.resource.Name
}

// Refresh refetches the whole list.
func (m *ResourceManager[T, ID]) Refresh(ctx context.Context) error {
	items, err := m.resource.List(ctx)
	if err != nil {
		return m.fail(ctx, fmt.Sprintf("Load %ss", m.resource.Name), errors.WithStack(err))
	}

	m.mutex.Lock()
	m.items = items
	m.loaded = true
	m.mutex.Unlock()

	return nil
}

// Items returns the last fetched list, fetching it first if needed.
func (m *ResourceManager[T, ID]) Items(ctx context.Context) ([]T, error) {
	m.mutex.RLock()
	loaded := m.loaded
	m.mutex.RUnlock()

	if !loaded {
		if err := m.Refresh(ctx); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return slices.Clone(m.items), nil
}

// List derives a filtered, sorted and paginated view of the held list.
func (m *ResourceManager[T, ID]) List(ctx context.Context, opts ListOptions, predicates ...listing.Predicate[T]) ([]T, listing.Page, error) {
	items, err := m.Items(ctx)
	if err != nil {
		return nil, listing.Page{}, errors.WithStack(err)
	}

	predicates = append(predicates, listing.Search(opts.Query, m.resource.SearchFields...))

	if opts.Glob != "" && m.resource.GlobField != nil {
		glob, err := listing.Glob(opts.Glob, m.resource.GlobField)
		if err != nil {
			return nil, listing.Page{}, errors.WithStack(err)
		}
		predicates = append(predicates, glob)
	}

	items = listing.Filter(items, predicates...)

	name, descending := listing.ParseSort(opts.Sort)
	if err := listing.Sort(items, m.resource.SortKeys, name, descending); err != nil {
		return nil, listing.Page{}, errors.WithStack(err)
	}

	page, info := listing.Paginate(items, opts.Page, opts.PageSize)

	return page, info, nil
}

func (m *ResourceManager[T, ID]) Create(ctx context.Context, item T) (*T, error) {
	if m.resource.Create == nil {
		return nil, errors.Errorf("%s creation is not supported", m.resource.Name)
	}

	var created *T

	err := m.Perform(ctx, m.title("Create"), m.label()+" created successfully.", &item, func(ctx context.Context) error {
		var err error
		created, err = m.resource.Create(ctx, item)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return created, nil
}

func (m *ResourceManager[T, ID]) Update(ctx context.Context, item T) (*T, error) {
	if m.resource.Update == nil {
		return nil, errors.Errorf("%s edition is not supported", m.resource.Name)
	}

	var updated *T

	err := m.Perform(ctx, m.title("Update"), m.label()+" updated successfully.", &item, func(ctx context.Context) error {
		var err error
		updated, err = m.resource.Update(ctx, item)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

func (m *ResourceManager[T, ID]) Delete(ctx context.Context, id ID) error {
	err := m.Perform(ctx, m.title("Delete"), m.label()+" deleted successfully.", nil, func(ctx context.Context) error {
		return m.resource.Delete(ctx, id)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ImportFailure reports an item of a batch that could not be created.
// Index is the position of the item in the batch.
type ImportFailure struct {
	Index int
	Err   error
}

type ImportResult[T any] struct {
	Created  []T
	Failures []ImportFailure
}

// CreateMany creates items one call each, then refetches the list once.
// Invalid items are reported without being sent. The batch stops on
// authentication or authorization errors.
func (m *ResourceManager[T, ID]) CreateMany(ctx context.Context, items []T) (*ImportResult[T], error) {
	title := fmt.Sprintf("Import %ss", m.resource.Name)

	if m.resource.Create == nil {
		return nil, errors.Errorf("%s creation is not supported", m.resource.Name)
	}

	result := &ImportResult[T]{
		Created:  make([]T, 0, len(items)),
		Failures: make([]ImportFailure, 0),
	}

	for idx, item := range items {
		if m.resource.Normalize != nil {
			m.resource.Normalize(&item)
		}

		if m.resource.Validate != nil {
			if errs := m.resource.Validate(&item); !errs.Empty() {
				result.Failures = append(result.Failures, ImportFailure{Index: idx, Err: errs})
				continue
			}
		}

		created, err := m.resource.Create(ctx, item)
		if err != nil {
			if errors.Is(err, port.ErrUnauthorized) || errors.Is(err, port.ErrForbidden) {
				return result, m.fail(ctx, title, errors.WithStack(err))
			}

			slog.WarnContext(ctx, "could not create item", slog.String("resource", m.resource.Name), slog.Int("index", idx), slogx.Error(errors.WithStack(err)))
			result.Failures = append(result.Failures, ImportFailure{Index: idx, Err: errors.WithStack(err)})

			continue
		}

		if created != nil {
			result.Created = append(result.Created, *created)
		}
	}

	if len(result.Created) > 0 {
		if m.resource.OnMutate != nil {
			m.resource.OnMutate(ctx)
		}

		m.refreshQuietly(ctx)
	}

	if len(result.Created) == 0 && len(result.Failures) > 0 {
		return result, m.fail(ctx, title, result.Failures[0].Err)
	}

	m.succeed(ctx, title, fmt.Sprintf("%d of %d %ss imported.", len(result.Created), len(items), m.resource.Name))

	return result, nil
}

// Perform runs a mutation: validation of item when given, a single call,
// a refetch of the list, then an alert. A refetch failure does not fail
// the mutation.
func (m *ResourceManager[T, ID]) Perform(ctx context.Context, title string, success string, item *T, call func(ctx context.Context) error) error {
	if item != nil {
		if m.resource.Normalize != nil {
			m.resource.Normalize(item)
		}

		if m.resource.Validate != nil {
			if errs := m.resource.Validate(item); !errs.Empty() {
				return m.fail(ctx, title, errs)
			}
		}
	}

	if err := call(ctx); err != nil {
		return m.fail(ctx, title, errors.WithStack(err))
	}

	if m.resource.OnMutate != nil {
		m.resource.OnMutate(ctx)
	}

	m.refreshQuietly(ctx)

	m.succeed(ctx, title, success)

	return nil
}

func (m *ResourceManager[T, ID]) refreshQuietly(ctx context.Context) {
	items, err := m.resource.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "could not refresh list after mutation", slog.String("resource", m.resource.Name), slogx.Error(errors.WithStack(err)))

		m.mutex.Lock()
		m.loaded = false
		m.mutex.Unlock()

		return
	}

	m.mutex.Lock()
	m.items = items
	m.loaded = true
	m.mutex.Unlock()
}

func NewResourceManager[T any, ID ~string](alerter port.Alerter, resource Resource[T, ID]) *ResourceManager[T, ID] {
	return &ResourceManager[T, ID]{
		alerts:   alerts{alerter},
		resource: resource,
	}
}

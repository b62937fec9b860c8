// Package controller implements the generic load/mutate/reconcile unit that
// every ZenMoney resource screen is built on. One parametric controller owns
// an in-memory collection for one entity type, loads it (plus any companion
// collections) concurrently with all-settle semantics, and resynchronizes by
// re-running the full load after every mutation. There is no optimistic local
// patching.
package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
)

// Confirmer approves a destructive action. Declining must leave the
// collection untouched before any network call is issued.
type Confirmer func(prompt string) bool

// ConfirmAll is a Confirmer that approves everything.
func ConfirmAll(string) bool { return true }

// Resource describes one entity's endpoint conventions, envelope keys, and
// form behavior. The backend's endpoint shapes are inconsistent across
// resources, so each instantiation supplies its own paths.
type Resource[T any] struct {
	// Name is the singular entity name, used in logs and prompts.
	Name string

	ListPath   string
	CreatePath string
	UpdatePath func(item T) string
	DeletePath func(item T) string

	// WrapperKeys are the candidate envelope keys tried in order when the
	// list response is not a bare array (e.g. "banks", "items").
	WrapperKeys []string

	// Match implements client-side substring search over one record.
	Match func(item T, query string) bool

	// SeedForm renders an existing record into form field text values.
	SeedForm func(item T) map[string]string

	// FormDefaults returns the fixed field values for a creation form.
	FormDefaults func() map[string]string

	// BuildPayload validates form fields and builds the wire payload.
	// editing is non-nil when the form was opened on an existing record.
	BuildPayload func(fields map[string]string, editing *T) (any, error)
}

// Companion is an additional collection loaded alongside the primary one
// during a load cycle (e.g. banks and categories on the transaction screen).
// The loader stores its own result and must leave its slot empty on failure.
type Companion struct {
	Name string
	Load func(ctx context.Context) error
}

// Controller owns the collection for one resource for the lifetime of a
// screen. It is discarded, not reused, when the screen goes away.
type Controller[T any] struct {
	resource Resource[T]
	client   interfaces.APIClient
	logger   *common.Logger

	companions []Companion
	onChange   func(items []T)

	mu        sync.Mutex // serializes mutations; loads triggered by them included
	items     []T
	loading   bool
	lastError string
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithLogger sets the logger.
func WithLogger[T any](logger *common.Logger) Option[T] {
	return func(c *Controller[T]) {
		c.logger = logger
	}
}

// WithCompanions registers companion collections loaded on every load cycle.
func WithCompanions[T any](companions ...Companion) Option[T] {
	return func(c *Controller[T]) {
		c.companions = append(c.companions, companions...)
	}
}

// WithOnChange registers a hook invoked synchronously whenever the collection
// is replaced, for recomputing derived aggregates.
func WithOnChange[T any](fn func(items []T)) Option[T] {
	return func(c *Controller[T]) {
		c.onChange = fn
	}
}

// New creates a controller for one resource.
func New[T any](resource Resource[T], client interfaces.APIClient, opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		resource: resource,
		client:   client,
		logger:   common.NewSilentLogger(),
		items:    []T{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load fetches the primary collection and all companions concurrently.
// Outcomes are collected independently: one slot failing leaves the other
// slots' results intact and contributes exactly one surfaced error message
// for the screen. Failures never propagate as errors; they degrade to an
// empty slot plus the banner retrievable via Err.
func (c *Controller[T]) Load(ctx context.Context) {
	c.loading = true
	c.lastError = ""

	var primary []T

	// A plain errgroup without a derived context: slots must not cancel
	// each other, and Wait surfaces only the first failure.
	var g errgroup.Group

	g.Go(func() error {
		raw, err := c.client.Request(ctx, http.MethodGet, c.resource.ListPath, nil)
		if err != nil {
			primary = []T{}
			c.logger.Warn().Err(err).Str("resource", c.resource.Name).Msg("Load failed")
			return fmt.Errorf("%s: %s", c.resource.Name, err.Error())
		}
		primary = DecodeCollection[T](raw, c.resource.WrapperKeys)
		return nil
	})

	for _, companion := range c.companions {
		companion := companion
		g.Go(func() error {
			if err := companion.Load(ctx); err != nil {
				c.logger.Warn().Err(err).Str("companion", companion.Name).Msg("Companion load failed")
				return fmt.Errorf("%s: %s", companion.Name, err.Error())
			}
			return nil
		})
	}

	err := g.Wait()

	c.setItems(primary)
	c.loading = false
	if err != nil {
		c.lastError = err.Error()
	}
}

// Create issues a single POST, then re-runs the full load before returning.
func (c *Controller[T]) Create(ctx context.Context, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.client.Request(ctx, http.MethodPost, c.resource.CreatePath, payload); err != nil {
		c.lastError = err.Error()
		return err
	}

	c.Load(ctx)
	return nil
}

// Update issues a single PUT against the record's update path, then re-runs
// the full load before returning.
func (c *Controller[T]) Update(ctx context.Context, item T, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.client.Request(ctx, http.MethodPut, c.resource.UpdatePath(item), payload); err != nil {
		c.lastError = err.Error()
		return err
	}

	c.Load(ctx)
	return nil
}

// Delete asks the confirmer first: declining issues zero network calls and
// leaves the collection unchanged. On success the full load re-runs; on
// failure the displayed collection is kept and the message surfaced.
func (c *Controller[T]) Delete(ctx context.Context, item T, confirm Confirmer) error {
	if confirm == nil {
		confirm = ConfirmAll
	}
	if !confirm(fmt.Sprintf("Permanently delete this %s?", c.resource.Name)) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.client.Request(ctx, http.MethodDelete, c.resource.DeletePath(item), nil); err != nil {
		c.lastError = err.Error()
		return err
	}

	c.Load(ctx)
	return nil
}

// Search returns the items matching the query by client-side substring
// match. An empty query returns the full collection.
func (c *Controller[T]) Search(query string) []T {
	items := c.Items()
	if strings.TrimSpace(query) == "" || c.resource.Match == nil {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if c.resource.Match(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Items returns a copy of the current collection.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a load cycle is in progress.
func (c *Controller[T]) Loading() bool {
	return c.loading
}

// Err returns the surfaced error banner, or "" when the last operation
// succeeded.
func (c *Controller[T]) Err() string {
	return c.lastError
}

func (c *Controller[T]) setItems(items []T) {
	if items == nil {
		items = []T{}
	}
	c.items = items
	if c.onChange != nil {
		c.onChange(items)
	}
}

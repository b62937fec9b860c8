package controller

import "context"

// Form is the single create/edit form for a resource. Opening it on an
// existing record seeds every field from that record's current values;
// opening it for creation resets every field to the resource's defaults.
type Form[T any] struct {
	Fields  map[string]string
	editing *T
	closed  bool
}

// Editing reports whether the form was opened on an existing record.
func (f *Form[T]) Editing() bool {
	return f.editing != nil
}

// Closed reports whether the form was closed by a successful submission.
func (f *Form[T]) Closed() bool {
	return f.closed
}

// Set assigns one field value, as the presentation layer does on user input.
func (f *Form[T]) Set(field, value string) {
	f.Fields[field] = value
}

// OpenForm opens the create/edit form. Pass nil to create.
func (c *Controller[T]) OpenForm(seed *T) *Form[T] {
	if seed != nil {
		return &Form[T]{
			Fields:  c.resource.SeedForm(*seed),
			editing: seed,
		}
	}
	return &Form[T]{
		Fields: c.resource.FormDefaults(),
	}
}

// Submit validates the fields, issues exactly one PUT (editing) or POST
// (creating), re-runs the full load, and only then marks the form closed.
// Validation failures are returned before any network call.
func (c *Controller[T]) Submit(ctx context.Context, form *Form[T]) error {
	payload, err := c.resource.BuildPayload(form.Fields, form.editing)
	if err != nil {
		c.lastError = err.Error()
		return err
	}

	if form.editing != nil {
		err = c.Update(ctx, *form.editing, payload)
	} else {
		err = c.Create(ctx, payload)
	}
	if err != nil {
		return err
	}

	form.closed = true
	return nil
}

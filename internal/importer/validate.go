package importer

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

func (s *Schema) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Items, validation.Required.Error("at least one item is required")),
	); err != nil {
		return err
	}

	refs := make(map[string]bool, len(s.Items))
	for i := range s.Items {
		it := &s.Items[i]
		if err := it.validate(); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, it.Ref, err)
		}
		if refs[it.Ref] {
			return fmt.Errorf("item %d: duplicate ref %q", i, it.Ref)
		}
		refs[it.Ref] = true
	}

	// Dependency refs must resolve within the file; dangling edges are only
	// tolerated at runtime, not in a freshly authored project.
	for i := range s.Items {
		for _, dep := range s.Items[i].DependsOn {
			if !refs[dep] {
				return fmt.Errorf("item %d (%s): unknown dependency ref %q", i, s.Items[i].Ref, dep)
			}
			if dep == s.Items[i].Ref {
				return fmt.Errorf("item %d (%s): depends on itself", i, s.Items[i].Ref)
			}
		}
	}
	return nil
}

func (it *ItemSchema) validate() error {
	if err := validation.ValidateStruct(it,
		validation.Field(&it.Ref, validation.Required),
		validation.Field(&it.Title, validation.Required),
		validation.Field(&it.Kind, validation.In("", "project", "task")),
		validation.Field(&it.Start, validation.Required, validation.Date(dateLayout)),
		validation.Field(&it.End, validation.Required, validation.Date(dateLayout)),
		validation.Field(&it.Progress, validation.Min(0), validation.Max(100)),
	); err != nil {
		return err
	}

	start, _ := time.Parse(dateLayout, it.Start)
	end, _ := time.Parse(dateLayout, it.End)
	if end.Before(start) {
		return fmt.Errorf("end %s before start %s", it.End, it.Start)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

const formDateLayout = "2006-01-02"

func validateDate(s string) error {
	if _, err := time.Parse(formDateLayout, s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateTitle(s string) error {
	if s == "" {
		return errors.New("title is required")
	}
	return nil
}

// openForm replaces the grid with an add-item form until it completes or
// is aborted.
func (m *ganttModel) openForm() {
	m.closeSessions()

	today := m.eng.Nav.Now().UTC().Format(formDateLayout)
	m.formTitle = ""
	m.formStart = today
	m.formEnd = today

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.formTitle).
				Validate(validateTitle),
			huh.NewInput().
				Title("Start (YYYY-MM-DD)").
				Value(&m.formStart).
				Validate(validateDate),
			huh.NewInput().
				Title("End (YYYY-MM-DD)").
				Value(&m.formEnd).
				Validate(validateDate),
		),
	).WithShowHelp(false)
	m.form.Init()
}

func (m *ganttModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.form = nil
		m.status = "add cancelled"
		return m, nil
	}

	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.form = nil
		if err := m.createFromForm(context.Background()); err != nil {
			m.err = err
		} else {
			m.status = "added " + m.formTitle
		}
	}
	return m, cmd
}

func (m *ganttModel) createFromForm(ctx context.Context) error {
	start, err := time.ParseInLocation(formDateLayout, m.formStart, time.UTC)
	if err != nil {
		return err
	}
	end, err := time.ParseInLocation(formDateLayout, m.formEnd, time.UTC)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	item := &domain.ScheduleItem{
		ID:         uuid.NewString(),
		Title:      m.formTitle,
		Kind:       domain.KindTask,
		StartDate:  start,
		EndDate:    end,
		OrderIndex: len(m.eng.Items()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := m.app.Store.Create(ctx, item); err != nil {
		return err
	}
	if err := m.eng.Refresh(ctx); err != nil {
		return err
	}
	m.cursor = len(m.eng.Items()) - 1
	return nil
}

package a11ykit

import (
	"fmt"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

// FormAnnouncer speaks form validation outcomes. Errors go out assertively
// and debounce per form, so a burst of failed submits produces a single
// announcement carrying the latest state.
type FormAnnouncer struct {
	engine *announcer.Engine
	formID string
}

// NewFormAnnouncer creates an announcer for one form. The formID scopes the
// debounce key, so independent forms never coalesce with each other.
func NewFormAnnouncer(engine *announcer.Engine, formID string) *FormAnnouncer {
	return &FormAnnouncer{engine: engine, formID: formID}
}

// AnnounceErrors announces the validation summary assertively. Empty errors
// produce an empty summary, which the engine rejects with ErrEmptyMessage.
func (a *FormAnnouncer) AnnounceErrors(errs ValidationError) (*announcer.Receipt, error) {
	return a.engine.Announce(errs.Summary(),
		announcer.WithPriority(announcer.Assertive),
		announcer.WithAnnouncementID("form-errors:"+a.formID),
	)
}

// AnnounceSuccess announces a successful submit politely, clearing the
// message once assistive technology has had time to speak it.
func (a *FormAnnouncer) AnnounceSuccess(message string) (*announcer.Receipt, error) {
	return a.engine.Announce(message,
		announcer.WithPriority(announcer.Polite),
		announcer.WithAnnouncementID("form-success:"+a.formID),
	)
}

// NavigationAnnouncer speaks client-driven page changes that assistive
// technology would otherwise miss (boosted links, SPA-style swaps).
type NavigationAnnouncer struct {
	engine *announcer.Engine
}

// NewNavigationAnnouncer creates a page-change announcer.
func NewNavigationAnnouncer(engine *announcer.Engine) *NavigationAnnouncer {
	return &NavigationAnnouncer{engine: engine}
}

// PageChanged announces the new page title politely. Rapid successive
// navigations coalesce, so only the page the user lands on is spoken.
func (a *NavigationAnnouncer) PageChanged(title string) (*announcer.Receipt, error) {
	message := "Page loaded"
	if title != "" {
		message = fmt.Sprintf("Navigated to %s", title)
	}
	return a.engine.Announce(message,
		announcer.WithPriority(announcer.Polite),
		announcer.WithAnnouncementID("page-navigation"),
	)
}

// TableAnnouncer speaks data-table refreshes. Updates debounce per table so
// live-filtering a table speaks the settled row count once, not every
// keystroke.
type TableAnnouncer struct {
	engine  *announcer.Engine
	tableID string
}

// NewTableAnnouncer creates an announcer for one data table.
func NewTableAnnouncer(engine *announcer.Engine, tableID string) *TableAnnouncer {
	return &TableAnnouncer{engine: engine, tableID: tableID}
}

// RowsChanged announces the table's new row count politely.
func (a *TableAnnouncer) RowsChanged(rows int) (*announcer.Receipt, error) {
	noun := "rows"
	if rows == 1 {
		noun = "row"
	}
	return a.engine.Announce(fmt.Sprintf("Table updated, %d %s", rows, noun),
		announcer.WithPriority(announcer.Polite),
		announcer.WithAnnouncementID("table-update:"+a.tableID),
	)
}

package announcer

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/a11ykit/pkg/logger"
)

// LoadTemplates registers every region template found in a YAML catalog.
// The catalog maps template names to region configs:
//
//	toast:
//	  priority: polite
//	  label: Notifications
//	form-errors:
//	  priority: assertive
//	  relevant: additions text
//	  atomic: false
//
// Registration is all-or-nothing: a malformed document or an invalid entry
// leaves the template registry untouched.
func (e *Engine) LoadTemplates(data []byte) error {
	var catalog map[string]RegionConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return errors.Join(ErrTemplateCatalogParse, err)
	}
	if len(catalog) == 0 {
		return ErrTemplateCatalogEmpty
	}

	for name, cfg := range catalog {
		if name == "" {
			return fmt.Errorf("%w: catalog contains an entry with an empty name", ErrTemplateCatalogParse)
		}
		if cfg.Priority != "" && !cfg.Priority.Valid() {
			return fmt.Errorf("template %q: %w", name, ErrInvalidPriority)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	for name, cfg := range catalog {
		e.templates[name] = cfg
	}
	e.logger.Debug("region templates loaded", logger.Count(len(catalog)))
	return nil
}

// Templates returns the names of all registered region templates.
func (e *Engine) Templates() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	return names
}

// Package venue is the search facade: it runs the compiler and the tier
// executor, applies the post-filters the query DSL cannot express, and
// shapes the final contact result.
package venue

import (
	"context"
	"fmt"

	"github.com/gigcompass/venuesearch/internal/domain"
	"github.com/gigcompass/venuesearch/internal/domain/contact"
	"github.com/gigcompass/venuesearch/internal/domain/location"
	"github.com/gigcompass/venuesearch/internal/domain/search/request"
)

// DefaultTypeaheadLimit bounds typeahead responses when the caller does
// not ask for a size.
const DefaultTypeaheadLimit = 10

// verificationField is the source field carrying the contact's email
// verification status.
const verificationField = "emailValidationStatus"

// Result is the facade's answer to one search request.
type Result struct {
	Contacts    []contact.Contact `json:"contacts"`
	TierUsed    int               `json:"tier_used"`
	Total       int               `json:"total"`
	Message     string            `json:"message,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Intent      location.Intent   `json:"-"`
}

// Service handles venue contact search and typeahead.
type Service struct {
	compiler Compiler
	executor Executor
	names    NameSearcher
}

// New creates a venue search service. A nil executor or name searcher is
// allowed at construction and rejected per call, so a partially
// configured process can still serve its other routes.
func New(compiler Compiler, executor Executor, names NameSearcher) *Service {
	return &Service{compiler: compiler, executor: executor, names: names}
}

// Search runs the tiered search for a validated request and returns the
// post-filtered contacts with tier metadata and suggestion hints.
func (s *Service) Search(ctx context.Context, req *request.Request) (Result, error) {
	if s.executor == nil {
		return Result{}, domain.ErrNoBackend
	}

	plan := s.compiler.Compile(req.Query())
	out, err := s.executor.Execute(ctx, plan, req.Limit())
	if err != nil {
		return Result{}, fmt.Errorf("execute tier plan: %w", err)
	}

	contacts := make([]contact.Contact, 0, len(out.Hits()))
	for _, hit := range out.Hits() {
		if status := req.VerificationStatus(); status != "" &&
			hit.StringField(verificationField) != status {
			continue
		}
		if req.Excludes(contact.IdentityOf(hit)) {
			continue
		}
		contacts = append(contacts, contact.FromDocument(hit))
	}

	var suggestions []string
	if out.TierUsed() > 1 {
		suggestions = suggest(out.TierUsed(), len(contacts), plan.Intent())
	}

	return Result{
		Contacts:    contacts,
		TierUsed:    out.TierUsed(),
		Total:       len(contacts),
		Message:     out.Message(),
		Suggestions: suggestions,
		Intent:      plan.Intent(),
	}, nil
}

// Typeahead looks up venues by company name prefix.
func (s *Service) Typeahead(ctx context.Context, name string, limit int) ([]contact.Contact, error) {
	if s.names == nil {
		return nil, domain.ErrNoBackend
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if limit <= 0 {
		limit = DefaultTypeaheadLimit
	}

	hits, err := s.names.SearchByName(ctx, name, limit)
	if err != nil {
		return nil, fmt.Errorf("search by name: %w", err)
	}

	contacts := make([]contact.Contact, len(hits))
	for i, hit := range hits {
		contacts[i] = contact.FromDocument(hit)
	}
	return contacts, nil
}

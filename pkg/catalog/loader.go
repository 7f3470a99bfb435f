package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// Catalog holds the read-only seed datasets: products, the user directory,
// and built-in sessions (kept raw; the session normalizer owns their shape).
type Catalog struct {
	Products    []Product
	Users       []User
	RawSessions []map[string]interface{}
}

// Loader reads and validates the seed datasets from a data directory
// containing products.json, users.json and sessions.json.
type Loader struct {
	dataDir string
	logger  zerolog.Logger
}

// NewLoader creates a Loader for the given data directory.
func NewLoader(dataDir string, logger zerolog.Logger) *Loader {
	return &Loader{
		dataDir: dataDir,
		logger:  logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads all three datasets. Any read, schema or parse failure is
// returned to the caller; seed data is fetched once and fails visibly.
func (l *Loader) Load() (*Catalog, error) {
	var cat Catalog

	if err := l.loadDataset("products.json", ProductsSchema, &cat.Products); err != nil {
		return nil, err
	}
	if err := l.loadDataset("users.json", UsersSchema, &cat.Users); err != nil {
		return nil, err
	}
	if err := l.loadDataset("sessions.json", SessionsSchema, &cat.RawSessions); err != nil {
		return nil, err
	}

	l.logger.Info().
		Int("products", len(cat.Products)).
		Int("users", len(cat.Users)).
		Int("sessions", len(cat.RawSessions)).
		Msg("Catalog loaded")

	return &cat, nil
}

// loadDataset reads one dataset file, validates it against its schema and
// unmarshals it into out.
func (l *Loader) loadDataset(name, schema string, out interface{}) error {
	path := filepath.Join(l.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}

	if err := validateSchema(schema, data); err != nil {
		return fmt.Errorf("dataset %s failed schema validation: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse dataset %s: %w", name, err)
	}
	return nil
}

// validateSchema checks a raw JSON document against a schema string.
func validateSchema(schema string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// FindUser resolves a user by exact identifier match.
func (c *Catalog) FindUser(id ID) (User, bool) {
	for _, u := range c.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindProduct resolves a product by exact identifier match.
func (c *Catalog) FindProduct(id ID) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ResolveProducts maps ids to full product records, silently dropping ids
// that match nothing in the catalog.
func (c *Catalog) ResolveProducts(ids []ID) []Product {
	resolved := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.FindProduct(id); ok {
			resolved = append(resolved, p)
		}
	}
	return resolved
}

package expression

import (
	"context"
	"fmt"
	"slices"
)

// Catalog resolves well known expressions by name.
type Catalog interface {
	// Lookup returns the expression registered under name.
	Lookup(name string) (string, error)
	// Names returns every registered name in ascending order.
	Names() []string
}

// LocalCatalog implements Catalog using predefined expressions.
type LocalCatalog struct {
	entries map[string]CatalogEntry
}

// CatalogEntry is a named expression with a human readable description.
type CatalogEntry struct {
	Expression  string
	Description string
}

// NewLocalCatalog creates a LocalCatalog with the predefined expressions.
func NewLocalCatalog() *LocalCatalog {
	c := &LocalCatalog{
		entries: make(map[string]CatalogEntry),
	}
	c.registerExpressions()
	return c
}

func (c *LocalCatalog) registerExpressions() {
	c.entries["every_minute"] = CatalogEntry{"* * * * *", "Every minute"}
	c.entries["every_5_minutes"] = CatalogEntry{"*/5 * * * *", "Every 5 minutes"}
	c.entries["every_10_minutes"] = CatalogEntry{"*/10 * * * *", "Every 10 minutes"}
	c.entries["every_30_minutes"] = CatalogEntry{"*/30 * * * *", "Every 30 minutes"}
	c.entries["hourly_check"] = CatalogEntry{"0 * * * *", "At minute 0 of every hour"}
	c.entries["daily_backup"] = CatalogEntry{"0 0 * * *", "At midnight every day"}
	c.entries["weekly_report"] = CatalogEntry{"0 0 * * SUN", "At midnight on Sunday"}
	c.entries["monthly_cleanup"] = CatalogEntry{"0 0 1 * *", "At midnight on the 1st of every month"}
	c.entries["business_hours"] = CatalogEntry{"0 9-17 * * MON-FRI", "Every hour between 9 AM and 5 PM on weekdays"}
	c.entries["quarterly"] = CatalogEntry{"0 0 1 JAN,APR,JUL,OCT *", "At midnight on the 1st of every quarter"}
	c.entries["multiple_daily"] = CatalogEntry{"0 8,12,18 * * *", "At 8 AM, 12 PM, and 6 PM every day"}
	c.entries["bi_hourly"] = CatalogEntry{"0 */2 * * *", "Every 2 hours"}
	c.entries["new_year"] = CatalogEntry{"0 0 1 JAN * 2030-2035", "At midnight on January 1st from 2030 to 2035"}
}

// Lookup returns the expression registered under name.
func (c *LocalCatalog) Lookup(name string) (string, error) {
	entry, exists := c.entries[name]
	if !exists {
		return "", fmt.Errorf("no expression found for name: %s", name)
	}
	return entry.Expression, nil
}

// Entry returns the full catalog entry for name.
func (c *LocalCatalog) Entry(name string) (CatalogEntry, bool) {
	entry, exists := c.entries[name]
	return entry, exists
}

// Names returns every registered name in ascending order.
func (c *LocalCatalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate parses every catalog expression with p and returns the failures
// keyed by name.
func Validate(ctx context.Context, p *Parser, catalog Catalog) map[string]error {
	failures := make(map[string]error)
	for _, name := range catalog.Names() {
		spec, err := catalog.Lookup(name)
		if err == nil {
			_, err = p.Parse(ctx, spec)
		}
		if err != nil {
			failures[name] = err
		}
	}
	return failures
}

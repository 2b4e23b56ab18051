package expression

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yashkumarverma/minicron/src/cronfield"
	"github.com/yashkumarverma/minicron/src/utils"
	"github.com/yashkumarverma/minicron/src/utils/cache"
	"go.uber.org/multierr"
)

// Parser parses whole cron expressions field by field, memoizing field
// results in an optional cache store.
type Parser struct {
	fields    *cronfield.Parser
	store     cache.Store
	logger    *utils.StandardLogger
	ttl       time.Duration
	keyPrefix string
}

// NewParser creates a parser following config. store may be nil.
func NewParser(config *utils.Config, store cache.Store, logger *utils.StandardLogger) *Parser {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Parser{
		fields:    cronfield.NewParser(config.ShiftedDaysOfWeek),
		store:     store,
		logger:    logger,
		ttl:       config.CacheTTL,
		keyPrefix: config.CacheKeyPrefix,
	}
}

// ShiftedDaysOfWeek reports whether day of week is parsed as 1-7.
func (p *Parser) ShiftedDaysOfWeek() bool {
	return p.fields.ShiftedDaysOfWeek()
}

// ParseField parses a single field. Cache failures are logged and never fail
// the parse; errors from the field parser are returned unchanged.
func (p *Parser) ParseField(ctx context.Context, field cronfield.Field, text string) ([]int, error) {
	key := p.cacheKey(field, text)
	if p.store != nil {
		var cached []int
		found, err := p.store.GetJSON(ctx, key, &cached)
		if err != nil {
			p.logger.Warnw("Failed to read parsed field from cache", "key", key, "error", err)
		} else if found {
			p.logger.Debugw("Parsed field served from cache", "key", key)
			return cached, nil
		}
	}

	values, err := p.fields.ParseField(field, text)
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		if err := p.store.SetJSONWithExpiry(ctx, key, values, p.ttl); err != nil {
			p.logger.Warnw("Failed to store parsed field in cache", "key", key, "error", err)
		}
	}
	return values, nil
}

// Parse parses an expression of five (minutes hours day-of-month month
// day-of-week) or six (plus year) whitespace separated fields. Every field
// is parsed; all field errors are combined into the returned error.
func (p *Parser) Parse(ctx context.Context, spec string) (*Expression, error) {
	parts := strings.Fields(spec)
	if len(parts) != 5 && len(parts) != 6 {
		return nil, fmt.Errorf("invalid cron expression %q: expected 5 or 6 fields, got %d", spec, len(parts))
	}

	expr := &Expression{
		Text:              spec,
		ShiftedDaysOfWeek: p.ShiftedDaysOfWeek(),
	}
	var errs error
	for i, field := range cronfield.Fields() {
		text := "*"
		if i < len(parts) {
			text = parts[i]
		}
		values, err := p.ParseField(ctx, field, text)
		if err != nil {
			errs = multierr.Append(errs, &FieldError{Field: field, Text: text, Err: err})
			continue
		}
		expr.fields[field] = FieldValues{Text: text, Values: values}
	}
	if errs != nil {
		p.logger.Debugw("Failed to parse cron expression", "expression", spec, "error", errs)
		return nil, errs
	}
	return expr, nil
}

func (p *Parser) cacheKey(field cronfield.Field, text string) string {
	return strings.Join([]string{
		p.keyPrefix, "field", field.String(), strconv.FormatBool(p.ShiftedDaysOfWeek()), text,
	}, ":")
}

// FieldError ties a field parse failure to the field it came from.
type FieldError struct {
	Field cronfield.Field
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %q: %v", e.Field, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

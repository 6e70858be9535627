package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/parse"
)

// Service resolves a provider, runs one extraction call, and structures the
// response. For the odometer template the parse degrades in two stages:
// strict JSON first, then a numeric scan of the raw text.
type Service struct {
	registry *Registry
	log      *slog.Logger
}

func NewService(registry *Registry, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{registry: registry, log: log}
}

var _ Extractor = (*Service)(nil)

func (s *Service) Extract(ctx context.Context, req Request) (Result, error) {
	provider, ok := s.registry.Get(req.Provider)
	if !ok {
		return Result{}, fmt.Errorf("unknown provider %q", req.Provider)
	}

	start := time.Now()
	s.log.Info("vision.extract.start",
		"provider", provider.Name(),
		"template", req.Template,
		"image_bytes", len(req.Image),
		"mime_type", req.MimeType,
	)

	raw, err := provider.Extract(ctx, req.Image, req.MimeType, PromptFor(req.Template))
	if err != nil {
		s.log.Error("vision.extract.provider_error",
			"provider", provider.Name(), "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	var fields map[string]any
	if req.Template == constants.TemplateOdometer {
		fields, err = s.parseOdometer(raw)
	} else {
		fields, err = s.parseReceipt(req.Template, raw)
	}
	if err != nil {
		s.log.Error("vision.extract.parse_error",
			"provider", provider.Name(), "template", req.Template,
			"error", err, "raw_bytes", len(raw),
		)
		// raw text preserved so the failure can be inspected later
		return Result{RawText: raw}, err
	}

	s.log.Info("vision.extract.ok",
		"provider", provider.Name(), "template", req.Template,
		"fields", len(fields), "elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{RawText: raw, Fields: fields}, nil
}

// parseOdometer runs the two-stage degradation: structured JSON with a
// "reading" key, then the first numeric token anywhere in the raw text.
func (s *Service) parseOdometer(raw string) (map[string]any, error) {
	if obj, err := parse.Structured(raw); err == nil {
		if v, ok := obj["reading"]; ok {
			if reading, err := readingFromValue(v); err == nil {
				return map[string]any{"reading": reading}, nil
			}
		}
		s.log.Warn("vision.odometer.no_structured_reading", "keys", len(obj))
	}
	reading, err := parse.NumericFallback(raw)
	if err != nil {
		return nil, err
	}
	return map[string]any{"reading": reading}, nil
}

func readingFromValue(v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case string:
		return parse.CleanNumber(t)
	default:
		return 0, fmt.Errorf("reading is not numeric")
	}
}

// parseReceipt structure-checks the completion and maps provider field
// names onto the canonical extraction keys.
func (s *Service) parseReceipt(t constants.Template, raw string) (map[string]any, error) {
	obj, err := parse.Structured(raw)
	if err != nil {
		return nil, fmt.Errorf("unparseable response: %w", err)
	}
	cleaned := parse.StripCodeFences(raw)
	if err := ValidateJSONAgainstSchema(SchemaFor(t), []byte(cleaned)); err != nil {
		return nil, err
	}
	return normalizeFields(obj), nil
}

// fieldAliases maps the names providers actually emit onto canonical keys.
// First alias present wins; canonical names are listed first.
var fieldAliases = map[string][]string{
	"vendor":   {"vendor", "merchant", "merchant_name", "merchantName"},
	"date":     {"date", "tx_date", "transaction_date", "transactionDate"},
	"cost":     {"cost", "total", "amount"},
	"currency": {"currency", "currency_code", "currencyCode"},
	"location": {"location"},
	"type":     {"type", "category", "expense_type", "expenseType"},
	"comments": {"comments", "purpose", "description", "notes"},
	// informational only: kept on the task result, never written to a
	// target record (the reconciliation rule table has no entry for them)
	"subtotal":       {"subtotal", "sub_total"},
	"tax":            {"tax"},
	"payment_method": {"paymentMethod", "payment_method"},
}

func normalizeFields(obj map[string]any) map[string]any {
	out := make(map[string]any, len(fieldAliases))
	for canonical, aliases := range fieldAliases {
		for _, alias := range aliases {
			if v, ok := obj[alias]; ok && v != nil {
				out[canonical] = v
				break
			}
		}
	}
	// line items fold into comments when nothing else claimed them
	if _, ok := out["comments"]; !ok {
		if items, ok := obj["items"].([]any); ok && len(items) > 0 {
			parts := make([]string, 0, len(items))
			for _, it := range items {
				if s, ok := it.(string); ok && s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				out["comments"] = strings.Join(parts, ", ")
			}
		}
	}
	return out
}

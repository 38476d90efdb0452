// Package payload decodes credit-bureau API responses into a closed set of
// known shapes.
//
// Bureau responses have drifted over time: single-bureau reports, multi-bureau
// responses with one provider view per bureau, and field names that differ per
// provider. Probe inspects the top-level document once and returns one of the
// Payload variants below; everything downstream switches on the variant instead
// of poking at untyped maps.
//
// Decoding is tolerant. Members that are missing, null or of the wrong JSON type
// decode to zero values, and list elements that are not objects are skipped.
// The only error Probe returns is for input that is not JSON at all.
package payload

import (
	"encoding/json"
	"fmt"
)

// Shape identifies which payload variant was detected.
type Shape string

const (
	ShapeSingleBureau Shape = "single_bureau"
	ShapeMultiBureau  Shape = "multi_bureau"
	ShapeUnknown      Shape = "unknown"
)

// ProviderView is one bureau's slice of a response.
type ProviderView struct {
	// Provider is the provider code exactly as the bureau sent it (e.g. "EFX").
	Provider string
	Report   Report
}

// Payload is implemented only by SingleBureau, MultiBureau and Unknown.
type Payload interface {
	Shape() Shape
	// Views returns the provider views in document order.
	Views() []ProviderView
	sealed()
}

// SingleBureau is a report for one bureau at the document root.
type SingleBureau struct {
	View ProviderView
}

func (SingleBureau) Shape() Shape { return ShapeSingleBureau }

func (p SingleBureau) Views() []ProviderView { return []ProviderView{p.View} }

func (SingleBureau) sealed() {}

// MultiBureau carries one view per bureau.
type MultiBureau struct {
	ViewList []ProviderView
}

func (MultiBureau) Shape() Shape { return ShapeMultiBureau }

func (p MultiBureau) Views() []ProviderView { return p.ViewList }

func (MultiBureau) sealed() {}

// Unknown is any well-formed JSON document that matches no known shape.
type Unknown struct {
	Raw json.RawMessage
}

func (Unknown) Shape() Shape { return ShapeUnknown }

func (Unknown) Views() []ProviderView { return nil }

func (Unknown) sealed() {}

var (
	multiKeys    = []string{"providerViews", "reports"}
	providerKeys = []string{"provider", "bureau", "source", "providerCode"}
	bodyKeys     = []string{"report", "creditReport", "data"}
)

// Probe detects the payload shape and decodes it.
func Probe(b []byte) (Payload, error) {
	if !json.Valid(b) {
		return nil, fmt.Errorf("payload: invalid JSON")
	}
	root := decodeObject(b)
	if root == nil {
		return Unknown{Raw: json.RawMessage(b)}, nil
	}

	if raw, ok := root.raw(multiKeys...); ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			return MultiBureau{ViewList: decodeViews(items)}, nil
		}
	}

	if root.has(reportKeys...) {
		return SingleBureau{View: ProviderView{
			Provider: root.text(providerKeys...),
			Report:   decodeReport(root),
		}}, nil
	}

	return Unknown{Raw: json.RawMessage(b)}, nil
}

func decodeViews(items []json.RawMessage) []ProviderView {
	views := make([]ProviderView, 0, len(items))
	for _, item := range items {
		o := decodeObject(item)
		if o == nil {
			continue
		}
		body := o
		if raw, ok := o.raw(bodyKeys...); ok {
			if nested := decodeObject(raw); nested != nil {
				body = nested
			}
		}
		views = append(views, ProviderView{
			Provider: o.text(providerKeys...),
			Report:   decodeReport(body),
		})
	}
	return views
}

package navigation

import (
	"net/url"
	"strings"

	"kidcare-booking/internal/pkg/errs"
)

var ErrUnknownPath = errs.New("no view matches path")

type ViewName string

const (
	ViewHome                ViewName = "home"
	ViewBookingFlow         ViewName = "booking-flow"
	ViewSelectFranchise     ViewName = "select-franchise"
	ViewSelectDateTime      ViewName = "select-datetime"
	ViewCustomerInformation ViewName = "customer-information"
	ViewBookingSummary      ViewName = "booking-summary"
	ViewBookingConfirmation ViewName = "booking-confirmation"
	ViewBookingDetails      ViewName = "booking-details"
	ViewBookingLookup       ViewName = "booking-lookup"
)

// View is a resolved navigation target. Step is set only for wizard steps.
type View struct {
	Name   ViewName          `json:"name"`
	Path   string            `json:"path"`
	Step   *int              `json:"step,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}

type route struct {
	pattern string
	name    ViewName
	step    int // -1 when the view is not a wizard step
}

var routes = []route{
	{pattern: "/", name: ViewHome, step: -1},
	{pattern: "/book", name: ViewBookingFlow, step: -1},
	{pattern: "/book/franchise", name: ViewSelectFranchise, step: 0},
	{pattern: "/book/datetime", name: ViewSelectDateTime, step: 1},
	{pattern: "/book/information", name: ViewCustomerInformation, step: 2},
	{pattern: "/book/summary", name: ViewBookingSummary, step: 3},
	{pattern: "/book/confirmation", name: ViewBookingConfirmation, step: 4},
	{pattern: "/booking/:id", name: ViewBookingDetails, step: -1},
	{pattern: "/lookup", name: ViewBookingLookup, step: -1},
}

// stepPaths is indexed by wizard step.
var stepPaths = []string{
	"/book/franchise",
	"/book/datetime",
	"/book/information",
	"/book/summary",
	"/book/confirmation",
}

// Resolve matches a URL path against the route table. Query strings and a
// trailing slash are ignored.
func Resolve(rawPath string) (View, error) {
	path := normalize(rawPath)
	segments := split(path)

	for _, r := range routes {
		params, ok := match(split(r.pattern), segments)
		if !ok {
			continue
		}
		v := View{Name: r.name, Path: path, Params: params}
		if r.step >= 0 {
			step := r.step
			v.Step = &step
		}
		return v, nil
	}
	return View{}, errs.Wrapf(ErrUnknownPath, "path %q", rawPath)
}

// PathForStep returns the wizard path for a step. A completed flow stays on
// the confirmation view.
func PathForStep(step int) string {
	switch {
	case step < 0:
		return stepPaths[0]
	case step >= len(stepPaths):
		return stepPaths[len(stepPaths)-1]
	default:
		return stepPaths[step]
	}
}

// DetailsPath builds the booking details path for a booking id.
func DetailsPath(bookingID string) string {
	return "/booking/" + url.PathEscape(bookingID)
}

// Views lists every static view in route order.
func Views() []View {
	out := make([]View, 0, len(routes))
	for _, r := range routes {
		if strings.Contains(r.pattern, ":") {
			continue
		}
		v := View{Name: r.name, Path: r.pattern}
		if r.step >= 0 {
			step := r.step
			v.Step = &step
		}
		out = append(out, v)
	}
	return out
}

func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			value, err := url.PathUnescape(segments[i])
			if err != nil || value == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = value
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	return params, true
}

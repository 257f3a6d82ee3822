// Package entity holds the navigation document model and the route table
// built from it. Values in this package carry no behaviour that touches the
// outside world.
package entity

import "strings"

// ContentKind is the closed set of screen content kinds.
type ContentKind int

const (
	// ContentUnknown renders nothing and never fails.
	ContentUnknown ContentKind = iota
	// ContentList shows a list of items that may navigate further.
	ContentList
	// ContentWebView embeds a page by URL.
	ContentWebView
	// ContentDynamic shows a static text body.
	ContentDynamic
)

// Fallback route names registered in every stack. Runtime targets always
// navigate to one of these.
const (
	RouteList    = "List"
	RouteWebView = "WebView"
	RouteDynamic = "Dynamic"
)

// FallbackRoutes lists the fixed routes in registration order.
var FallbackRoutes = []string{RouteList, RouteWebView, RouteDynamic}

// ParseContentKind maps a document "type" discriminator to a kind.
// Anything unrecognised maps to ContentUnknown.
func ParseContentKind(s string) ContentKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return ContentList
	case "webview":
		return ContentWebView
	case "dynamic":
		return ContentDynamic
	default:
		return ContentUnknown
	}
}

// String returns the document spelling of the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentList:
		return "list"
	case ContentWebView:
		return "webview"
	case ContentDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Route returns the fallback route that renders this kind.
func (k ContentKind) Route() (string, bool) {
	switch k {
	case ContentList:
		return RouteList, true
	case ContentWebView:
		return RouteWebView, true
	case ContentDynamic:
		return RouteDynamic, true
	default:
		return "", false
	}
}

// KindForRoute returns the kind rendered by a fallback route name.
func KindForRoute(route string) ContentKind {
	switch route {
	case RouteList:
		return ContentList
	case RouteWebView:
		return ContentWebView
	case RouteDynamic:
		return ContentDynamic
	default:
		return ContentUnknown
	}
}

// IsFallbackRoute reports whether name is one of the fixed routes.
func IsFallbackRoute(name string) bool {
	return KindForRoute(name) != ContentUnknown
}

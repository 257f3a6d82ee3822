package usecase

import (
	"github.com/bnema/tabshell/internal/domain/entity"
)

// ContentResolver normalizes declared screens and runtime targets into the
// single ResolvedScreenParams shape controllers consume.
type ContentResolver struct{}

// NewContentResolver creates a new ContentResolver.
func NewContentResolver() *ContentResolver {
	return &ContentResolver{}
}

// ResolveScreen resolves a declared route on its initial mount. Missing
// title falls back to the route name; missing color and config fall back to
// the theme.
func (r *ContentResolver) ResolveScreen(spec entity.ScreenSpec, theme entity.Theme) entity.ResolvedScreenParams {
	out := entity.ResolvedScreenParams{
		Kind:   spec.Kind(),
		Title:  firstNonEmpty(spec.Title, spec.Name),
		Color:  firstNonEmpty(spec.Color, theme.HeaderColor),
		Config: inheritConfig(spec.Config, theme.Styles),
		Header: spec.Header,
	}
	fillKind(&out, spec.Items, spec.URL, spec.Content)
	return out
}

// ResolveRoute resolves a runtime navigation request. The kind comes from
// the fallback route name; title, color and config are inherited from the
// navigating screen when the request does not carry its own.
func (r *ContentResolver) ResolveRoute(req entity.NavigationRequest, parent entity.ResolvedScreenParams) entity.ResolvedScreenParams {
	p := req.Params
	out := entity.ResolvedScreenParams{
		Kind:    entity.KindForRoute(req.Route),
		Title:   firstNonEmpty(p.Title, parent.Title),
		Color:   firstNonEmpty(p.Color, parent.Color),
		Config:  inheritConfig(p.Config, parent.Config),
		Header:  true,
		Dynamic: p.List,
	}
	fillKind(&out, p.Items, p.URL, p.Content)
	return out
}

// ResolveTarget turns a list item target into the navigation request that
// reaches it. Only the kind field matching the target type is carried.
// It returns false for targets of unknown type.
func (r *ContentResolver) ResolveTarget(target entity.Target) (entity.NavigationRequest, bool) {
	kind := target.Kind()
	route, ok := kind.Route()
	if !ok {
		return entity.NavigationRequest{}, false
	}

	src := target.Params
	params := entity.RouteParams{
		List: true,
		TargetParams: entity.TargetParams{
			Title:  src.Title,
			Color:  src.Color,
			Config: src.Config.Clone(),
		},
	}

	switch kind {
	case entity.ContentList:
		params.Items = src.Items
		if params.Items == nil {
			params.Items = []entity.ListItem{}
		}
	case entity.ContentWebView:
		params.URL = src.URL
	case entity.ContentDynamic:
		params.Content = src.Content
	case entity.ContentUnknown:
	}

	return entity.NavigationRequest{Route: route, Params: params}, true
}

func fillKind(out *entity.ResolvedScreenParams, items []entity.ListItem, url, content string) {
	switch out.Kind {
	case entity.ContentList:
		out.Items = items
		if out.Items == nil {
			out.Items = []entity.ListItem{}
		}
	case entity.ContentWebView:
		out.URL = url
	case entity.ContentDynamic:
		out.Content = content
	case entity.ContentUnknown:
	}
}

// inheritConfig replaces, never merges: a present own record wins whole.
func inheritConfig(own, inherited entity.StyleConfig) entity.StyleConfig {
	if own.Present() {
		return own.Clone()
	}
	if inherited.Present() {
		return inherited.Clone()
	}
	return entity.StyleConfig{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

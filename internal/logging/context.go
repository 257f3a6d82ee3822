package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names of the navigation context carried on log lines.
const (
	FieldComponent = "component"
	FieldTab       = "tab"
	FieldRoute     = "route"
	FieldScreenID  = "screen_id"
	FieldURL       = "url"
)

// URLFieldLen caps page addresses written to the url field.
const URLFieldLen = 80

// FromContext returns the logger attached to ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With adds run-wide fields, such as the locale or navigation options.
func With(ctx context.Context, fields map[string]any) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Fields(fields).Logger())
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent names the subsystem writing the line (shell, host, pageview).
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, FieldComponent, component)
}

// WithTab tags lines with the tab whose stack is being acted on.
func WithTab(ctx context.Context, tab string) context.Context {
	return withStr(ctx, FieldTab, tab)
}

// WithScreen tags lines with a route and the screen instance mounted for it.
// Two instances of the same route differ only by screen_id.
func WithScreen(ctx context.Context, route, screenID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().
		Str(FieldRoute, route).
		Str(FieldScreenID, screenID).
		Logger())
}

// WithURL tags lines with a page address, shortened to URLFieldLen.
func WithURL(ctx context.Context, url string) context.Context {
	return withStr(ctx, FieldURL, TruncateURL(url, URLFieldLen))
}
